package memory

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"glossary/domain/core/valueobjects"
	pkgerrors "glossary/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoader_LoadEmbedded(t *testing.T) {
	store, err := NewLoader(zap.NewNop()).LoadEmbedded()

	require.NoError(t, err)
	assert.Equal(t, EmbeddedSource, store.Source())
	assert.Greater(t, store.Len(), 0)
	assert.Empty(t, store.DuplicateIDs(), "embedded dataset must keep ids unique")

	api, ok := store.FindByID(context.Background(), 1)
	require.True(t, ok)
	assert.Equal(t, "API", api.Name())
}

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIDs   []int32
		wantErr   bool
		errSubstr string
	}{
		{
			name: "terms mapping",
			input: `
terms:
  - id: 1
    term: API
    definition: Application Programming Interface
    links: [2]
  - id: 2
    term: REST
    definition: Representational State Transfer
    links: []
`,
			wantIDs: []int32{1, 2},
		},
		{
			name: "bare list",
			input: `
- {id: 2, term: B, definition: b}
- {id: 1, term: A, definition: a, links: [2]}
`,
			wantIDs: []int32{2, 1},
		},
		{
			name:    "json document",
			input:   `[{"id": 1, "term": "API", "definition": "x", "links": [2, 3]}]`,
			wantIDs: []int32{1},
		},
		{
			name:    "empty document is an empty dataset",
			input:   ``,
			wantIDs: []int32{},
		},
		{
			name:    "dangling and self links are accepted",
			input:   `[{id: 1, term: A, definition: a, links: [1, 404]}]`,
			wantIDs: []int32{1},
		},
		{
			name:      "missing term key",
			input:     `[{id: 1, definition: a}]`,
			wantErr:   true,
			errSubstr: "terms[0].term",
		},
		{
			name:      "missing id key",
			input:     `[{term: A, definition: a}]`,
			wantErr:   true,
			errSubstr: "terms[0].id",
		},
		{
			name:      "id of the wrong type",
			input:     `[{id: one, term: A, definition: a}]`,
			wantErr:   true,
			errSubstr: "decode dataset",
		},
		{
			name:      "link of the wrong type",
			input:     `[{id: 1, term: A, definition: a, links: [two]}]`,
			wantErr:   true,
			errSubstr: "decode dataset",
		},
		{
			name:      "fractional id",
			input:     `[{"id": 1.9, "term": "A", "definition": "a"}, {"id": 1, "term": "B", "definition": "b"}]`,
			wantErr:   true,
			errSubstr: "not an integer",
		},
		{
			name:      "fractional link",
			input:     `[{id: 1, term: A, definition: a, links: [2.5]}]`,
			wantErr:   true,
			errSubstr: "not an integer",
		},
		{
			name:      "quoted id",
			input:     `[{id: "1", term: A, definition: a}]`,
			wantErr:   true,
			errSubstr: "not an integer",
		},
		{
			name:      "null link",
			input:     `[{id: 1, term: A, definition: a, links: [~]}]`,
			wantErr:   true,
			errSubstr: "terms[0].links[0]",
		},
		{
			name:    "hex and negative ids are integers",
			input:   `[{id: 0x10, term: A, definition: a}, {id: -3, term: B, definition: b, links: [0x10]}]`,
			wantIDs: []int32{16, -3},
		},
		{
			name:      "scalar document",
			input:     `just a string`,
			wantErr:   true,
			errSubstr: "list of terms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewLoader(zap.NewNop()).Load(strings.NewReader(tt.input), "test")

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				assert.Nil(t, store)
				return
			}

			require.NoError(t, err)
			got := make([]int32, 0, store.Len())
			for _, term := range store.All(context.Background()) {
				got = append(got, term.ID().Int32())
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestLoader_ValidationErrorIsTyped(t *testing.T) {
	_, err := NewLoader(zap.NewNop()).Load(strings.NewReader(`[{id: 1}]`), "test")

	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeValidation))

	appErr := pkgerrors.GetAppError(err)
	require.NotNil(t, appErr)
	fields, ok := appErr.Details["fields"].(map[string][]string)
	require.True(t, ok)
	assert.Contains(t, fields, "terms[0].term")
	assert.Contains(t, fields, "terms[0].definition")
}

func TestLoader_EmptyStringsAreAccepted(t *testing.T) {
	store, err := NewLoader(zap.NewNop()).Load(strings.NewReader(`[{id: 1, term: "", definition: ""}]`), "test")

	require.NoError(t, err)
	term, ok := store.FindByID(context.Background(), 1)
	require.True(t, ok)
	assert.Empty(t, term.Name())
}

func TestLoader_DuplicateIDsWarnAndKeepFirst(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	input := `
- {id: 7, term: First, definition: a}
- {id: 7, term: Second, definition: b}
`

	store, err := NewLoader(zap.New(core)).Load(strings.NewReader(input), "dups")

	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	term, ok := store.FindByID(context.Background(), 7)
	require.True(t, ok)
	assert.Equal(t, "First", term.Name())
	assert.Equal(t, 1, logs.FilterMessageSnippet("duplicate term IDs").Len())
}

func TestLoader_LoadPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"terms": [{"id": 3, "term": "gRPC", "definition": "rpc"}]}`), 0o600))

	loader := NewLoader(zap.NewNop())

	store, err := loader.LoadPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Source())
	assert.Equal(t, 1, store.Len())

	_, err = loader.LoadPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	embedded, err := loader.LoadPath("")
	require.NoError(t, err)
	assert.Equal(t, EmbeddedSource, embedded.Source())
}

func TestTermStore_AllReturnsCopy(t *testing.T) {
	store, err := NewLoader(zap.NewNop()).LoadEmbedded()
	require.NoError(t, err)

	first := store.All(context.Background())
	first[0] = nil

	second := store.All(context.Background())
	require.NotNil(t, second[0])
	assert.Equal(t, valueobjects.TermID(1), second[0].ID())
}

func TestTermStore_FindByIDMissing(t *testing.T) {
	store := NewTermStore(nil, "empty")

	_, ok := store.FindByID(context.Background(), 99)

	assert.False(t, ok)
	assert.Zero(t, store.Len())
}
