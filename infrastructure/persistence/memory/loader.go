package memory

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"glossary/domain/core/entities"
	"glossary/domain/core/valueobjects"
	pkgerrors "glossary/pkg/errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// EmbeddedSource is the source name reported for the built-in dataset
const EmbeddedSource = "embedded:data/glossary.yaml"

//go:embed data/glossary.yaml
var embeddedData embed.FS

// termRecord is the authored shape of one glossary entry. Pointers make a
// missing key distinguishable from a zero value.
type termRecord struct {
	ID         *wholeID   `yaml:"id" validate:"required"`
	Term       *string    `yaml:"term" validate:"required"`
	Definition *string    `yaml:"definition" validate:"required"`
	Links      []*wholeID `yaml:"links" validate:"dive,required"`
}

// wholeID is a term ID that only decodes from an integer scalar. yaml.v3
// would otherwise truncate 1.9 to 1.
type wholeID int32

func (id *wholeID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		return fmt.Errorf("line %d: term id %q is not an integer", node.Line, node.Value)
	}

	var v int32
	if err := node.Decode(&v); err != nil {
		return err
	}
	*id = wholeID(v)
	return nil
}

func (r termRecord) links() []valueobjects.TermID {
	links := make([]valueobjects.TermID, len(r.Links))
	for i, link := range r.Links {
		links[i] = valueobjects.TermID(*link)
	}
	return links
}

// datasetDocument is the top-level document: either `terms: [...]` or a bare list
type datasetDocument struct {
	Terms []termRecord `yaml:"terms" validate:"dive"`
}

// Loader decodes and shape-checks glossary datasets
type Loader struct {
	validate *validator.Validate
	logger   *zap.Logger
}

// NewLoader creates a dataset loader
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	validate := validator.New()
	// Report fields by their dataset key rather than the Go field name
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Loader{
		validate: validate,
		logger:   logger,
	}
}

// LoadPath loads the dataset at path, or the embedded dataset when path is empty
func (l *Loader) LoadPath(path string) (*TermStore, error) {
	if path == "" {
		return l.LoadEmbedded()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer file.Close()

	return l.Load(file, path)
}

// LoadEmbedded loads the dataset compiled into the binary
func (l *Loader) LoadEmbedded() (*TermStore, error) {
	data, err := embeddedData.ReadFile("data/glossary.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded dataset: %w", err)
	}
	return l.Load(bytes.NewReader(data), EmbeddedSource)
}

// Load decodes a YAML (or JSON) dataset from r and builds a TermStore.
// Type mismatches and missing keys fail the load; dangling links and
// duplicate IDs do not.
func (l *Loader) Load(r io.Reader, source string) (*TermStore, error) {
	records, err := l.decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", source, err)
	}

	if err := l.check(records); err != nil {
		return nil, fmt.Errorf("validate dataset %s: %w", source, err)
	}

	terms := make([]*entities.Term, 0, len(records))
	for _, rec := range records {
		terms = append(terms, entities.NewTerm(
			valueobjects.TermID(*rec.ID),
			*rec.Term,
			*rec.Definition,
			rec.links(),
		))
	}

	store := NewTermStore(terms, source)

	if dups := store.DuplicateIDs(); len(dups) > 0 {
		l.logger.Warn("Dataset contains duplicate term IDs, lookups use the first occurrence",
			zap.String("source", source),
			zap.Int32s("ids", valueobjects.TermIDsToInt32(dups)),
		)
	}

	l.logger.Info("Loaded glossary dataset",
		zap.String("source", source),
		zap.Int("terms", store.Len()),
	)

	return store, nil
}

func (l *Loader) decode(r io.Reader) ([]termRecord, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		var records []termRecord
		if err := node.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	case yaml.MappingNode:
		var doc datasetDocument
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Terms, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	}

	return nil, fmt.Errorf("line %d: dataset must be a list of terms or a mapping with a terms key", node.Line)
}

func (l *Loader) check(records []termRecord) error {
	err := l.validate.Struct(datasetDocument{Terms: records})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verrs := pkgerrors.NewValidationErrors()
	for _, fe := range fieldErrs {
		verrs.Add(fieldPath(fe.Namespace()), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	if !verrs.HasErrors() {
		return nil
	}
	return verrs.AsAppError()
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
