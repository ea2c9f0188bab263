package valueobjects

import (
	"fmt"
	"strconv"
)

// TermID identifies a glossary term. IDs are assigned when the dataset is
// authored and are never generated at runtime.
type TermID int32

// NewTermIDFromString parses a decimal term identifier
func NewTermIDFromString(s string) (TermID, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("term ID must be a 32-bit integer: %w", err)
	}
	return TermID(v), nil
}

// Int32 returns the wire representation of the ID
func (id TermID) Int32() int32 {
	return int32(id)
}

// String returns the decimal representation of the ID
func (id TermID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// TermIDsToInt32 converts TermIDs into wire IDs, preserving order
func TermIDsToInt32(ids []TermID) []int32 {
	out := make([]int32, len(ids))
	for i, id := range ids {
		out[i] = id.Int32()
	}
	return out
}
