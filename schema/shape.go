package schema

import (
	"slices"
	"strings"

	"github.com/arloliu/arrayniac/format"
	"github.com/arloliu/arrayniac/internal/hash"
)

// Field is one (name, kind) pair of a Shape.
type Field struct {
	Name string
	Kind format.Kind
}

// Shape is the field signature of one object instance: its (name, kind) pairs
// sorted by field name. Two objects with the same names but a different kind
// for any field have different shapes.
type Shape struct {
	Fields []Field
}

// NewShape builds a Shape from fields in any order. The slice is sorted in
// place and retained.
func NewShape(fields []Field) Shape {
	slices.SortFunc(fields, func(a, b Field) int {
		return strings.Compare(a.Name, b.Name)
	})

	return Shape{Fields: fields}
}

// Len returns the number of fields.
func (s Shape) Len() int {
	return len(s.Fields)
}

// Names returns the field names in shape order.
func (s Shape) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}

	return names
}

// Position returns the zero-based position of the named field, or -1.
func (s Shape) Position(name string) int {
	i, ok := slices.BinarySearchFunc(s.Fields, name, func(f Field, n string) int {
		return strings.Compare(f.Name, n)
	})
	if !ok {
		return -1
	}

	return i
}

// Equal reports whether s and other have identical (name, kind) lists.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s.Fields, other.Fields)
}

// Fingerprint returns a 64-bit signature of the shape. Equal shapes have equal
// fingerprints.
func (s Shape) Fingerprint() uint64 {
	f := hash.NewFingerprint()
	for _, field := range s.Fields {
		f.Add(field.Name, uint8(field.Kind))
	}

	return f.Sum64()
}

func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range s.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteByte(':')
		sb.WriteString(f.Kind.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
