package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/internal/pool"
)

// AppendIndex renders the registry as an index document and appends it to dst.
//
// Each path maps to a {field: position} object when it has a single shape, or
// to an array of such objects in shape id order when it has several. Paths are
// written in lexicographic order so equal registries render identically.
func (r *Registry) AppendIndex(dst []byte) ([]byte, error) {
	var err error

	dst = append(dst, '{')
	for i, path := range r.Paths() {
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendString(dst, path); err != nil {
			return nil, err
		}
		dst = append(dst, ':')

		e := r.entries[path]
		if !e.Tagged() {
			if dst, err = appendLayout(dst, e.Shapes()[0]); err != nil {
				return nil, err
			}

			continue
		}

		dst = append(dst, '[')
		for id, s := range e.Shapes() {
			if id > 0 {
				dst = append(dst, ',')
			}
			if dst, err = appendLayout(dst, s); err != nil {
				return nil, err
			}
		}
		dst = append(dst, ']')
	}
	dst = append(dst, '}')

	return dst, nil
}

// Index renders the registry as an index document.
func (r *Registry) Index() ([]byte, error) {
	buf := pool.GetIndexBuffer()
	defer pool.PutIndexBuffer(buf)

	out, err := r.AppendIndex(buf.B)
	if err != nil {
		return nil, err
	}
	buf.B = out

	return buf.Clone(), nil
}

func appendLayout(dst []byte, s Shape) ([]byte, error) {
	var err error

	dst = append(dst, '{')
	for pos, f := range s.Fields {
		if pos > 0 {
			dst = append(dst, ',')
		}
		if dst, err = appendString(dst, f.Name); err != nil {
			return nil, err
		}
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, int64(pos), 10)
	}
	dst = append(dst, '}')

	return dst, nil
}

func appendString(dst []byte, s string) ([]byte, error) {
	b, err := gojson.MarshalWithOption(s, gojson.DisableHTMLEscape())
	if err != nil {
		return nil, err
	}

	return append(dst, b...), nil
}

// Layout maps the positions of one shape back to field names.
type Layout struct {
	Names []string
}

// Len returns the number of fields in the layout.
func (l Layout) Len() int {
	return len(l.Names)
}

// IndexEntry is the decoded form of one path of an index document.
type IndexEntry struct {
	Layouts []Layout
	// Tagged is true when the path was written as an array of layouts, in which
	// case encoded objects carry a leading shape id.
	Tagged bool
}

// Layout returns the layout for shape id.
func (e *IndexEntry) Layout(id int) (Layout, bool) {
	if id < 0 || id >= len(e.Layouts) {
		return Layout{}, false
	}

	return e.Layouts[id], true
}

// Index is a parsed index document.
type Index struct {
	entries map[string]*IndexEntry
}

// Lookup returns the entry for path.
func (ix *Index) Lookup(path string) (*IndexEntry, bool) {
	e, ok := ix.entries[path]
	return e, ok
}

// LookupBytes is Lookup for a path held in a reusable buffer.
func (ix *Index) LookupBytes(path []byte) (*IndexEntry, bool) {
	e, ok := ix.entries[string(path)]
	return e, ok
}

// Len returns the number of paths in the index.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Paths returns the indexed paths in lexicographic order.
func (ix *Index) Paths() []string {
	return slices.Sorted(maps.Keys(ix.entries))
}

// ToIndex converts the registry into the Index a decoder consumes, without a
// text round trip.
func (r *Registry) ToIndex() *Index {
	ix := &Index{entries: make(map[string]*IndexEntry, len(r.entries))}
	for path, e := range r.entries {
		ie := &IndexEntry{
			Layouts: make([]Layout, len(e.Shapes())),
			Tagged:  e.Tagged(),
		}
		for id, s := range e.Shapes() {
			ie.Layouts[id] = Layout{Names: s.Names()}
		}
		ix.entries[path] = ie
	}

	return ix
}

// ParseIndex parses an index document.
//
// Every layout must assign each position 0..n-1 to exactly one field. A path
// written as an array must list at least two layouts.
func ParseIndex(data []byte) (*Index, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedIndex, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: index must be an object", errs.ErrMalformedIndex)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after index", errs.ErrMalformedIndex)
	}

	ix := &Index{entries: make(map[string]*IndexEntry, len(raw))}
	for path, v := range raw {
		switch val := v.(type) {
		case map[string]any:
			l, err := parseLayout(val)
			if err != nil {
				return nil, fmt.Errorf("%w at %s: %w", errs.ErrMalformedIndex, Display(path), err)
			}
			ix.entries[path] = &IndexEntry{Layouts: []Layout{l}}
		case []any:
			if len(val) < 2 {
				return nil, fmt.Errorf("%w at %s: shape list needs at least two layouts, got %d",
					errs.ErrMalformedIndex, Display(path), len(val))
			}
			ie := &IndexEntry{Layouts: make([]Layout, len(val)), Tagged: true}
			for id, item := range val {
				m, ok := item.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("%w at %s: layout %d is not an object", errs.ErrMalformedIndex, Display(path), id)
				}
				l, err := parseLayout(m)
				if err != nil {
					return nil, fmt.Errorf("%w at %s, layout %d: %w", errs.ErrMalformedIndex, Display(path), id, err)
				}
				ie.Layouts[id] = l
			}
			ix.entries[path] = ie
		default:
			return nil, fmt.Errorf("%w at %s: expected object or array, got %T", errs.ErrMalformedIndex, Display(path), v)
		}
	}

	return ix, nil
}

func parseLayout(m map[string]any) (Layout, error) {
	names := make([]string, len(m))
	seen := make([]bool, len(m))
	for name, v := range m {
		num, ok := v.(gojson.Number)
		if !ok {
			return Layout{}, fmt.Errorf("position of %q is not a number", name)
		}
		pos, err := strconv.Atoi(num.String())
		if err != nil {
			return Layout{}, fmt.Errorf("position of %q: %w", name, err)
		}
		if pos < 0 || pos >= len(m) {
			return Layout{}, fmt.Errorf("position %d of %q out of range [0,%d)", pos, name, len(m))
		}
		if seen[pos] {
			return Layout{}, fmt.Errorf("position %d assigned twice", pos)
		}
		seen[pos] = true
		names[pos] = name
	}

	return Layout{Names: names}, nil
}
