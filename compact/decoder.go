package compact

import (
	"fmt"
	"math"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/schema"
)

type decoder struct {
	ix       *schema.Index
	path     schema.PathBuilder
	depth    int
	maxDepth int
	used     map[string]struct{}
}

// Decode reconstructs a standard JSON document from a compact document and its
// index document. Object keys in the output are sorted.
func Decode(document, index []byte, opts ...Option) ([]byte, error) {
	ix, err := schema.ParseIndex(index)
	if err != nil {
		return nil, err
	}

	v, err := DecodeValue(document, ix, opts...)
	if err != nil {
		return nil, err
	}

	return gojson.MarshalWithOption(v, gojson.DisableHTMLEscape())
}

// DecodeValue parses a compact document and restores it with ix.
func DecodeValue(document []byte, ix *schema.Index, opts ...Option) (any, error) {
	v, err := parseValue(document)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrMalformedDocument, err)
	}

	return Restore(v, ix, opts...)
}

// Restore turns a parsed compact document back into a generic JSON value.
//
// An array at a path with an index entry is an encoded object: with a single
// layout its elements map positionally onto the layout's fields; with several
// layouts the first element is the shape id selecting the layout. Any other
// array is a plain array. Every index entry must be used by at least one
// object, otherwise the index does not describe this document.
func Restore(v any, ix *schema.Index, opts ...Option) (any, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	d := &decoder{
		ix:       ix,
		maxDepth: cfg.MaxDepth(),
		used:     make(map[string]struct{}, ix.Len()),
	}

	out, err := d.decode(v)
	if err != nil {
		return nil, err
	}

	if len(d.used) != ix.Len() {
		for _, p := range ix.Paths() {
			if _, ok := d.used[p]; !ok {
				return nil, fmt.Errorf("%w: document has no object at indexed path %s",
					errs.ErrMissingSchemaEntry, schema.Display(p))
			}
		}
	}

	return out, nil
}

func (d *decoder) decode(v any) (any, error) {
	switch val := v.(type) {
	case []any:
		if d.depth >= d.maxDepth {
			return nil, fmt.Errorf("%w: limit %d at %s", errs.ErrMaxDepthExceeded, d.maxDepth, schema.Display(d.path.String()))
		}
		d.depth++
		defer func() { d.depth-- }()

		if entry, ok := d.ix.LookupBytes(d.path.Bytes()); ok {
			if _, seen := d.used[string(d.path.Bytes())]; !seen {
				d.used[d.path.String()] = struct{}{}
			}

			return d.decodeObject(val, entry)
		}

		return d.decodeArray(val)
	case map[string]any:
		return nil, fmt.Errorf("%w: object at %s, compact documents contain no objects",
			errs.ErrMalformedDocument, schema.Display(d.path.String()))
	default:
		return v, nil
	}
}

func (d *decoder) decodeArray(arr []any) (any, error) {
	out := make([]any, len(arr))
	d.path.PushArray()
	for i, elem := range arr {
		item, err := d.decode(elem)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	d.path.Pop()

	return out, nil
}

func (d *decoder) decodeObject(arr []any, entry *schema.IndexEntry) (any, error) {
	layout := entry.Layouts[0]
	values := arr
	if entry.Tagged {
		if len(arr) == 0 {
			return nil, fmt.Errorf("%w: missing shape tag at %s", errs.ErrMalformedDocument, schema.Display(d.path.String()))
		}
		id, err := shapeTag(arr[0])
		if err != nil {
			return nil, fmt.Errorf("%w: at %s: %w", errs.ErrMalformedDocument, schema.Display(d.path.String()), err)
		}
		var ok bool
		if layout, ok = entry.Layout(id); !ok {
			return nil, fmt.Errorf("%w: tag %d at %s, %d shapes indexed",
				errs.ErrShapeTagOutOfRange, id, schema.Display(d.path.String()), len(entry.Layouts))
		}
		values = arr[1:]
	}

	if len(values) != layout.Len() {
		return nil, fmt.Errorf("%w: %d values at %s, shape has %d fields",
			errs.ErrMalformedDocument, len(values), schema.Display(d.path.String()), layout.Len())
	}

	out := make(map[string]any, len(values))
	for pos, name := range layout.Names {
		d.path.PushField(name)
		val, err := d.decode(values[pos])
		if err != nil {
			return nil, err
		}
		d.path.Pop()
		out[name] = val
	}

	return out, nil
}

func shapeTag(v any) (int, error) {
	switch num := v.(type) {
	case gojson.Number:
		id, err := strconv.Atoi(num.String())
		if err != nil {
			return 0, fmt.Errorf("shape tag %q is not an integer", num.String())
		}

		return id, nil
	case float64:
		if num != math.Trunc(num) || math.Abs(num) > math.MaxInt32 {
			return 0, fmt.Errorf("shape tag %v is not an integer", num)
		}

		return int(num), nil
	default:
		return 0, fmt.Errorf("shape tag must be an integer, got %T", v)
	}
}
