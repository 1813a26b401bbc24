package compact

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/format"
	"github.com/arloliu/arrayniac/schema"
)

// Tree is the result of one Walk: the value tree and the shape registry built
// alongside it. Both are read-only once Walk returns.
type Tree struct {
	Root     Node
	Registry *schema.Registry
	// Objects is the number of object nodes in Root.
	Objects int
}

// walker is the traversal context of a single Walk. It exclusively owns the
// path accumulator and the registry until Walk returns.
type walker struct {
	cfg        *Config
	path       schema.PathBuilder
	depth      int
	reg        *schema.Registry
	arrayPaths map[string]struct{}
	objects    int
}

// Walk converts a generic JSON value into a Tree in one depth-first pass.
//
// v must be built from nil, bool, string, gojson.Number (or float64, int,
// int64), []any and map[string]any, which is what Parse and the usual JSON
// decoders produce. Objects are classified by the (name, kind) pairs of their
// fields, sorted by name, so field enumeration order never affects shape
// identity.
//
// Walk fails if nesting exceeds the configured depth, if v holds an
// unsupported Go type, or if objects and plain arrays occur at the same path.
func Walk(v any, opts ...Option) (*Tree, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	w := &walker{
		cfg:        cfg,
		reg:        schema.NewRegistry(),
		arrayPaths: make(map[string]struct{}),
	}

	root, err := w.walk(v)
	if err != nil {
		return nil, err
	}

	if err := w.checkAmbiguity(); err != nil {
		return nil, err
	}

	return &Tree{Root: root, Registry: w.reg, Objects: w.objects}, nil
}

func (w *walker) walk(v any) (Node, error) {
	switch val := v.(type) {
	case nil:
		return Node{Kind: format.KindNull, ShapeID: NoShape}, nil
	case bool:
		return Node{Kind: format.KindBoolean, Bool: val, ShapeID: NoShape}, nil
	case string:
		return Node{Kind: format.KindString, Text: val, ShapeID: NoShape}, nil
	case gojson.Number:
		return Node{Kind: format.KindNumber, Text: val.String(), ShapeID: NoShape}, nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return Node{}, fmt.Errorf("%w: %v is not a JSON number at %s",
				errs.ErrInvalidInput, val, schema.Display(w.path.String()))
		}

		return Node{Kind: format.KindNumber, Text: strconv.FormatFloat(val, 'g', -1, 64), ShapeID: NoShape}, nil
	case int:
		return Node{Kind: format.KindNumber, Text: strconv.Itoa(val), ShapeID: NoShape}, nil
	case int64:
		return Node{Kind: format.KindNumber, Text: strconv.FormatInt(val, 10), ShapeID: NoShape}, nil
	case []any:
		return w.walkArray(val)
	case map[string]any:
		return w.walkObject(val)
	default:
		return Node{}, fmt.Errorf("%w: unsupported value of type %T at %s",
			errs.ErrInvalidInput, v, schema.Display(w.path.String()))
	}
}

func (w *walker) enter() error {
	if w.depth >= w.cfg.MaxDepth() {
		return fmt.Errorf("%w: limit %d at %s", errs.ErrMaxDepthExceeded, w.cfg.MaxDepth(), schema.Display(w.path.String()))
	}
	w.depth++
	if w.cfg.tracer != nil {
		w.cfg.tracer.EnterPath(w.path.String(), w.depth)
	}

	return nil
}

func (w *walker) leave() {
	if w.cfg.tracer != nil {
		w.cfg.tracer.LeavePath(w.path.String(), w.depth)
	}
	w.depth--
}

func (w *walker) walkArray(arr []any) (Node, error) {
	if err := w.enter(); err != nil {
		return Node{}, err
	}
	defer w.leave()

	if _, seen := w.arrayPaths[string(w.path.Bytes())]; !seen {
		w.arrayPaths[w.path.String()] = struct{}{}
	}

	items := make([]Node, len(arr))
	w.path.PushArray()
	for i, elem := range arr {
		item, err := w.walk(elem)
		if err != nil {
			return Node{}, err
		}
		items[i] = item
	}
	w.path.Pop()

	return Node{Kind: format.KindArray, Items: items, ShapeID: NoShape}, nil
}

func (w *walker) walkObject(obj map[string]any) (Node, error) {
	if err := w.enter(); err != nil {
		return Node{}, err
	}
	defer w.leave()

	fields := make(map[string]*Node, len(obj))
	pairs := make([]schema.Field, 0, len(obj))
	for name, value := range obj {
		w.path.PushField(name)
		child, err := w.walk(value)
		w.path.Pop()
		if err != nil {
			return Node{}, err
		}
		fields[name] = &child
		pairs = append(pairs, schema.Field{Name: name, Kind: child.Kind})
	}

	shape := schema.NewShape(pairs)
	id, added := w.reg.RegisterBytes(w.path.Bytes(), shape)
	if added {
		w.cfg.observer.ShapeDiscovered(w.path.String(), id, shape)
	}
	w.objects++

	return Node{Kind: format.KindObject, Fields: fields, ShapeID: id}, nil
}

// checkAmbiguity rejects paths at which both objects and plain arrays occur:
// both render as arrays, so a decoder could not tell them apart.
func (w *walker) checkAmbiguity() error {
	for _, p := range slices.Sorted(maps.Keys(w.arrayPaths)) {
		if _, ok := w.reg.Entry(p); ok {
			return fmt.Errorf("%w: %s", errs.ErrAmbiguousPath, schema.Display(p))
		}
	}

	return nil
}
