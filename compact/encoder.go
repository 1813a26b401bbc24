package compact

import (
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/format"
	"github.com/arloliu/arrayniac/internal/pool"
	"github.com/arloliu/arrayniac/schema"
)

// encoder renders a Tree as a compact document. It tracks the current path the
// same way the walker does so each object finds its registry entry.
type encoder struct {
	reg  *schema.Registry
	path schema.PathBuilder
	dst  []byte
}

// Document renders the tree as a compact document: standard JSON in which every
// object is written as an array of its values in the field order of its shape,
// prefixed by the shape id when its path has more than one shape.
//
// It returns ErrShapeMismatch if an object's fields disagree with its assigned
// shape, which means the tree and registry were not produced by the same Walk.
func (t *Tree) Document() ([]byte, error) {
	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	out, err := t.AppendDocument(buf.B)
	if err != nil {
		return nil, err
	}
	buf.B = out

	return buf.Clone(), nil
}

// AppendDocument appends the compact document to dst.
func (t *Tree) AppendDocument(dst []byte) ([]byte, error) {
	e := &encoder{reg: t.Registry, dst: dst}
	if err := e.encode(&t.Root); err != nil {
		return nil, err
	}

	return e.dst, nil
}

// Index renders the tree's registry as an index document.
func (t *Tree) Index() ([]byte, error) {
	return t.Registry.Index()
}

func (e *encoder) encode(n *Node) error {
	switch n.Kind {
	case format.KindNull:
		e.dst = append(e.dst, "null"...)
	case format.KindBoolean:
		e.dst = strconv.AppendBool(e.dst, n.Bool)
	case format.KindNumber:
		e.dst = append(e.dst, n.Text...)
	case format.KindString:
		b, err := gojson.MarshalWithOption(n.Text, gojson.DisableHTMLEscape())
		if err != nil {
			return err
		}
		e.dst = append(e.dst, b...)
	case format.KindArray:
		return e.encodeArray(n)
	case format.KindObject:
		return e.encodeObject(n)
	default:
		return fmt.Errorf("%w: node of kind %s at %s", errs.ErrInvalidInput, n.Kind, schema.Display(e.path.String()))
	}

	return nil
}

func (e *encoder) encodeArray(n *Node) error {
	e.dst = append(e.dst, '[')
	e.path.PushArray()
	for i := range n.Items {
		if i > 0 {
			e.dst = append(e.dst, ',')
		}
		if err := e.encode(&n.Items[i]); err != nil {
			return err
		}
	}
	e.path.Pop()
	e.dst = append(e.dst, ']')

	return nil
}

func (e *encoder) encodeObject(n *Node) error {
	entry, ok := e.reg.EntryBytes(e.path.Bytes())
	if !ok {
		return fmt.Errorf("%w: no shapes registered at %s", errs.ErrShapeMismatch, schema.Display(e.path.String()))
	}
	shape, ok := entry.Shape(n.ShapeID)
	if !ok {
		return fmt.Errorf("%w: shape id %d not registered at %s (have %d)",
			errs.ErrShapeMismatch, n.ShapeID, schema.Display(e.path.String()), entry.Len())
	}
	if len(n.Fields) != shape.Len() {
		return fmt.Errorf("%w: object at %s has %d fields, shape %d has %d",
			errs.ErrShapeMismatch, schema.Display(e.path.String()), len(n.Fields), n.ShapeID, shape.Len())
	}

	e.dst = append(e.dst, '[')
	sep := false
	if entry.Tagged() {
		e.dst = strconv.AppendInt(e.dst, int64(n.ShapeID), 10)
		sep = true
	}
	for _, f := range shape.Fields {
		child, ok := n.Fields[f.Name]
		if !ok || child == nil {
			return fmt.Errorf("%w: object at %s lacks field %q of shape %d",
				errs.ErrShapeMismatch, schema.Display(e.path.String()), f.Name, n.ShapeID)
		}
		if child.Kind != f.Kind {
			return fmt.Errorf("%w: field %q at %s is %s, shape %d expects %s",
				errs.ErrShapeMismatch, f.Name, schema.Display(e.path.String()), child.Kind, n.ShapeID, f.Kind)
		}
		if sep {
			e.dst = append(e.dst, ',')
		}
		sep = true

		e.path.PushField(f.Name)
		if err := e.encode(child); err != nil {
			return err
		}
		e.path.Pop()
	}
	e.dst = append(e.dst, ']')

	return nil
}
