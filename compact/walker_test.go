package compact

import (
	"math"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/format"
	"github.com/arloliu/arrayniac/schema"
)

func mustWalk(t *testing.T, input string, opts ...Option) *Tree {
	t.Helper()

	v, err := Parse([]byte(input))
	require.NoError(t, err)

	tree, err := Walk(v, opts...)
	require.NoError(t, err)

	return tree
}

func TestWalk_BuildsTree(t *testing.T) {
	tree := mustWalk(t, `{"name":"x","tags":["a",1,null,true],"meta":{"n":1.50}}`)

	root := tree.Root
	require.Equal(t, format.KindObject, root.Kind)
	require.True(t, root.IsObject())
	require.Equal(t, 0, root.ShapeID)
	require.Len(t, root.Fields, 3)

	require.Equal(t, format.KindString, root.Fields["name"].Kind)
	require.Equal(t, "x", root.Fields["name"].Text)
	require.Equal(t, NoShape, root.Fields["name"].ShapeID)

	tags := root.Fields["tags"]
	require.Equal(t, format.KindArray, tags.Kind)
	require.Len(t, tags.Items, 4)
	require.Equal(t, format.KindString, tags.Items[0].Kind)
	require.Equal(t, format.KindNumber, tags.Items[1].Kind)
	require.Equal(t, "1", tags.Items[1].Text)
	require.Equal(t, format.KindNull, tags.Items[2].Kind)
	require.Equal(t, format.KindBoolean, tags.Items[3].Kind)
	require.True(t, tags.Items[3].Bool)

	meta := root.Fields["meta"]
	require.Equal(t, "1.50", meta.Fields["n"].Text, "number literal text is preserved")

	require.Equal(t, 2, tree.Objects)
	require.Equal(t, 2, root.Count(format.KindObject))
	require.Equal(t, []string{"", ".meta"}, tree.Registry.Paths())

	e, ok := tree.Registry.Entry("")
	require.True(t, ok)
	s, _ := e.Shape(0)
	require.Equal(t, "{meta:object, name:string, tags:array}", s.String())
}

func TestWalk_ShapeIDs(t *testing.T) {
	tree := mustWalk(t, `[{"a":1},{"a":2,"b":3},{"a":4},{"a":"s"},{"b":0,"a":9}]`)

	ids := make([]int, len(tree.Root.Items))
	for i, item := range tree.Root.Items {
		ids[i] = item.ShapeID
	}
	require.Equal(t, []int{0, 1, 0, 2, 1}, ids)

	e, ok := tree.Registry.Entry("[]")
	require.True(t, ok)
	require.Equal(t, 3, e.Len())
}

func TestWalk_PathScoping(t *testing.T) {
	tree := mustWalk(t, `{"x":{"k":1},"y":{"k":2,"j":3},"z":{"k":3}}`)

	require.Equal(t, []string{"", ".x", ".y", ".z"}, tree.Registry.Paths())
	for _, p := range []string{".x", ".y", ".z"} {
		e, ok := tree.Registry.Entry(p)
		require.True(t, ok)
		require.Equal(t, 1, e.Len(), "path %s", p)
	}
	require.Equal(t, 0, tree.Root.Fields["x"].ShapeID)
	require.Equal(t, 0, tree.Root.Fields["y"].ShapeID)
	require.Equal(t, 0, tree.Root.Fields["z"].ShapeID)
}

func TestWalk_FieldOrderIndependent(t *testing.T) {
	a := mustWalk(t, `[{"a":1,"b":2,"c":3},{"c":3,"b":2,"a":1},{"b":2,"c":3,"a":1}]`)

	e, ok := a.Registry.Entry("[]")
	require.True(t, ok)
	require.Equal(t, 1, e.Len())
}

func TestWalk_GoValues(t *testing.T) {
	v := map[string]any{
		"f": 1.5,
		"i": 7,
		"l": int64(-3),
		"n": gojson.Number("1e400"),
	}

	tree, err := Walk(v)
	require.NoError(t, err)
	require.Equal(t, "1.5", tree.Root.Fields["f"].Text)
	require.Equal(t, "7", tree.Root.Fields["i"].Text)
	require.Equal(t, "-3", tree.Root.Fields["l"].Text)
	require.Equal(t, "1e400", tree.Root.Fields["n"].Text)

	_, err = Walk(map[string]any{"bad": struct{}{}})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.Contains(t, err.Error(), "$.bad")

	_, err = Walk([]any{math.Inf(1)})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestWalk_AmbiguousPath(t *testing.T) {
	v, err := Parse([]byte(`[{"a":1},[1,2]]`))
	require.NoError(t, err)

	_, err = Walk(v)
	require.ErrorIs(t, err, errs.ErrAmbiguousPath)
	require.Contains(t, err.Error(), "$[]")

	v, err = Parse([]byte(`{"x":[{"a":1}],"y":[[1]]}`))
	require.NoError(t, err)
	_, err = Walk(v)
	require.NoError(t, err, "arrays and objects at different paths are fine")
}

func TestWalk_MaxDepth(t *testing.T) {
	v, err := Parse([]byte(`[[[1]]]`))
	require.NoError(t, err)

	_, err = Walk(v, WithMaxDepth(3))
	require.NoError(t, err)

	_, err = Walk(v, WithMaxDepth(2))
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)

	_, err = Walk(v, WithMaxDepth(0))
	require.ErrorIs(t, err, errs.ErrInvalidMaxDepth)

	deep := any(1.0)
	for i := 0; i < DefaultMaxDepth+1; i++ {
		deep = map[string]any{"d": deep}
	}
	_, err = Walk(deep)
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)
}

type recordingObserver struct {
	events []string
	enters int
	leaves int
}

func (r *recordingObserver) ShapeDiscovered(path string, id int, shape schema.Shape) {
	r.events = append(r.events, schema.Display(path)+"#"+shape.String()+"="+string(rune('0'+id)))
}

func (r *recordingObserver) EnterPath(string, int) { r.enters++ }
func (r *recordingObserver) LeavePath(string, int) { r.leaves++ }

func TestWalk_Observer(t *testing.T) {
	obs := &recordingObserver{}
	mustWalk(t, `[{"a":1},{"a":2},{"b":null},{"a":3}]`, WithObserver(obs))

	require.Equal(t, []string{
		"$[]#{a:number}=0",
		"$[]#{b:null}=1",
	}, obs.events)
	require.Equal(t, 5, obs.enters)
	require.Equal(t, obs.enters, obs.leaves)

	t.Run("func observer", func(t *testing.T) {
		var paths []string
		mustWalk(t, `{"x":{"y":{}}}`, WithObserver(ObserverFunc(func(path string, _ int, _ schema.Shape) {
			paths = append(paths, path)
		})))
		require.Equal(t, []string{".x.y", ".x", ""}, paths, "children are classified before their parents")
	})

	t.Run("nil observer is silent", func(t *testing.T) {
		mustWalk(t, `{"a":1}`, WithObserver(nil))
	})
}

func TestParse(t *testing.T) {
	v, err := Parse([]byte(` {"a":[1,2.0]} `))
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": []any{gojson.Number("1"), gojson.Number("2.0")}}, v)

	_, err = Parse([]byte(`{"a":`))
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = Parse([]byte(`{} []`))
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = Parse([]byte(``))
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestParse_OutOfRangeNumbers(t *testing.T) {
	v, err := Parse([]byte(`{"a":[1e400, {"b":-1E-400}],"s":"x","t":true,"z":null}`))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"a": []any{gojson.Number("1e400"), map[string]any{"b": gojson.Number("-1E-400")}},
		"s": "x",
		"t": true,
		"z": nil,
	}, v)

	invalid := []string{
		`[1e400,01]`,
		`[1e400] x`,
		`[1e400,1.]`,
		`[1e400,nul]`,
	}
	for _, input := range invalid {
		_, err := Parse([]byte(input))
		require.ErrorIs(t, err, errs.ErrInvalidInput, input)
	}
}

func TestValidNumber(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"0", true},
		{"-0", true},
		{"12", true},
		{"1.5", true},
		{"1e400", true},
		{"-2E+10", true},
		{"3e-7", true},
		{"", false},
		{"-", false},
		{"01", false},
		{"1.", false},
		{".5", false},
		{"1e", false},
		{"1e+", false},
		{"+1", false},
		{"1x", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.valid, validNumber([]byte(tt.in)), tt.in)
	}
}
