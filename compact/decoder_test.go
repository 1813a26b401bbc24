package compact

import (
	"fmt"
	"math/rand"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/schema"
)

func roundTrip(t *testing.T, v any) any {
	t.Helper()

	tree, err := Walk(v)
	require.NoError(t, err)
	doc, err := tree.Document()
	require.NoError(t, err)
	idx, err := tree.Index()
	require.NoError(t, err)

	ix, err := schema.ParseIndex(idx)
	require.NoError(t, err)
	out, err := DecodeValue(doc, ix)
	require.NoError(t, err)

	return out
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		document string
		index    string
		expected string
	}{
		{
			name:     "single shape",
			document: `[1,"x"]`,
			index:    `{"":{"a":0,"b":1}}`,
			expected: `{"a":1,"b":"x"}`,
		},
		{
			name:     "tagged shapes",
			document: `[[0,1],[1,2,3]]`,
			index:    `{"[]":[{"a":0},{"a":0,"b":1}]}`,
			expected: `[{"a":1},{"a":2,"b":3}]`,
		},
		{
			name:     "positions are taken from the index",
			document: `["x",1]`,
			index:    `{"":{"a":1,"b":0}}`,
			expected: `{"a":1,"b":"x"}`,
		},
		{
			name:     "plain arrays without entries",
			document: `[[1,2],[],[[null]]]`,
			index:    `{}`,
			expected: `[[1,2],[],[[null]]]`,
		},
		{
			name:     "scalar root",
			document: `"hi"`,
			index:    `{}`,
			expected: `"hi"`,
		},
		{
			name:     "nested paths use decoded names",
			document: `[[[7]],[]]`,
			index:    `{"":{"outer":0,"tags":1},".outer":{"inner":0},".outer.inner":{"v":0}}`,
			expected: `{"outer":{"inner":{"v":7}},"tags":[]}`,
		},
		{
			name:     "arrays at unindexed paths stay plain",
			document: `[[1]]`,
			index:    `{}`,
			expected: `[[1]]`,
		},
		{
			name:     "html characters are written verbatim",
			document: `["<a&b>"]`,
			index:    `{"":{"html":0}}`,
			expected: `{"html":"<a&b>"}`,
		},
		{
			name:     "number literals survive",
			document: `[1.50000000000000000001,1e400]`,
			index:    `{"":{"a":0,"b":1}}`,
			expected: `{"a":1.50000000000000000001,"b":1e400}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Decode([]byte(tt.document), []byte(tt.index))
			require.NoError(t, err)
			require.Equal(t, tt.expected, string(out))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		document string
		index    string
		err      error
	}{
		{"tag out of range", `[[5,1]]`, `{"[]":[{"a":0},{"b":0}]}`, errs.ErrShapeTagOutOfRange},
		{"negative tag", `[[-1,1]]`, `{"[]":[{"a":0},{"b":0}]}`, errs.ErrShapeTagOutOfRange},
		{"missing tag", `[[]]`, `{"[]":[{"a":0},{"b":0}]}`, errs.ErrMalformedDocument},
		{"non-integer tag", `[["x",1]]`, `{"[]":[{"a":0},{"b":0}]}`, errs.ErrMalformedDocument},
		{"fractional tag", `[[1.5,1]]`, `{"[]":[{"a":0},{"b":0}]}`, errs.ErrMalformedDocument},
		{"too many values", `[1,2]`, `{"":{"a":0}}`, errs.ErrMalformedDocument},
		{"too few values", `[]`, `{"":{"a":0}}`, errs.ErrMalformedDocument},
		{"object in document", `{"a":1}`, `{}`, errs.ErrMalformedDocument},
		{"invalid document", `[1,`, `{}`, errs.ErrMalformedDocument},
		{"invalid index", `[1]`, `[`, errs.ErrMalformedIndex},
		{"index entry matches nothing", `[1]`, `{".x":{"a":0}}`, errs.ErrMissingSchemaEntry},
		{"object root", `{"": 1}`, `{}`, errs.ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.document), []byte(tt.index))
			require.Error(t, err)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRestore(t *testing.T) {
	tree := mustWalk(t, `{"a":[{"x":1},{"y":2}]}`)
	doc, err := tree.Document()
	require.NoError(t, err)

	v, err := Parse(doc)
	require.NoError(t, err)

	out, err := Restore(v, tree.Registry.ToIndex())
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"a": []any{
			map[string]any{"x": gojson.Number("1")},
			map[string]any{"y": gojson.Number("2")},
		},
	}, out)

	t.Run("float tags from other decoders", func(t *testing.T) {
		out, err := Restore([]any{[]any{1.0, "v"}}, tree.Registry.ToIndex())
		require.ErrorIs(t, err, errs.ErrMissingSchemaEntry)
		require.Nil(t, out)

		out, err = Restore(map[string]any{}, tree.Registry.ToIndex())
		require.ErrorIs(t, err, errs.ErrMalformedDocument)
		require.Nil(t, out)

		ix, err := schema.ParseIndex([]byte(`{"[]":[{"a":0},{"b":0}]}`))
		require.NoError(t, err)
		out, err = Restore([]any{[]any{1.0, "v"}}, ix)
		require.NoError(t, err)
		require.Equal(t, []any{map[string]any{"b": "v"}}, out)
	})

	t.Run("max depth", func(t *testing.T) {
		ix, err := schema.ParseIndex([]byte(`{}`))
		require.NoError(t, err)

		_, err = Restore([]any{[]any{[]any{}}}, ix, WithMaxDepth(2))
		require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)

		_, err = Restore([]any{[]any{[]any{}}}, ix, WithMaxDepth(3))
		require.NoError(t, err)
	})
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`"s"`,
		`[]`,
		`{}`,
		`{"a": 1, "b": "x"}`,
		`[{"a":1},{"a":2,"b":3}]`,
		`[{},{"a":{}},{"a":{"b":[]}}]`,
		`{"x":{"k":1},"y":{"k":"1"}}`,
		`[[{"a":1}],[{"b":2}],[]]`,
		`{"a.b":{"c":1},"a":{"b":{"c":"x"}}}`,
		`{"":{"":[{"":null}]}}`,
		`{"unicode ✓":"é😀","esc":"\t\"\\/"}`,
		`{"users":[{"id":1,"tags":[]},{"id":2,"addr":{"zip":"1"}},{"id":3,"tags":["x",{"k":1}]}]}`,
		`[1,"two",3.0,true,null,[1,[2,[3]]]]`,
		`{"big":[1e400,{"n":-1e-400}],"html":"<a&b>"}`,
	}

	for i, input := range inputs {
		t.Run(fmt.Sprintf("doc%d", i), func(t *testing.T) {
			v, err := Parse([]byte(input))
			require.NoError(t, err)
			require.Equal(t, v, roundTrip(t, v))
		})
	}
}

// genValue builds a random document in which every path holds either only
// objects or only arrays (besides scalars), so it always encodes.
func genValue(r *rand.Rand, depth int) any {
	if depth > 4 || r.Intn(4) == 0 {
		switch r.Intn(5) {
		case 0:
			return nil
		case 1:
			return r.Intn(2) == 0
		case 2:
			return gojson.Number(fmt.Sprintf("%d", r.Intn(1000)-500))
		case 3:
			return gojson.Number(fmt.Sprintf("%.3f", r.Float64()))
		default:
			return fmt.Sprintf("s%d", r.Intn(50))
		}
	}

	if depth%2 == 0 {
		obj := map[string]any{}
		for _, name := range []string{"a", "b", "c", "d", "e"} {
			if r.Intn(2) == 0 {
				obj[name] = genValue(r, depth+1)
			}
		}

		return obj
	}

	arr := make([]any, r.Intn(5))
	for i := range arr {
		arr[i] = genValue(r, depth+1)
	}

	return arr
}

func TestRoundTrip_Random(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		v := genValue(r, 0)
		require.Equal(t, v, roundTrip(t, v), "document %d", i)
	}
}

func BenchmarkDecode(b *testing.B) {
	input := []byte(`{"users":[{"id":1,"name":"a","tags":["x","y"]},{"id":2,"name":"b","tags":[]},{"id":3,"name":"c","email":"c@x"}]}`)
	v, err := Parse(input)
	require.NoError(b, err)
	tree, err := Walk(v)
	require.NoError(b, err)
	doc, err := tree.Document()
	require.NoError(b, err)
	idx, err := tree.Index()
	require.NoError(b, err)

	b.ResetTimer()
	for b.Loop() {
		if _, err := Decode(doc, idx); err != nil {
			b.Fatal(err)
		}
	}
}
