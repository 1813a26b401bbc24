package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/arrayniac/errs"
)

func TestParseIndex(t *testing.T) {
	ix, err := ParseIndex([]byte(`{"":{"b":1,"a":0},"[]":[{"x":0},{"x":1,"y":0},{}]}`))
	require.NoError(t, err)
	require.Equal(t, 2, ix.Len())

	root, ok := ix.Lookup("")
	require.True(t, ok)
	require.False(t, root.Tagged)
	require.Equal(t, []string{"a", "b"}, root.Layouts[0].Names)

	elems, ok := ix.Lookup("[]")
	require.True(t, ok)
	require.True(t, elems.Tagged)
	require.Len(t, elems.Layouts, 3)
	require.Equal(t, []string{"y", "x"}, elems.Layouts[1].Names, "positions need not follow name order")
	require.Equal(t, 0, elems.Layouts[2].Len())
}

func TestParseIndex_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{`},
		{"null", `null`},
		{"array root", `[]`},
		{"trailing data", `{} {}`},
		{"scalar entry", `{"":5}`},
		{"single layout list", `{"[]":[{"a":0}]}`},
		{"non-object layout", `{"[]":[{"a":0},3]}`},
		{"string position", `{"":{"a":"0"}}`},
		{"fractional position", `{"":{"a":0.5}}`},
		{"position out of range", `{"":{"a":1}}`},
		{"negative position", `{"":{"a":-1,"b":0}}`},
		{"duplicate position", `{"":{"a":0,"b":0}}`},
		{"position beyond float64 range", `{"":{"a":1e400}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIndex([]byte(tt.input))
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrMalformedIndex)
		})
	}
}

func TestParseIndex_Empty(t *testing.T) {
	ix, err := ParseIndex([]byte(" {} \n"))
	require.NoError(t, err)
	require.Equal(t, 0, ix.Len())
	require.Empty(t, ix.Paths())
}
