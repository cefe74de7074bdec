package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_Primitives(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "art", `"art"`},
		{"int", 11, `11`},
		{"int64", int64(-3), `-3`},
		{"true", true, `true`},
		{"false", false, `false`},
		{"strings", []string{"b", "a"}, `["b","a"]`},
		{"ints", []int{1, 2}, `[1,2]`},
		{"no html escape", "<a&b>", `"<a&b>"`},
		{"line separator", "a\u2028b", "\"a\u2028b\""},
		{"escaped backslash kept", `\u2028`, `"\\u2028"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestMarshal_ObjectKeyOrder(t *testing.T) {
	got, err := Marshal(map[string]any{
		"words": []any{"art", "at"},
		"score": 1,
		"board": []string{"at", "rx"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"board":["at","rx"],"score":1,"words":["art","at"]}`, string(got))
}

func TestMarshal_NFC(t *testing.T) {
	decomposed := "cre\u0302pe"
	composed := "cr\u00eape"

	a, err := Marshal(decomposed)
	require.NoError(t, err)
	b, err := Marshal(composed)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestMarshal_Rejects(t *testing.T) {
	for _, v := range []any{nil, 1.5, float32(2), struct{}{}, map[string]any{"x": nil}} {
		_, err := Marshal(v)
		assert.Error(t, err, "%#v", v)
	}
}

func TestHashes_Stable(t *testing.T) {
	g1, err := GridHash([][]rune{{'a', 't'}, {'r', 'x'}})
	require.NoError(t, err)
	g2, err := GridHash([][]rune{{'a', 't'}, {'r', 'x'}})
	require.NoError(t, err)
	g3, err := GridHash([][]rune{{'a', 't', 'r', 'x'}})
	require.NoError(t, err)

	assert.Equal(t, g1, g2)
	assert.NotEqual(t, g1, g3, "shape is part of identity")
	assert.Len(t, g1, 64)

	d1, err := DictionaryHash([]string{"at", "art"})
	require.NoError(t, err)
	d2, err := DictionaryHash([]string{"art", "at"})
	require.NoError(t, err)
	assert.Equal(t, d1, d2, "order independent")

	s1, err := SolveID(g1, d1)
	require.NoError(t, err)
	s2, err := SolveID(g3, d1)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, g1, d1, "domains are separated")
}
