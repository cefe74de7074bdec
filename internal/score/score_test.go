package score

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Boundaries(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0}, {1, 0}, {2, 0},
		{3, 1}, {4, 1},
		{5, 2},
		{6, 3},
		{7, 5},
		{8, 11}, {9, 11}, {16, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Value(tt.length), "length %d", tt.length)
	}
}

func TestNew_CountsLetters(t *testing.T) {
	assert.Equal(t, FoundWord{Word: "art", Value: 1}, New("art"))
	assert.Equal(t, 2, New("cr\u00eape").Value, "five letters, six bytes")
}

func TestSet_DeduplicatesByWord(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Add(New("cat")))
	assert.False(t, s.Add(New("cat")))
	assert.True(t, s.Add(New("at")))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("cat"))
	assert.False(t, s.Contains("ca"))
	assert.Equal(t, 1, s.Total())
}

func TestSet_MergeAndEqual(t *testing.T) {
	a := NewSet()
	a.Add(New("cat"))
	b := NewSet()
	b.Add(New("cat"))
	b.Add(New("cattle"))

	assert.False(t, a.Equal(b))
	a.Merge(b)
	assert.True(t, a.Equal(b))
	assert.Equal(t, 4, a.Total())
}

func TestSet_Sorted(t *testing.T) {
	s := NewSet()
	for _, w := range []string{"tar", "art", "start", "at"} {
		s.Add(New(w))
	}

	got := s.Sorted()
	require.Len(t, got, 4)
	assert.Equal(t, []FoundWord{
		{"start", 2}, {"art", 1}, {"tar", 1}, {"at", 0},
	}, got)
	assert.Equal(t, []string{"art", "at", "start", "tar"}, s.Words())
}

func TestWriteReport(t *testing.T) {
	s := NewSet()
	s.Add(New("at"))
	s.Add(New("art"))

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, s))

	assert.Equal(t, "Total score: 1\nValue,Word\n1,art\n0,at\n", buf.String())
}

func TestParseReport_RoundTrip(t *testing.T) {
	s := NewSet()
	for _, w := range []string{"at", "art", "smarter", "tarts"} {
		s.Add(New(w))
	}
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, s))

	parsed, err := ParseReport(&buf)
	require.NoError(t, err)
	assert.True(t, s.Equal(parsed))
}

func TestParseReport_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"empty", "", "empty input"},
		{"no total", "Value,Word\n", "Total score"},
		{"no header", "Total score: 0\n", "header"},
		{"bad value", "Total score: 1\nValue,Word\n3,art\n", "worth 1"},
		{"bad total", "Total score: 9\nValue,Word\n1,art\n", "does not match"},
		{"no comma", "Total score: 0\nValue,Word\nart\n", "expected value,word"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReport(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
