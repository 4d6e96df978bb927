package csvfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"plain fields", "a,b,c", []string{"a", "b", "c"}},
		{"empty fields kept", "a,,c", []string{"a", "", "c"}},
		{"trailing delimiter", "a,b,", []string{"a", "b", ""}},
		{"enclosed field", `"a,b",c`, []string{"a,b", "c"}},
		{"enclosed empty field", `"",c`, []string{"", "c"}},
		{"escaped enclosure inside field", `"a\"b",c`, []string{`a"b`, "c"}},
		{"doubled enclosure inside field", `"a""b",c`, []string{`a"b`, "c"}},
		{"single field", "abc", []string{"abc"}},
		{"empty line", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitLine(tt.line, ',', DefaultEnclosure, DefaultEscape)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSplitLineOtherDelimiters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, splitLine("a\tb", '\t', DefaultEnclosure, DefaultEscape))
	assert.Equal(t, []string{"a", "b", "c"}, splitLine("a;b;c", ';', DefaultEnclosure, DefaultEscape))
	// the configured delimiter is the only one that splits
	assert.Equal(t, []string{"a,b"}, splitLine("a,b", ';', DefaultEnclosure, DefaultEscape))
}

func TestJoinFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"a","b,c"`, joinFields([]string{"a", "b,c"}, ',', '"', '\\'))
	assert.Equal(t, `"a\"b"`, joinFields([]string{`a"b`}, ',', '"', '\\'))
	assert.Equal(t, "", joinFields(nil, ',', '"', '\\'))

	// join then split is lossless for ordinary content
	fields := []string{"Land Rover", "17", `say "hi"`}
	line := joinFields(fields, ',', DefaultEnclosure, DefaultEscape)
	assert.Equal(t, fields, splitLine(line, ',', DefaultEnclosure, DefaultEscape))
}

func TestIsBlankFields(t *testing.T) {
	t.Parallel()

	assert.True(t, isBlankFields([]string{""}))
	assert.True(t, isBlankFields([]string{"", "", ""}))
	assert.False(t, isBlankFields([]string{"", "x"}))
	assert.True(t, isBlankFields(nil))
}
