package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSchemaDocument(t *testing.T) {
	// the table of contents to classify
	rows := []struct {
		name     string
		contents string
		expected bool
	}{
		{
			name:     "query documents are not schemas",
			contents: "query {\n  hello\n}",
			expected: false,
		},
		{
			name:     "a schema block anywhere marks a schema",
			contents: "type Query {\n  hello: String\n}\n\nschema {\n  query: Query\n}",
			expected: true,
		},
		{
			name:     "a leading schema block marks a schema",
			contents: "schema {\n  query: Query\n}",
			expected: true,
		},
		{
			name:     "fields named schema do not count",
			contents: "query {\n  schema\n}",
			expected: false,
		},
	}

	for _, row := range rows {
		t.Run(row.name, func(t *testing.T) {
			assert.Equal(t, row.expected, IsSchemaDocument(row.contents))
		})
	}
}

func TestCollectFormatOptions(t *testing.T) {
	// defaults apply when nothing is passed
	options := collectFormatOptions(nil)
	assert.Equal(t, DefaultIndentSize, options.indentSize)
	assert.Equal(t, DefaultMaxLineLength, options.maxLineLength)

	options = collectFormatOptions([]FormatOption{WithIndentSize(4), WithMaxLineLength(120)})
	assert.Equal(t, 4, options.indentSize)
	assert.Equal(t, 120, options.maxLineLength)
}
