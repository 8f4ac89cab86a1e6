package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndentation(t *testing.T) {
	indent := indentation{size: 2}
	indent.increment()
	indent.increment()
	indent.decrement()

	assert.Equal(t, "  ", indent.spaces())
}

func TestFormatWriter_tracksLineLength(t *testing.T) {
	w := newFormatWriter(&formatOptions{indentSize: 2, maxLineLength: 80})

	w.write("hello")
	assert.Equal(t, 5, w.lineLength)

	w.write(" {\n")
	assert.Equal(t, 0, w.lineLength)

	w.indent.increment()
	w.writeIndented("world")
	assert.Equal(t, 7, w.lineLength)
}

func TestFormatWriter_countsCharactersNotBytes(t *testing.T) {
	w := newFormatWriter(&formatOptions{indentSize: 2, maxLineLength: 80})

	// five characters, six bytes
	w.write("héllo")
	assert.Equal(t, 5, w.lineLength)
}

func TestFormatWriter_writeArguments(t *testing.T) {
	// the table of argument lists to render
	rows := []struct {
		name          string
		maxLineLength int
		expected      string
	}{
		{
			name:          "arguments that fit stay on one line",
			maxLineLength: 80,
			expected:      "field(a: 1, b: 2)",
		},
		{
			name:          "arguments that do not fit go one per line",
			maxLineLength: 10,
			expected: `field(
  a: 1,
  b: 2,
)`,
		},
	}

	for _, row := range rows {
		t.Run(row.name, func(t *testing.T) {
			w := newFormatWriter(&formatOptions{indentSize: 2, maxLineLength: row.maxLineLength})

			w.write("field")
			w.writeArguments([]string{"a: 1", "b: 2"})

			assert.Equal(t, row.expected, w.result())
		})
	}
}

func TestFormatWriter_writeDescription(t *testing.T) {
	w := newFormatWriter(&formatOptions{indentSize: 2, maxLineLength: 80})

	// nothing to print
	w.writeDescription("")
	assert.Equal(t, "", w.buf.String())

	w.writeDescription("A user")
	assert.Equal(t, "\"A user\"\n", w.buf.String())
}
