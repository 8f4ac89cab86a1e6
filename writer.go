package graphql

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// indentation tracks the current nesting depth while a document is printed.
// Every increment during a subtree walk must be matched by a decrement
// before the walk returns.
type indentation struct {
	size  int
	count int
}

func (i *indentation) increment() {
	i.count++
}

func (i *indentation) decrement() {
	i.count--
}

// spaces returns the whitespace prefix for the current depth
func (i *indentation) spaces() string {
	return strings.Repeat(" ", i.count*i.size)
}

// formatWriter is the append-only accumulator the printers write into. It
// owns the indentation for the walk and tracks the length of the last line
// so the wrap policy can project where an argument list would end.
type formatWriter struct {
	buf           bytes.Buffer
	indent        indentation
	maxLineLength int
	lineLength    int
}

func newFormatWriter(opts *formatOptions) *formatWriter {
	return &formatWriter{
		indent:        indentation{size: opts.indentSize},
		maxLineLength: opts.maxLineLength,
	}
}

// write appends text without an indentation prefix
func (w *formatWriter) write(text string) {
	w.buf.WriteString(text)

	// the length of the last line is what wrap decisions look at, counted
	// in characters rather than bytes
	if idx := strings.LastIndexByte(text, '\n'); idx >= 0 {
		w.lineLength = utf8.RuneCountInString(text[idx+1:])
	} else {
		w.lineLength += utf8.RuneCountInString(text)
	}
}

// writeIndented appends text prefixed with the current indentation
func (w *formatWriter) writeIndented(text string) {
	w.write(w.indent.spaces() + text)
}

// writeDescription prints the single-line doc string above a described
// entity at the entity's own indentation. Descriptions are opaque: they are
// emitted verbatim between straight quotes.
func (w *formatWriter) writeDescription(description string) {
	if description == "" {
		return
	}

	w.writeIndented(`"` + description + `"` + "\n")
}

// writeArguments renders a parenthesized argument list. The entries are
// already fully rendered; if the comma-joined form would push the current
// line past the wrap column, each entry goes on its own line with a
// trailing comma and the closing paren drops to the enclosing indent.
func (w *formatWriter) writeArguments(args []string) {
	w.write("(")

	inline := strings.Join(args, ", ") + ")"
	if w.lineLength+utf8.RuneCountInString(inline) > w.maxLineLength {
		w.indent.increment()
		w.write("\n")
		for _, arg := range args {
			w.writeIndented(arg + ",\n")
		}
		w.indent.decrement()
		w.writeIndented(")")
	} else {
		w.write(inline)
	}
}

// result trims the accumulated text and returns it
func (w *formatWriter) result() string {
	return strings.TrimSpace(w.buf.String())
}
