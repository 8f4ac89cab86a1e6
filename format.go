package graphql

import "strings"

const (
	// DefaultIndentSize is the number of spaces per nesting level
	DefaultIndentSize = 2
	// DefaultMaxLineLength is the column after which argument lists wrap
	DefaultMaxLineLength = 80
)

type formatOptions struct {
	indentSize    int
	maxLineLength int
}

// FormatOption configures a single formatting call
type FormatOption func(*formatOptions)

// WithIndentSize sets the number of spaces used for one indentation level
func WithIndentSize(size int) FormatOption {
	return func(opts *formatOptions) {
		opts.indentSize = size
	}
}

// WithMaxLineLength sets the column after which argument lists are broken
// onto one line per argument
func WithMaxLineLength(length int) FormatOption {
	return func(opts *formatOptions) {
		opts.maxLineLength = length
	}
}

func collectFormatOptions(opts []FormatOption) *formatOptions {
	options := &formatOptions{
		indentSize:    DefaultIndentSize,
		maxLineLength: DefaultMaxLineLength,
	}

	for _, opt := range opts {
		opt(options)
	}

	return options
}

// IsSchemaDocument reports whether the contents look like a type-system
// document rather than an operation document. A document that declares a
// schema block anywhere is a schema document.
func IsSchemaDocument(contents string) bool {
	for _, line := range strings.Split(contents, "\n") {
		if strings.HasPrefix(line, "schema") {
			return true
		}
	}

	return false
}
