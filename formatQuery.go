package graphql

import (
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// FormatQuery parses an operation document and renders its canonical form
func FormatQuery(contents string, opts ...FormatOption) (string, error) {
	document, err := parser.ParseQuery(&ast.Source{Input: contents})
	if err != nil {
		return "", err
	}

	return FormatQueryDocument(document, opts...)
}

// FormatQueryDocument renders the canonical form of an already parsed
// operation document
func FormatQueryDocument(document *ast.QueryDocument, opts ...FormatOption) (string, error) {
	f := &queryFormatter{w: newFormatWriter(collectFormatOptions(opts))}

	// the parser splits operations and fragments into separate lists but
	// top-level definitions keep their source order
	type definition struct {
		position int
		format   func() error
	}

	definitions := []definition{}
	for _, operation := range document.Operations {
		operation := operation
		definitions = append(definitions, definition{
			position: positionStart(operation.Position),
			format:   func() error { return f.formatOperation(operation) },
		})
	}
	for _, fragment := range document.Fragments {
		fragment := fragment
		definitions = append(definitions, definition{
			position: positionStart(fragment.Position),
			format:   func() error { return f.formatFragment(fragment) },
		})
	}
	sort.SliceStable(definitions, func(i, j int) bool {
		return definitions[i].position < definitions[j].position
	})

	for i, def := range definitions {
		if i > 0 {
			// one blank line between top-level definitions
			f.w.write("\n")
		}

		if err := def.format(); err != nil {
			return "", err
		}
	}

	return f.w.result(), nil
}

type queryFormatter struct {
	w *formatWriter
}

func (f *queryFormatter) formatOperation(operation *ast.OperationDefinition) error {
	if len(operation.Directives) > 0 {
		return unsupportedConstruct("operation directive")
	}

	f.w.writeIndented(string(operation.Operation))
	if operation.Name != "" {
		f.w.write(" " + operation.Name)
	}

	if len(operation.VariableDefinitions) > 0 {
		variables := []string{}
		for _, variable := range operation.VariableDefinitions {
			if len(variable.Directives) > 0 {
				return unsupportedConstruct("variable definition directive")
			}

			rendered := "$" + variable.Variable + ": " + variable.Type.String()
			if variable.DefaultValue != nil {
				rendered += " = " + variable.DefaultValue.String()
			}

			variables = append(variables, rendered)
		}

		// variable definitions keep their source order
		if operation.Name == "" {
			f.w.write(" ")
		}
		f.w.write("(" + strings.Join(variables, ", ") + ")")
	}

	return f.formatSelectionSet(operation.SelectionSet)
}

func (f *queryFormatter) formatFragment(fragment *ast.FragmentDefinition) error {
	if len(fragment.Directives) > 0 {
		return unsupportedConstruct("fragment directive")
	}

	f.w.writeIndented("fragment " + fragment.Name + " on " + fragment.TypeCondition)

	return f.formatSelectionSet(fragment.SelectionSet)
}

// formatSelectionSet renders one brace scope with its entries in canonical
// order
func (f *queryFormatter) formatSelectionSet(selectionSet ast.SelectionSet) error {
	if len(selectionSet) == 0 {
		f.w.write("\n")
		return nil
	}

	f.w.write(" {\n")
	f.w.indent.increment()

	for _, selection := range sortSelectionSet(selectionSet) {
		if err := f.formatSelection(selection); err != nil {
			return err
		}
	}

	f.w.indent.decrement()
	f.w.writeIndented("}\n")

	return nil
}

func (f *queryFormatter) formatSelection(selection ast.Selection) error {
	switch selection := selection.(type) {
	case *ast.Field:
		return f.formatField(selection)

	case *ast.FragmentSpread:
		if len(selection.Directives) > 0 {
			return unsupportedConstruct("fragment spread directive")
		}

		f.w.writeIndented("..." + selection.Name + "\n")

	case *ast.InlineFragment:
		if len(selection.Directives) > 0 {
			return unsupportedConstruct("inline fragment directive")
		}

		if selection.TypeCondition != "" {
			f.w.writeIndented("... on " + selection.TypeCondition)
		} else {
			f.w.writeIndented("...")
		}

		return f.formatSelectionSet(selection.SelectionSet)
	}

	return nil
}

func (f *queryFormatter) formatField(field *ast.Field) error {
	if len(field.Directives) > 0 {
		return unsupportedConstruct("field directive")
	}

	// the parser fills in the alias with the field name when none is given
	if field.Alias != "" && field.Alias != field.Name {
		f.w.writeIndented(field.Alias + ": " + field.Name)
	} else {
		f.w.writeIndented(field.Name)
	}

	if len(field.Arguments) > 0 {
		f.w.writeArguments(renderArguments(field.Arguments))
	}

	if len(field.SelectionSet) > 0 {
		return f.formatSelectionSet(field.SelectionSet)
	}

	f.w.write("\n")

	return nil
}

// renderArguments renders each argument as "name: value", sorted by
// argument name with ties keeping source order. Value spacing is whatever
// the parser's own stringification produces.
func renderArguments(args ast.ArgumentList) []string {
	sorted := make(ast.ArgumentList, len(args))
	copy(sorted, args)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	rendered := make([]string, 0, len(sorted))
	for _, arg := range sorted {
		rendered = append(rendered, arg.Name+": "+arg.Value.String())
	}

	return rendered
}

// sortSelectionSet computes the canonical order for one selection set: leaf
// fields, then fields with nested selections, fragment spreads, inline
// fragments with a type condition, and bare inline fragments, each tier
// alphabetical.
func sortSelectionSet(selectionSet ast.SelectionSet) ast.SelectionSet {
	sorted := make(ast.SelectionSet, len(selectionSet))
	copy(sorted, selectionSet)

	sort.SliceStable(sorted, func(i, j int) bool {
		tierI, nameI := selectionSortKey(sorted[i])
		tierJ, nameJ := selectionSortKey(sorted[j])
		if tierI != tierJ {
			return tierI < tierJ
		}
		return nameI < nameJ
	})

	return sorted
}

func selectionSortKey(selection ast.Selection) (int, string) {
	switch selection := selection.(type) {
	case *ast.Field:
		if len(selection.SelectionSet) == 0 {
			return 0, selection.Name
		}
		return 1, selection.Name
	case *ast.FragmentSpread:
		return 2, selection.Name
	case *ast.InlineFragment:
		if selection.TypeCondition != "" {
			return 3, selection.TypeCondition
		}
		return 4, ""
	default:
		return 5, ""
	}
}

func positionStart(position *ast.Position) int {
	if position == nil {
		return 0
	}

	return position.Start
}
