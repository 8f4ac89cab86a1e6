package graphql

import (
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// FormatSchema parses a type-system document and renders its canonical form
func FormatSchema(contents string, opts ...FormatOption) (string, error) {
	document, err := parser.ParseSchema(&ast.Source{Input: contents})
	if err != nil {
		return "", err
	}

	return FormatSchemaDocument(document, opts...)
}

// FormatSchemaDocument renders the canonical form of an already parsed
// type-system document
func FormatSchemaDocument(document *ast.SchemaDocument, opts ...FormatOption) (string, error) {
	if len(document.Directives) > 0 {
		return "", unsupportedConstruct("directive definition")
	}
	if len(document.SchemaExtension) > 0 {
		return "", unsupportedConstruct("schema extension")
	}
	if len(document.Extensions) > 0 {
		return "", unsupportedConstruct("type extension")
	}

	f := &schemaFormatter{w: newFormatWriter(collectFormatOptions(opts))}

	// the parser collects schema blocks and type definitions into separate
	// lists but top-level definitions keep their source order
	type definition struct {
		position int
		format   func() error
	}

	definitions := []definition{}
	for _, schemaDefinition := range document.Schema {
		schemaDefinition := schemaDefinition
		definitions = append(definitions, definition{
			position: positionStart(schemaDefinition.Position),
			format:   func() error { return f.formatSchemaDefinition(schemaDefinition) },
		})
	}
	for _, typeDefinition := range document.Definitions {
		typeDefinition := typeDefinition
		definitions = append(definitions, definition{
			position: positionStart(typeDefinition.Position),
			format:   func() error { return f.formatDefinition(typeDefinition) },
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

type schemaFormatter struct {
	w *formatWriter
}

func (f *schemaFormatter) formatSchemaDefinition(definition *ast.SchemaDefinition) error {
	if len(definition.Directives) > 0 {
		return unsupportedConstruct("schema directive")
	}

	f.w.writeDescription(definition.Description)

	// the braces are only valid with at least one root type inside them
	if len(definition.OperationTypes) == 0 {
		f.w.writeIndented("schema\n")
		return nil
	}

	f.w.writeIndented("schema {\n")
	f.w.indent.increment()

	// root operation types always print in this order, whatever order they
	// were declared in
	for _, operation := range []ast.Operation{ast.Mutation, ast.Query, ast.Subscription} {
		for _, operationType := range definition.OperationTypes {
			if operationType.Operation == operation {
				f.w.writeIndented(string(operation) + ": " + operationType.Type + "\n")
			}
		}
	}

	f.w.indent.decrement()
	f.w.writeIndented("}\n")

	return nil
}

func (f *schemaFormatter) formatDefinition(definition *ast.Definition) error {
	if len(definition.Directives) > 0 {
		return unsupportedConstruct("type definition directive")
	}

	f.w.writeDescription(definition.Description)

	switch definition.Kind {
	case ast.Scalar:
		f.w.writeIndented("scalar " + definition.Name + "\n")
		return nil

	case ast.Object:
		header := "type " + definition.Name
		if len(definition.Interfaces) > 0 {
			// the implements clause keeps its declared order
			header += " implements " + strings.Join(definition.Interfaces, " & ")
		}
		f.w.writeIndented(header)
		return f.formatFieldBlock(definition.Fields)

	case ast.Interface:
		f.w.writeIndented("interface " + definition.Name)
		return f.formatFieldBlock(definition.Fields)

	case ast.Union:
		// a union is allowed to declare no members yet
		if len(definition.Types) == 0 {
			f.w.writeIndented("union " + definition.Name + "\n")
			return nil
		}

		members := make([]string, len(definition.Types))
		copy(members, definition.Types)
		sort.Strings(members)

		f.w.writeIndented("union " + definition.Name + " = " + strings.Join(members, " | ") + "\n")
		return nil

	case ast.Enum:
		f.w.writeIndented("enum " + definition.Name)
		return f.formatEnumBlock(definition.EnumValues)

	case ast.InputObject:
		f.w.writeIndented("input " + definition.Name)
		return f.formatInputBlock(definition.Fields)
	}

	return unsupportedConstruct(strings.ToLower(string(definition.Kind)) + " definition")
}

// formatFieldBlock renders the braced field list of an object or interface
// with the fields in alphabetical order
func (f *schemaFormatter) formatFieldBlock(fields ast.FieldList) error {
	// empty braces do not parse, so a definition without fields ends at
	// its header
	if len(fields) == 0 {
		f.w.write("\n")
		return nil
	}

	f.w.write(" {\n")
	f.w.indent.increment()

	for _, field := range sortFieldList(fields) {
		if err := f.formatFieldDefinition(field); err != nil {
			return err
		}
	}

	f.w.indent.decrement()
	f.w.writeIndented("}\n")

	return nil
}

func (f *schemaFormatter) formatFieldDefinition(field *ast.FieldDefinition) error {
	if len(field.Directives) > 0 {
		return unsupportedConstruct("field definition directive")
	}

	f.w.writeDescription(field.Description)
	f.w.writeIndented(field.Name)

	if len(field.Arguments) > 0 {
		args, err := renderArgumentDefinitions(field.Arguments)
		if err != nil {
			return err
		}
		f.w.writeArguments(args)
	}

	f.w.write(": " + field.Type.String() + "\n")

	return nil
}

func (f *schemaFormatter) formatEnumBlock(values ast.EnumValueList) error {
	if len(values) == 0 {
		f.w.write("\n")
		return nil
	}

	f.w.write(" {\n")
	f.w.indent.increment()

	sorted := make(ast.EnumValueList, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	for _, value := range sorted {
		if len(value.Directives) > 0 {
			return unsupportedConstruct("enum value directive")
		}

		f.w.writeDescription(value.Description)
		f.w.writeIndented(value.Name + "\n")
	}

	f.w.indent.decrement()
	f.w.writeIndented("}\n")

	return nil
}

// formatInputBlock renders the input-value list of an input object. When
// any entry carries a description the entries are separated by blank lines,
// otherwise they sit on consecutive lines.
func (f *schemaFormatter) formatInputBlock(fields ast.FieldList) error {
	if len(fields) == 0 {
		f.w.write("\n")
		return nil
	}

	f.w.write(" {\n")
	f.w.indent.increment()

	sorted := sortFieldList(fields)

	described := false
	for _, field := range sorted {
		if field.Description != "" {
			described = true
		}
	}

	for i, field := range sorted {
		if len(field.Directives) > 0 {
			return unsupportedConstruct("input value directive")
		}
		if field.DefaultValue != nil {
			return unsupportedConstruct("input value default value")
		}

		if described && i > 0 {
			f.w.write("\n")
		}

		f.w.writeDescription(field.Description)
		f.w.writeIndented(field.Name + ": " + field.Type.String() + "\n")
	}

	f.w.indent.decrement()
	f.w.writeIndented("}\n")

	return nil
}

// renderArgumentDefinitions renders each argument definition as
// "name: Type" sorted by argument name
func renderArgumentDefinitions(args ast.ArgumentDefinitionList) ([]string, error) {
	sorted := make(ast.ArgumentDefinitionList, len(args))
	copy(sorted, args)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	rendered := make([]string, 0, len(sorted))
	for _, arg := range sorted {
		if len(arg.Directives) > 0 {
			return nil, unsupportedConstruct("argument definition directive")
		}
		if arg.Description != "" {
			return nil, unsupportedConstruct("argument definition description")
		}
		if arg.DefaultValue != nil {
			return nil, unsupportedConstruct("argument definition default value")
		}

		rendered = append(rendered, arg.Name+": "+arg.Type.String())
	}

	return rendered, nil
}

func sortFieldList(fields ast.FieldList) ast.FieldList {
	sorted := make(ast.FieldList, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}
