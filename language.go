package graphql

import "github.com/vektah/gqlparser/v2/ast"

// ExtractVariables takes a list of arguments and returns a list of every variable used
func ExtractVariables(args ast.ArgumentList) []string {
	// the list of variables
	variables := []string{}

	// each argument could contain variables
	for _, arg := range args {
		extractVariablesFromValues(&variables, arg.Value)
	}

	// return the list
	return variables
}

func extractVariablesFromValues(accumulator *[]string, value *ast.Value) {
	// we have to look out for a few different kinds of values
	switch value.Kind {
	// if the value is a reference to a variable
	case ast.Variable:
		// add the reference to the list
		*accumulator = append(*accumulator, value.Raw)
	// the value could be a list
	case ast.ListValue, ast.ObjectValue:
		// each entry in the list or object could contribute a variable
		for _, child := range value.Children {
			extractVariablesFromValues(accumulator, child.Value)
		}
	}
}

// QueryVariables returns the name of every variable referenced anywhere in
// the document, in first-use order without duplicates
func QueryVariables(document *ast.QueryDocument) []string {
	seen := map[string]bool{}
	variables := []string{}

	record := func(args ast.ArgumentList) {
		for _, variable := range ExtractVariables(args) {
			if !seen[variable] {
				seen[variable] = true
				variables = append(variables, variable)
			}
		}
	}

	var walk func(selectionSet ast.SelectionSet)
	walk = func(selectionSet ast.SelectionSet) {
		for _, selection := range selectionSet {
			switch selection := selection.(type) {
			case *ast.Field:
				record(selection.Arguments)
				walk(selection.SelectionSet)
			case *ast.InlineFragment:
				walk(selection.SelectionSet)
			}
		}
	}

	for _, operation := range document.Operations {
		walk(operation.SelectionSet)
	}
	for _, fragment := range document.Fragments {
		walk(fragment.SelectionSet)
	}

	return variables
}
