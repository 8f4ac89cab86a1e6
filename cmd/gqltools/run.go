package main

import (
	"encoding/json"
	"fmt"
	"strings"

	graphql "github.com/davidpdrsn/graphql-tools"
	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

var (
	runHost    string
	runRetries uint
)

// runCmd executes the query in a file against a GraphQL web service and
// pretty prints the response
var runCmd = &cobra.Command{
	Use:     "run FILE",
	Short:   "Run a query against a GraphQL web service",
	Example: "gqltools run queries/user.graphql --host http://localhost:4000/graphql",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contents, err := readFile(args[0])
		if err != nil {
			return err
		}

		// make sure the file parses before sending it anywhere
		document, err := parser.ParseQuery(&ast.Source{Input: contents})
		if err != nil {
			return err
		}

		// the query is sent with an empty variable map so anything it
		// references will arrive as null
		if variables := graphql.QueryVariables(document); len(variables) > 0 {
			fmt.Fprintf(
				cmd.ErrOrStderr(),
				"warning: query references $%s but no variables are sent\n",
				strings.Join(variables, ", $"),
			)
		}

		queryer := graphql.NewNetworkQueryer(runHost).
			WithRetrier(graphql.NewCountRetrier(runRetries))

		result := map[string]interface{}{}
		err = queryer.Query(cmd.Context(), &graphql.QueryInput{
			Query:     contents,
			Variables: map[string]interface{}{},
		}, &result)
		if err != nil {
			return err
		}

		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(pretty))

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runHost, "host", "", "the URL of the GraphQL web service")
	runCmd.Flags().UintVar(&runRetries, "retries", 0, "how many times to retry a failed request")
	runCmd.MarkFlagRequired("host")
	rootCmd.AddCommand(runCmd)
}
