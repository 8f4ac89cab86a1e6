package main

import (
	"fmt"
	"path/filepath"

	graphql "github.com/davidpdrsn/graphql-tools"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	validateHost    string
	validateRetries uint
)

// validateCmd runs every query matched by a glob against a service and
// reports which ones failed
var validateCmd = &cobra.Command{
	Use:     "validate GLOB",
	Short:   "Validate queries by running them and seeing if they work",
	Example: `gqltools validate "queries/*.graphql" --host http://localhost:4000/graphql`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := filepath.Glob(args[0])
		if err != nil {
			return err
		}

		queryer := graphql.NewNetworkQueryer(validateHost).
			WithRetrier(graphql.NewCountRetrier(validateRetries))

		failed := []string{}
		for _, file := range files {
			contents, err := readFile(file)
			if err != nil {
				return err
			}

			// schema files are not runnable
			if graphql.IsSchemaDocument(contents) {
				continue
			}

			result := map[string]interface{}{}
			err = queryer.Query(cmd.Context(), &graphql.QueryInput{
				Query:     contents,
				Variables: map[string]interface{}{},
			}, &result)

			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "⛔️ %s\n", file)
				failed = append(failed, file)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "✅ %s\n", file)
			}
		}

		if len(failed) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "\nFailures:")
			for _, file := range failed {
				fmt.Fprintln(cmd.OutOrStdout(), file)
			}

			return errors.Errorf("%d queries failed", len(failed))
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateHost, "host", "", "the URL of the GraphQL web service")
	validateCmd.Flags().UintVar(&validateRetries, "retries", 0, "how many times to retry a failed request")
	validateCmd.MarkFlagRequired("host")
	rootCmd.AddCommand(validateCmd)
}
