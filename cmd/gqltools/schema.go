package main

import (
	"fmt"

	graphql "github.com/davidpdrsn/graphql-tools"
	"github.com/spf13/cobra"
)

// schemaCmd checks a schema file for internal consistency
var schemaCmd = &cobra.Command{
	Use:     "schema FILE",
	Short:   "Validate a schema for internal consistency",
	Example: "gqltools schema schema.graphql",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contents, err := readFile(args[0])
		if err != nil {
			return err
		}

		if _, err := graphql.LoadSchema(contents); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s\n", args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
