package main

import (
	"fmt"
	"strings"

	graphql "github.com/davidpdrsn/graphql-tools"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	formatWrite bool
	formatCheck bool
)

// formatCmd renders a file in canonical form and prints it, writes it back
// or reports whether the file already matches
var formatCmd = &cobra.Command{
	Use:   "format FILE",
	Short: "Format a query or a schema",
	Long: "Format a query or a schema. Whether the file contains a query " +
		"or a schema is inferred from its contents.",
	Example: "gqltools format queries/user.graphql --write",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if formatWrite && formatCheck {
			return errors.New("format cannot both check and write")
		}

		file := args[0]

		contents, err := readFile(file)
		if err != nil {
			return err
		}
		contents = strings.TrimSpace(contents)

		var formatted string
		if graphql.IsSchemaDocument(contents) {
			formatted, err = graphql.FormatSchema(contents)
		} else {
			formatted, err = graphql.FormatQuery(contents)
		}
		if err != nil {
			return err
		}

		switch {
		case formatWrite:
			return writeFile(file, formatted+"\n")
		case formatCheck:
			if formatted != contents {
				fmt.Fprintln(cmd.OutOrStdout(), graphql.Diff(contents, formatted))
				return errors.Errorf("%s is not formatted", file)
			}
		default:
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
		}

		return nil
	},
}

func init() {
	formatCmd.Flags().BoolVarP(&formatWrite, "write", "w", false, "write the formatted output back to the file")
	formatCmd.Flags().BoolVar(&formatCheck, "check", false, "exit non-zero when the file is not already formatted")
	rootCmd.AddCommand(formatCmd)
}
