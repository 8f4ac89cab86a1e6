package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "gqltools",
	Short:        "GraphQL tools",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readFile(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not read %s", path)
	}

	return string(contents), nil
}

func writeFile(path string, contents string) error {
	return errors.Wrapf(os.WriteFile(path, []byte(contents), 0o644), "could not write %s", path)
}
