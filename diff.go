package graphql

import "github.com/sergi/go-diff/diffmatchpatch"

// Diff returns a terminal-colored diff between the two strings. It backs
// the CLI's check mode, which prints the difference between a file and its
// canonical form.
func Diff(before string, after string) string {
	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return dmp.DiffPrettyText(diffs)
}
