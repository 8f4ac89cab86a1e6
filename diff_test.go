package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	// equal strings produce an unmarked diff
	assert.Equal(t, "same", Diff("same", "same"))

	// differing strings keep the shared text and mark the change
	diff := Diff("query {\n  a\n}", "query {\n  b\n}")
	assert.Contains(t, diff, "query {")
	assert.NotEqual(t, "query {\n  a\n}", diff)
}
