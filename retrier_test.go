package graphql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountRetrier_stopsAfterConfiguredRetries(t *testing.T) {
	retrier := NewCountRetrier(2)
	someErr := errors.New("connection reset")

	// the initial attempt plus two retries
	assert.True(t, retrier.ShouldRetry(someErr, 1))
	assert.True(t, retrier.ShouldRetry(someErr, 2))
	assert.False(t, retrier.ShouldRetry(someErr, 3))
}

func TestCountRetrier_zeroRetriesMeansOneAttempt(t *testing.T) {
	retrier := NewCountRetrier(0)

	assert.False(t, retrier.ShouldRetry(errors.New("boom"), 1))
}
