package graphql

// Retrier decides whether a failed query is worth another attempt. The
// network queryer consults it after every failure with the error that was
// produced and how many attempts have run so far, starting at 1.
type Retrier interface {
	ShouldRetry(err error, attempts uint) bool
}

var _ Retrier = CountRetrier{}

// CountRetrier allows a fixed number of retries regardless of the error.
// It backs the CLI's --retries flag: a flaky host deserves another try,
// and distinguishing that from a genuinely broken query is left to the
// person reading the final error.
type CountRetrier struct {
	maxAttempts uint
}

// NewCountRetrier returns a CountRetrier that allows the given number of
// retries on top of the initial attempt
func NewCountRetrier(maxRetries uint) CountRetrier {
	return CountRetrier{
		maxAttempts: maxRetries + 1,
	}
}

// ShouldRetry reports whether there are attempts left to spend
func (c CountRetrier) ShouldRetry(err error, attempts uint) bool {
	return attempts < c.maxAttempts
}
