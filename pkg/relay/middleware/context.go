package middleware

// contextKey is a private type for context values set by middleware,
// avoiding collisions with other packages.
type contextKey int

const (
	// requestIDKey holds the request ID string.
	requestIDKey contextKey = iota

	// startTimeKey holds the time the request entered the middleware chain.
	startTimeKey
)
