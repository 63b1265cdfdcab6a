package interfaces

// Dependencies holds the external capabilities required by the core pipeline.
// Controllers and the feed client receive this container at construction so
// that nothing reaches for ambient global state.
type Dependencies struct {
	// Cache provides the shared key-value store with TTL expiry
	Cache Cache

	// HTTPClient performs the upstream feed fetches
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
