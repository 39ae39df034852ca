package publisher

// Publisher mirrors report records onto a message stream so downstream
// consumers can react without polling the JSON artifact. Publishing is
// best-effort; the report file stays authoritative.
type Publisher interface {
	// Publish publishes one record payload under the given key
	Publish(key string, message []byte) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}
