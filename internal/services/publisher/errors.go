package publisher

// PublisherError is a custom error type for publisher-related errors
type PublisherError string

// Error implements the error interface
func (e PublisherError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrNotModified is returned by a Transport when an edit would not
	// change the message content. The publisher treats it as success.
	ErrNotModified PublisherError = "message is not modified"

	// ErrMessageNotFound is returned by a Transport when the target
	// message no longer exists
	ErrMessageNotFound PublisherError = "message not found"

	ErrNilConfig    PublisherError = "config cannot be nil"
	ErrNilRoster    PublisherError = "roster service cannot be nil"
	ErrNilTransport PublisherError = "transport cannot be nil"
)
