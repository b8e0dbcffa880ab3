package directory

// DirectoryError is a custom error type for directory-related errors
type DirectoryError string

// Error implements the error interface
func (e DirectoryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrProfileNotFound DirectoryError = "profile not found"
	ErrEmptyLastName   DirectoryError = "last name cannot be empty"
	ErrNilConfig       DirectoryError = "config cannot be nil"
	ErrNilProfileRepo  DirectoryError = "profile repository cannot be nil"
	ErrNilClock        DirectoryError = "clock cannot be nil"
)
