// Package common defines sentinel errors shared by the forum store, session
// and controller layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrDuplicateUsername  = errors.New("a user with this username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")

	// Form-level errors, raised before the store is consulted.
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrMissingRequiredField = errors.New("all fields are required")
	ErrNotAuthenticated     = errors.New("you must be logged in")
)

// IsUserFacing reports whether err belongs to the recoverable taxonomy that
// is shown to the user as an inline notice rather than treated as a failure
// of the program itself.
func IsUserFacing(err error) bool {
	for _, target := range []error{
		ErrDuplicateUsername,
		ErrInvalidCredentials,
		ErrTopicNotFound,
		ErrPasswordMismatch,
		ErrMissingRequiredField,
		ErrNotAuthenticated,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
