package service

import "errors"

var (
	// ErrGroupNotFound: the slug has no active group.
	ErrGroupNotFound = errors.New("group not found")
	// ErrNoActiveNumbers: the group exists but nobody can take the chat.
	ErrNoActiveNumbers = errors.New("no active numbers")
	// ErrSelectionConflict: the atomic select-and-touch failed twice.
	ErrSelectionConflict = errors.New("selection conflict")
	// ErrRecordingFailure: the click could not be queued or written. It
	// never reaches the visitor.
	ErrRecordingFailure = errors.New("recording failure")

	ErrInvalidInput = errors.New("invalid input")
)

// Reason is the tag of the error page a failed redirect lands on.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrGroupNotFound):
		return "group-not-found"
	case errors.Is(err, ErrNoActiveNumbers):
		return "no-numbers"
	default:
		return "internal-error"
	}
}
