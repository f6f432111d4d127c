package sdpcheck

import "fmt"

const (
	ErrTypeError                 = "TypeError"
	ErrInvalidSessionDescription = "InvalidSessionDescriptionError"
)

func makeError(code string, message string) (err error) {
	return fmt.Errorf("%s: %s", code, message)
}

func wrapError(code string, message string, cause error) error {
	return fmt.Errorf("%s: %s: %w", code, message, cause)
}
