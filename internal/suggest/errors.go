package suggest

import "errors"

var (
	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid suggestion output format")

	// ErrNoContent indicates the API returned a response without any text
	// content block.
	ErrNoContent = errors.New("no text content in response")
)
