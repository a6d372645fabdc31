package assistant

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyInput is returned by ParseInput for blank lines
	ErrEmptyInput = errors.New("empty input")

	// ErrMissingArguments is returned when a command lacks required arguments
	ErrMissingArguments = errors.New("missing arguments")
)

// ParseInput splits a line into a lower-cased command and its arguments
func ParseInput(line string) (string, []string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil, ErrEmptyInput
	}
	return strings.ToLower(parts[0]), parts[1:], nil
}
