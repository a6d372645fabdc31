package assistant

import (
	"errors"

	"github.com/username/contact-assistant/internal/contacts"
)

// Explain turns an error into the text shown to the user
func Explain(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "Enter a command."
	case errors.Is(err, ErrMissingArguments):
		return "Enter the argument for the command."
	case errors.Is(err, contacts.ErrInvalidName):
		return "Name cannot be empty."
	case errors.Is(err, contacts.ErrInvalidPhone):
		return "Phone number must contain exactly 10 digits."
	case errors.Is(err, contacts.ErrInvalidDate):
		return "Invalid date format. Use DD.MM.YYYY"
	case errors.Is(err, contacts.ErrPhoneNotFound):
		return "Phone not found."
	case errors.Is(err, contacts.ErrRecordNotFound):
		return "Contact not found."
	default:
		return "Error: " + err.Error()
	}
}
