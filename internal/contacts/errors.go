package contacts

import "errors"

// Failure kinds reported by the contacts core. Callers classify them with
// errors.Is; messages carry the offending value as wrapped context.
var (
	ErrInvalidName    = errors.New("name cannot be empty")
	ErrInvalidPhone   = errors.New("phone number must contain exactly 10 digits")
	ErrInvalidDate    = errors.New("invalid date format, use DD.MM.YYYY")
	ErrPhoneNotFound  = errors.New("phone not found")
	ErrRecordNotFound = errors.New("record not found")
)
