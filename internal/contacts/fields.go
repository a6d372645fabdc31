package contacts

import (
	"fmt"
	"time"

	"github.com/username/contact-assistant/pkg/dateutil"
)

const phoneLength = 10

// Name is a non-empty contact name
type Name struct {
	value string
}

// NewName validates value and returns a Name
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, ErrInvalidName
	}
	return Name{value: value}, nil
}

func (n Name) String() string {
	return n.value
}

// Phone is a phone number of exactly 10 decimal digits
type Phone struct {
	value string
}

// NewPhone validates value and returns a Phone
func NewPhone(value string) (Phone, error) {
	if len(value) != phoneLength {
		return Phone{}, fmt.Errorf("%q: %w", value, ErrInvalidPhone)
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return Phone{}, fmt.Errorf("%q: %w", value, ErrInvalidPhone)
		}
	}
	return Phone{value: value}, nil
}

func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date read from DD.MM.YYYY
type Birthday struct {
	date time.Time
}

// NewBirthday parses value as DD.MM.YYYY.
// The date must exist in the calendar, so 31.04.2020 and 29.02.2023 fail.
func NewBirthday(value string) (Birthday, error) {
	date, err := dateutil.ParseDate(value)
	if err != nil {
		return Birthday{}, fmt.Errorf("%q: %w", value, ErrInvalidDate)
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday at midnight UTC
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return dateutil.FormatDate(b.date)
}
