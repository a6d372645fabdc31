package contacts

import (
	"fmt"
	"strings"
)

// Record holds a single contact: a fixed name, ordered phones and an
// optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's name
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the record's phones in insertion order
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the birthday and whether one is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates value and appends it. Duplicates are kept.
func (r *Record) AddPhone(value string) error {
	phone, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// FindPhone returns the first phone equal to value
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// RemovePhone removes the first phone equal to value
func (r *Record) RemovePhone(value string) error {
	i := r.indexOf(value)
	if i < 0 {
		return fmt.Errorf("%q: %w", value, ErrPhoneNotFound)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces oldValue with newValue in place.
// newValue is validated before anything changes, so a failed edit leaves
// the phones untouched.
func (r *Record) EditPhone(oldValue, newValue string) error {
	phone, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	i := r.indexOf(oldValue)
	if i < 0 {
		return fmt.Errorf("%q: %w", oldValue, ErrPhoneNotFound)
	}
	r.phones[i] = phone
	return nil
}

// AddBirthday validates value and sets it, replacing any previous birthday
func (r *Record) AddBirthday(value string) error {
	birthday, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	birthday := "not set"
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}

func (r *Record) indexOf(value string) int {
	for i, p := range r.phones {
		if p.value == value {
			return i
		}
	}
	return -1
}
