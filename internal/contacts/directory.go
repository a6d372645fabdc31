package contacts

import (
	"fmt"
	"slices"
	"time"
)

// Directory is an in-memory address book keyed by record name.
// Iteration order is the order names were first added. It is not safe for
// concurrent use.
type Directory struct {
	index   map[string]int
	records []*Record
}

// NewDirectory returns a directory holding the given records
func NewDirectory(records ...*Record) *Directory {
	d := &Directory{index: make(map[string]int, len(records))}
	for _, r := range records {
		d.AddRecord(r)
	}
	return d
}

// AddRecord stores record under its name. An existing record with the same
// name is replaced and keeps its position. A nil record is ignored.
func (d *Directory) AddRecord(record *Record) {
	if record == nil {
		return
	}
	if d.index == nil {
		d.index = make(map[string]int)
	}
	key := record.Name().String()
	if i, ok := d.index[key]; ok {
		d.records[i] = record
		return
	}
	d.index[key] = len(d.records)
	d.records = append(d.records, record)
}

// Find returns the record stored under name
func (d *Directory) Find(name string) (*Record, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.records[i], true
}

// Delete removes the record stored under name
func (d *Directory) Delete(name string) error {
	i, ok := d.index[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrRecordNotFound)
	}
	delete(d.index, name)
	d.records = slices.Delete(d.records, i, i+1)
	for j := i; j < len(d.records); j++ {
		d.index[d.records[j].Name().String()] = j
	}
	return nil
}

// Records returns the records in iteration order
func (d *Directory) Records() []*Record {
	return slices.Clone(d.records)
}

// Len returns the number of records
func (d *Directory) Len() int {
	return len(d.records)
}

// UpcomingBirthdays lists records whose birthday falls within the next
// seven days of today, weekend dates moved to Monday.
func (d *Directory) UpcomingBirthdays(today time.Time) []Congratulation {
	return d.UpcomingBirthdaysWith(Calculator{}, today)
}

// UpcomingBirthdaysWith runs the query with a configured calculator
func (d *Directory) UpcomingBirthdaysWith(calc Calculator, today time.Time) []Congratulation {
	return calc.Upcoming(d.records, today)
}
