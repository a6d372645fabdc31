package contacts

import (
	"time"

	"github.com/username/contact-assistant/internal/calendar"
	"github.com/username/contact-assistant/pkg/dateutil"
)

const (
	// DefaultWindowDays is how far ahead, inclusive, upcoming birthdays are looked for
	DefaultWindowDays = 7

	// maxShiftDays bounds how far a congratulation moves past days off
	maxShiftDays = 14
)

// Congratulation is a contact to greet and the working day to do it on
type Congratulation struct {
	Name string
	Date time.Time
}

// FormattedDate returns Date as DD.MM.YYYY
func (c Congratulation) FormattedDate() string {
	return dateutil.FormatDate(c.Date)
}

func (c Congratulation) String() string {
	return c.Name + ": " + c.FormattedDate()
}

// Calculator finds upcoming birthdays.
// The zero value looks 7 days ahead and moves Saturday and Sunday to Monday.
type Calculator struct {
	// WindowDays is the inclusive look-ahead; zero or less means DefaultWindowDays
	WindowDays int
	// Calendar decides which days are off; nil means weekends only
	Calendar calendar.Calendar
}

// Upcoming returns a congratulation for each record whose next birthday
// anniversary lies within the window starting at today (day 0). The result
// keeps the order of records.
func (c Calculator) Upcoming(records []*Record, today time.Time) []Congratulation {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	window := c.windowDays()

	var result []Congratulation
	for _, r := range records {
		birthday, ok := r.Birthday()
		if !ok {
			continue
		}

		next := NextAnniversary(birthday, day)
		if diff := dateutil.DaysBetween(day, next); diff < 0 || diff > window {
			continue
		}

		result = append(result, Congratulation{
			Name: r.Name().String(),
			Date: c.CongratulationDate(next),
		})
	}
	return result
}

// CongratulationDate moves date off days off. Without a calendar Saturday
// goes forward two days and Sunday one day.
func (c Calculator) CongratulationDate(date time.Time) time.Time {
	if c.Calendar == nil {
		return dateutil.NextWeekday(date)
	}
	for i := 0; i < maxShiftDays && c.Calendar.IsDayOff(date); i++ {
		date = date.AddDate(0, 0, 1)
	}
	return date
}

func (c Calculator) windowDays() int {
	if c.WindowDays <= 0 {
		return DefaultWindowDays
	}
	return c.WindowDays
}

// NextAnniversary returns the first anniversary of birthday on or after
// today. Only one candidate is considered: this year's, or next year's if
// this year's has passed.
func NextAnniversary(birthday Birthday, today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	next := AnniversaryIn(birthday, day.Year())
	if next.Before(day) {
		next = AnniversaryIn(birthday, day.Year()+1)
	}
	return next
}

// AnniversaryIn returns the birthday's month and day in year. A February 29
// birthday falls on March 1 in common years.
func AnniversaryIn(birthday Birthday, year int) time.Time {
	month, dayOfMonth := birthday.date.Month(), birthday.date.Day()
	if month == time.February && dayOfMonth == 29 && !dateutil.IsLeapYear(year) {
		return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}
