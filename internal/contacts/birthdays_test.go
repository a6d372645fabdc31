package contacts_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/contact-assistant/internal/contacts"
)

func date(day int, month time.Month, year int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func withBirthday(t *testing.T, name, birthday string) *contacts.Record {
	t.Helper()
	r := newRecord(t, name)
	require.NoError(t, r.AddBirthday(birthday))
	return r
}

// holidays is a calendar where weekends and the listed dates are off
type holidays map[string]bool

func (h holidays) IsDayOff(d time.Time) bool {
	return h[d.Format("02.01.2006")] || d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}

func TestDirectory_UpcomingBirthdays(t *testing.T) {
	tests := []struct {
		name     string
		today    time.Time
		birthday string
		want     []string // DD.MM.YYYY congratulation dates, nil when excluded
	}{
		{"LeapDayFallsOnMarchFirst", date(25, time.February, 2023), "29.02.2000", []string{"01.03.2023"}},
		{"SaturdayMovesToMonday", date(1, time.January, 2024), "06.01.1990", []string{"08.01.2024"}},
		{"SundayMovesToMonday", date(1, time.January, 2024), "07.01.1990", []string{"08.01.2024"}},
		{"NineDaysOutExcluded", date(1, time.January, 2024), "10.01.1990", nil},
		{"SevenDaysOutIncluded", date(1, time.January, 2024), "08.01.1990", []string{"08.01.2024"}},
		{"EightDaysOutExcluded", date(1, time.January, 2024), "09.01.1990", nil},
		{"TodayIsDayZero", date(1, time.January, 2024), "01.01.1990", []string{"01.01.2024"}},
		{"WrapsIntoNextYear", date(28, time.December, 2023), "02.01.1985", []string{"02.01.2024"}},
		{"PassedThisYearExcluded", date(10, time.March, 2023), "05.03.1985", nil},
		{"LeapDayInLeapYear", date(25, time.February, 2024), "29.02.2000", []string{"29.02.2024"}},
		{"LeapDayFallbackOnSaturday", date(27, time.February, 2025), "29.02.2000", []string{"03.03.2025"}},
		{"LeapDayFallbackToday", date(1, time.March, 2023), "29.02.2000", []string{"01.03.2023"}},
		{"LeapDayFallbackPassedUsesNextYearOnly", date(2, time.March, 2023), "29.02.2000", nil},
		{"WeekendShiftCrossesYear", date(28, time.December, 2022), "31.12.1970", []string{"02.01.2023"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := contacts.NewDirectory(withBirthday(t, "John", tt.birthday))

			var got []string
			for _, c := range book.UpcomingBirthdays(tt.today) {
				assert.Equal(t, "John", c.Name)
				got = append(got, c.FormattedDate())
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UpcomingBirthdays(%s) mismatch (-want +got):\n%s", tt.today.Format("02.01.2006"), diff)
			}
		})
	}
}

func TestDirectory_UpcomingBirthdays_OrderAndSkips(t *testing.T) {
	book := contacts.NewDirectory(
		withBirthday(t, "Zed", "03.01.1980"),
		newRecord(t, "NoBirthday", "1234567890"),
		withBirthday(t, "Ann", "06.01.1990"),
		withBirthday(t, "Far", "20.01.1990"),
		withBirthday(t, "Bob", "02.01.2000"),
	)

	want := []contacts.Congratulation{
		{Name: "Zed", Date: date(3, time.January, 2024)},
		{Name: "Ann", Date: date(8, time.January, 2024)},
		{Name: "Bob", Date: date(2, time.January, 2024)},
	}

	got := book.UpcomingBirthdays(date(1, time.January, 2024))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpcomingBirthdays mismatch (-want +got):\n%s", diff)
	}
}

func TestDirectory_UpcomingBirthdays_IgnoresClockAndZone(t *testing.T) {
	book := contacts.NewDirectory(withBirthday(t, "John", "08.01.1990"))
	today := time.Date(2024, time.January, 1, 23, 45, 0, 0, time.FixedZone("UTC+10", 10*60*60))

	got := book.UpcomingBirthdays(today)
	require.Len(t, got, 1)
	assert.Equal(t, "08.01.2024", got[0].FormattedDate())
}

func TestDirectory_UpcomingBirthdays_Empty(t *testing.T) {
	assert.Empty(t, contacts.NewDirectory().UpcomingBirthdays(date(1, time.January, 2024)))
}

func TestCalculator_WithCalendar(t *testing.T) {
	book := contacts.NewDirectory(
		withBirthday(t, "Ann", "06.01.1990"),
		withBirthday(t, "Bob", "03.01.1990"),
	)
	calc := contacts.Calculator{Calendar: holidays{"08.01.2024": true, "03.01.2024": true}}

	want := []contacts.Congratulation{
		{Name: "Ann", Date: date(9, time.January, 2024)},
		{Name: "Bob", Date: date(4, time.January, 2024)},
	}

	got := book.UpcomingBirthdaysWith(calc, date(1, time.January, 2024))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UpcomingBirthdaysWith mismatch (-want +got):\n%s", diff)
	}
}

func TestCalculator_WindowDays(t *testing.T) {
	book := contacts.NewDirectory(withBirthday(t, "John", "10.01.1990"))
	today := date(1, time.January, 2024)

	assert.Empty(t, book.UpcomingBirthdaysWith(contacts.Calculator{WindowDays: 8}, today))

	got := book.UpcomingBirthdaysWith(contacts.Calculator{WindowDays: 9}, today)
	require.Len(t, got, 1)
	assert.Equal(t, "John: 10.01.2024", got[0].String())
}

func TestNextAnniversary(t *testing.T) {
	b, err := contacts.NewBirthday("29.02.2000")
	require.NoError(t, err)

	assert.Equal(t, date(1, time.March, 2023), contacts.NextAnniversary(b, date(1, time.January, 2023)))
	assert.Equal(t, date(29, time.February, 2024), contacts.NextAnniversary(b, date(2, time.March, 2023)))
	assert.Equal(t, date(1, time.March, 2025), contacts.NextAnniversary(b, date(1, time.March, 2024)))
}

func TestAnniversaryIn(t *testing.T) {
	b, err := contacts.NewBirthday("31.12.1999")
	require.NoError(t, err)
	assert.Equal(t, date(31, time.December, 2023), contacts.AnniversaryIn(b, 2023))

	leap, err := contacts.NewBirthday("29.02.1996")
	require.NoError(t, err)
	assert.Equal(t, date(1, time.March, 2100), contacts.AnniversaryIn(leap, 2100))
	assert.Equal(t, date(29, time.February, 2000), contacts.AnniversaryIn(leap, 2000))
}
