package calendar

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

const testCalendar = `# company days off
2024-01-08 holiday Company day off
2024-01-13 workday Saturday shift
2024-01-09 weekend
not-a-date holiday
2024-01-10 vacation
2024-01-11
`

func writeCalendar(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write calendar file: %v", err)
	}
	return path
}

func TestWeekends_IsDayOff(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Saturday", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), true},
		{"Sunday", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), true},
		{"Monday", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Weekends{}).IsDayOff(tt.date); got != tt.want {
				t.Errorf("IsDayOff(%v) = %v, want %v", tt.date.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}

func TestFileCalendar_Load(t *testing.T) {
	cal := NewFileCalendar(writeCalendar(t, testCalendar), zap.NewNop())
	if err := cal.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cal.data) != 3 {
		t.Fatalf("loaded %d days, want 3 (invalid lines skipped)", len(cal.data))
	}

	holiday, err := cal.GetDayInfo(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetDayInfo() error = %v", err)
	}
	if holiday.Type != DayTypeHoliday || holiday.IsWorkday {
		t.Errorf("2024-01-08 = %+v, want holiday", holiday)
	}
	if holiday.Note != "Company day off" {
		t.Errorf("2024-01-08 Note = %q, want %q", holiday.Note, "Company day off")
	}

	shift, err := cal.GetDayInfo(time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetDayInfo() error = %v", err)
	}
	if shift.Type != DayTypeWorkday || !shift.IsWorkday {
		t.Errorf("2024-01-13 = %+v, want workday", shift)
	}

	_, err = cal.GetDayInfo(time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrDayNotFound) {
		t.Errorf("GetDayInfo(unlisted) error = %v, want ErrDayNotFound", err)
	}
}

func TestFileCalendar_LoadMissingFile(t *testing.T) {
	cal := NewFileCalendar(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())
	if err := cal.Load(); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestCompositeCalendar_IsDayOff(t *testing.T) {
	file := NewFileCalendar(writeCalendar(t, testCalendar), zap.NewNop())
	cal := NewCompositeCalendar(file, Weekends{}, zap.NewNop())
	if err := cal.LoadPrimary(); err != nil {
		t.Fatalf("LoadPrimary() error = %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Listed holiday on Monday", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), true},
		{"Listed workday on Saturday", time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), false},
		{"Listed weekend on Tuesday", time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), true},
		{"Unlisted Sunday", time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), true},
		{"Unlisted Friday", time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.IsDayOff(tt.date); got != tt.want {
				t.Errorf("IsDayOff(%v) = %v, want %v", tt.date.Format("2006-01-02 Mon"), got, tt.want)
			}
		})
	}
}
