package calendar

import (
	"errors"
	"time"
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

// DayInfo represents information about a specific day
type DayInfo struct {
	Date      time.Time
	Type      DayType
	IsWorkday bool
	Note      string
}

// ErrDayNotFound is returned by a Lookup for days it has no entry for
var ErrDayNotFound = errors.New("calendar: day not found")

// Calendar reports whether a date is a day off
type Calendar interface {
	IsDayOff(date time.Time) bool
}

// Lookup returns explicit information about listed days
type Lookup interface {
	// GetDayInfo returns detailed info for a specific day or ErrDayNotFound
	GetDayInfo(date time.Time) (*DayInfo, error)
}
