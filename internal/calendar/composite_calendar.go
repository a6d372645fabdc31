package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: explicit day entries (e.g. FileCalendar)
// Fallback: rule based calendar (e.g. Weekends)
type CompositeCalendar struct {
	primary  Lookup
	fallback Calendar
	logger   *zap.Logger
}

var _ Calendar = (*CompositeCalendar)(nil)

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary Lookup, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// IsDayOff checks the primary entries first and falls back for unlisted days
func (cc *CompositeCalendar) IsDayOff(date time.Time) bool {
	dayInfo, err := cc.primary.GetDayInfo(date)
	if err == nil {
		return !dayInfo.IsWorkday
	}

	cc.logger.Debug("Day not listed in primary calendar, using fallback",
		zap.Time("date", date),
		zap.Error(err))

	return cc.fallback.IsDayOff(date)
}

// LoadPrimary loads the primary calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadPrimary() error {
	if fc, ok := cc.primary.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load primary calendar: %w", err)
		}
		cc.logger.Info("Primary calendar loaded successfully")
	}
	return nil
}
