package calendar

import (
	"time"

	"github.com/username/contact-assistant/pkg/dateutil"
)

// Weekends treats Saturday and Sunday as days off and nothing else
type Weekends struct{}

var _ Calendar = Weekends{}

// IsDayOff implements Calendar
func (Weekends) IsDayOff(date time.Time) bool {
	return dateutil.IsWeekend(date)
}
