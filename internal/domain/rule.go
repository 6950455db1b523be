package domain

import (
	"time"

	"github.com/d1mas/BC-SchedulingService/pkg/types"
)

// AvailabilityRule represents the open window for one weekday
// На каждый день недели - не больше одного авторитетного правила;
// отсутствие правила или IsActive=false означает нулевую ёмкость дня
type AvailabilityRule struct {
	ID        int64
	DayOfWeek int // 0-6, воскресенье = 0
	StartTime types.TimeString
	EndTime   types.TimeString
	IsActive  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapacity returns true if the rule produces bookable time at all
func (r *AvailabilityRule) HasCapacity() bool {
	return r != nil && r.IsActive && r.StartTime.IsBefore(r.EndTime)
}

// WindowMinutes returns the length of the open window in minutes
func (r *AvailabilityRule) WindowMinutes() int {
	if !r.HasCapacity() {
		return 0
	}
	return r.EndTime.Minutes() - r.StartTime.Minutes()
}
