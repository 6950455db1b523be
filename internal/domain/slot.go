package domain

import "time"

// TimeSlot represents a candidate booking window derived from a day's rule
// Вычисляемое значение: никогда не сохраняется, пересчитывается на каждый запрос
// Идентичность слота определяется только парой (StartAt, EndAt)
type TimeSlot struct {
	StartAt   time.Time
	EndAt     time.Time
	Available bool
}

// Duration returns the slot length
func (s *TimeSlot) Duration() time.Duration {
	return s.EndAt.Sub(s.StartAt)
}

// IsBookable returns true if the slot can be offered to a visitor
func (s *TimeSlot) IsBookable() bool {
	return s.Available
}
