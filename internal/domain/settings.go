package domain

import "time"

// CalendarSettings represents the global booking parameters of the calendar
// В системе ровно одна запись настроек (singleton)
type CalendarSettings struct {
	ID                  int64
	SlotDurationMinutes int // Длительность слота
	BufferTimeMinutes   int // Пауза после каждого слота перед следующим
	AdvanceBookingDays  int // Горизонт бронирования в днях
	MinNoticeHours      int // Минимальное время до начала бронируемого слота

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSettings возвращает документированные дефолтные настройки (30/0/60/12)
func DefaultSettings() *CalendarSettings {
	return &CalendarSettings{
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		BufferTimeMinutes:   DefaultBufferTimeMinutes,
		AdvanceBookingDays:  DefaultAdvanceBookingDays,
		MinNoticeHours:      DefaultMinNoticeHours,
	}
}

// HasBuffer returns true if a gap is inserted after each slot
func (s *CalendarSettings) HasBuffer() bool {
	return s.BufferTimeMinutes > 0
}

// SlotStepMinutes шаг между началами соседних слотов
func (s *CalendarSettings) SlotStepMinutes() int {
	return s.SlotDurationMinutes + s.BufferTimeMinutes
}

// MinNotice возвращает минимальный интервал до бронируемого слота как Duration
func (s *CalendarSettings) MinNotice() time.Duration {
	return time.Duration(s.MinNoticeHours) * time.Hour
}
