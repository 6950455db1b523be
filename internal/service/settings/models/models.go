package models

import (
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

// SaveSettingsRequest запрос на сохранение настроек календаря
type SaveSettingsRequest struct {
	SlotDurationMinutes int `json:"slotDurationMinutes"`
	BufferTimeMinutes   int `json:"bufferTimeMinutes"`
	AdvanceBookingDays  int `json:"advanceBookingDays"`
	MinNoticeHours      int `json:"minNoticeHours"`
}

// ToDomainSettings конвертирует запрос в domain модель
func (r *SaveSettingsRequest) ToDomainSettings() *domain.CalendarSettings {
	return &domain.CalendarSettings{
		SlotDurationMinutes: r.SlotDurationMinutes,
		BufferTimeMinutes:   r.BufferTimeMinutes,
		AdvanceBookingDays:  r.AdvanceBookingDays,
		MinNoticeHours:      r.MinNoticeHours,
	}
}

// SettingsResponse ответ с настройками календаря
type SettingsResponse struct {
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	BufferTimeMinutes   int        `json:"bufferTimeMinutes"`
	AdvanceBookingDays  int        `json:"advanceBookingDays"`
	MinNoticeHours      int        `json:"minNoticeHours"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"` // nil для дефолтов, которые ещё не сохранялись
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.CalendarSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		SlotDurationMinutes: s.SlotDurationMinutes,
		BufferTimeMinutes:   s.BufferTimeMinutes,
		AdvanceBookingDays:  s.AdvanceBookingDays,
		MinNoticeHours:      s.MinNoticeHours,
	}

	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
