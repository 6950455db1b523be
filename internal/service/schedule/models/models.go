package models

import (
	"github.com/d1mas/BC-SchedulingService/internal/domain"
	"github.com/d1mas/BC-SchedulingService/pkg/types"
)

// DayRule правило доступности на один день недели
type DayRule struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье, 6 = суббота
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
	IsActive  bool   `json:"isActive"`
}

// SaveScheduleRequest запрос на сохранение недельного расписания
// Переданный набор полностью заменяет сохранённый; дни, которых нет
// в запросе, возвращаются к дефолтным правилам
type SaveScheduleRequest struct {
	Days []DayRule `json:"days"`
}

// ScheduleResponse ответ с разрешённым недельным расписанием (все 7 дней)
type ScheduleResponse struct {
	Days []DayRule `json:"days"`
}

// ToDomainRules конвертирует запрос в domain правила
func (r *SaveScheduleRequest) ToDomainRules() []*domain.AvailabilityRule {
	rules := make([]*domain.AvailabilityRule, 0, len(r.Days))
	for _, day := range r.Days {
		rules = append(rules, &domain.AvailabilityRule{
			DayOfWeek: day.DayOfWeek,
			StartTime: types.TimeString(day.StartTime),
			EndTime:   types.TimeString(day.EndTime),
			IsActive:  day.IsActive,
		})
	}
	return rules
}

// FromDomainSchedule конвертирует разрешённое расписание в DTO
// Дни идут по порядку от воскресенья (0) до субботы (6)
func FromDomainSchedule(schedule domain.WeekSchedule) *ScheduleResponse {
	days := make([]DayRule, 0, domain.DaysInWeek)
	for day := 0; day < domain.DaysInWeek; day++ {
		rule := schedule[day]
		if rule == nil {
			continue
		}
		days = append(days, DayRule{
			DayOfWeek: rule.DayOfWeek,
			StartTime: rule.StartTime.String(),
			EndTime:   rule.EndTime.String(),
			IsActive:  rule.IsActive,
		})
	}
	return &ScheduleResponse{Days: days}
}
