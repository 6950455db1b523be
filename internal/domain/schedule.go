package domain

import (
	"time"

	"github.com/d1mas/BC-SchedulingService/pkg/types"
)

// WeekSchedule разрешённое недельное расписание: правило на каждый день недели
// Ключ - день недели (0-6, воскресенье = 0)
type WeekSchedule map[int]*AvailabilityRule

// RuleFor возвращает правило для дня недели указанной даты
// nil, если правила для этого дня нет
func (w WeekSchedule) RuleFor(date time.Time) *AvailabilityRule {
	return w[int(date.Weekday())]
}

// DefaultWeekSchedule возвращает дефолтное расписание:
// понедельник-пятница 09:00-18:00, суббота и воскресенье закрыты
// Явное значение, а не глобальная переменная - вызывающий получает свою копию
func DefaultWeekSchedule() WeekSchedule {
	schedule := make(WeekSchedule, DaysInWeek)
	for day := 0; day < DaysInWeek; day++ {
		schedule[day] = &AvailabilityRule{
			DayOfWeek: day,
			StartTime: types.TimeString(DefaultOpenTime),
			EndTime:   types.TimeString(DefaultCloseTime),
			IsActive:  day != WeekdaySunday && day != WeekdaySaturday,
		}
	}
	return schedule
}

// ResolveSchedule собирает эффективное расписание из сохранённых правил
// Слой дефолтов накрывается сохранёнными строками по ключу дня недели:
// явное правило всегда побеждает дефолт для того же дня, недостающие дни
// заполняются из дефолтного расписания
func ResolveSchedule(persisted []*AvailabilityRule) WeekSchedule {
	schedule := DefaultWeekSchedule()
	for _, rule := range persisted {
		if rule == nil || rule.DayOfWeek < 0 || rule.DayOfWeek >= DaysInWeek {
			continue
		}
		schedule[rule.DayOfWeek] = rule
	}
	return schedule
}

// ResolveSettings возвращает эффективные настройки календаря
// При отсутствии сохранённой записи подставляются документированные дефолты
// (без записи в хранилище - персистентность только при явном сохранении)
func ResolveSettings(persisted *CalendarSettings) *CalendarSettings {
	if persisted == nil {
		return DefaultSettings()
	}
	return persisted
}
