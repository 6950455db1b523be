package create_booking

import (
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

// matchesSlotGrid проверяет, что запрошенный интервал совпадает с одним из
// слотов сетки на этот день. Сетка пересчитывается из правила и настроек -
// слоты нигде не хранятся, поэтому проверка повторяет генерацию
func matchesSlotGrid(
	rule *domain.AvailabilityRule,
	settings *domain.CalendarSettings,
	startAt, endAt time.Time,
) bool {
	if rule == nil || !rule.HasCapacity() {
		return false
	}

	day := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, startAt.Location())
	cursor := rule.StartTime

	for cursor.IsBefore(rule.EndTime) {
		slotEnd, err := cursor.AddMinutes(settings.SlotDurationMinutes)
		if err != nil {
			break
		}
		if slotEnd.IsAfter(rule.EndTime) {
			break
		}

		if cursor.Combine(day).Equal(startAt) && slotEnd.Combine(day).Equal(endAt) {
			return true
		}

		cursor, err = slotEnd.AddMinutes(settings.BufferTimeMinutes)
		if err != nil {
			break
		}
	}

	return false
}

// countOverlappingEvents подсчитывает события, строго пересекающиеся с интервалом
// Граничащие интервалы (конец одного равен началу другого) пересечением не считаются
func countOverlappingEvents(events []*domain.Event, startAt, endAt time.Time) int {
	count := 0
	for _, event := range events {
		if event.Overlaps(startAt, endAt) {
			count++
		}
	}
	return count
}
