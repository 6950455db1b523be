package get_available_slots

import (
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

// generateDaySlots генерирует все слоты-кандидаты на один день по правилу окна
// Курсор стартует с начала окна; слот попадает в результат, только если его
// конец не выходит за конец окна, после чего курсор сдвигается на конец слота
// плюс буфер. Буфер после последнего слота за окно выходить может - он не
// резервирует время, а лишь отодвигает начало следующего слота
func generateDaySlots(
	day time.Time,
	rule *domain.AvailabilityRule,
	slotDuration int,
	bufferTime int,
) ([]domain.TimeSlot, error) {
	if rule == nil || !rule.HasCapacity() {
		return []domain.TimeSlot{}, nil
	}

	slots := make([]domain.TimeSlot, 0)
	cursor := rule.StartTime

	for cursor.IsBefore(rule.EndTime) {
		slotEnd, err := cursor.AddMinutes(slotDuration)
		if err != nil {
			// Слот перевалил за полночь - окно исчерпано
			break
		}
		if slotEnd.IsAfter(rule.EndTime) {
			break
		}

		slots = append(slots, domain.TimeSlot{
			StartAt:   cursor.Combine(day),
			EndAt:     slotEnd.Combine(day),
			Available: true,
		})

		cursor, err = slotEnd.AddMinutes(bufferTime)
		if err != nil {
			break
		}
	}

	return slots, nil
}

// markOccupiedSlots помечает занятыми слоты, пересекающиеся хотя бы с одним событием
// Пересечение строгое: если событие заканчивается ровно в начале слота
// (или начинается ровно в его конце), слот остаётся свободным
//
// Примеры:
// - Слот 11:30-12:00, событие 11:20-11:40 → слот занят (пересечение 11:30-11:40)
// - Слот 11:30-12:00, событие 11:00-11:30 → слот свободен (граничат)
// - Слот 11:30-12:00, событие 12:00-12:30 → слот свободен (граничат)
func markOccupiedSlots(slots []domain.TimeSlot, events []*domain.Event) {
	for i := range slots {
		for _, event := range events {
			if event.Overlaps(slots[i].StartAt, slots[i].EndAt) {
				slots[i].Available = false
				break
			}
		}
	}
}

// markLeadTimeSlots помечает недоступными слоты, начинающиеся раньше минимального
// срока уведомления. Слоты не выбрасываются из ответа - посетитель видит сетку
// дня целиком, просто ближайшие окна забронировать нельзя
func markLeadTimeSlots(slots []domain.TimeSlot, now time.Time, minNotice time.Duration) {
	earliest := now.Add(minNotice)
	for i := range slots {
		if slots[i].StartAt.Before(earliest) {
			slots[i].Available = false
		}
	}
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}
