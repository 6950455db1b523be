package domain

import "time"

// Event represents a committed occupied interval on the calendar
// Любое событие занимает слоты при расчёте доступности; IsPublic управляет
// только видимостью деталей наружу (события бронирований приватны)
type Event struct {
	ID       int64
	Title    string
	StartAt  time.Time
	EndAt    time.Time
	IsPublic bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps проверяет строгое пересечение события с интервалом [start, end)
// Полуоткрытые интервалы: совпадение границ (event.EndAt == start) пересечением
// не считается - слоты могут идти вплотную друг к другу
func (e *Event) Overlaps(start, end time.Time) bool {
	return e.StartAt.Before(end) && start.Before(e.EndAt)
}

// EventsFilter фильтр для выборки событий
type EventsFilter struct {
	From time.Time // Начало периода (включительно)
	To   time.Time // Конец периода (не включительно)
}
