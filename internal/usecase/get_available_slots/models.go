package get_available_slots

import (
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StartDate time.Time // Первый день периода (без времени); нулевое значение = сегодня
	Days      int       // Количество дней периода; 0 = один день

	// Разовые переопределения настроек для ad-hoc сценариев
	// Не сохраняются и действуют только на этот запрос
	SlotDurationMinutes *int
	BufferTimeMinutes   *int
}

// Response модель ответа со слотами за период
type Response struct {
	StartDate time.Time  // Первый день периода
	Days      int        // Фактическое количество дней (после ограничения горизонтом)
	Slots     []DaySlots // Слоты по дням, в хронологическом порядке
}

// DaySlots слоты одного дня
type DaySlots struct {
	Date  time.Time
	Slots []domain.TimeSlot
}

// TotalSlots возвращает общее количество слотов за период
func (r *Response) TotalSlots() int {
	total := 0
	for _, day := range r.Slots {
		total += len(day.Slots)
	}
	return total
}
