package get_available_slots

import (
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	getAvailableSlots "github.com/d1mas/BC-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StartDate string     `json:"startDate"`
	Days      int        `json:"days"`
	Schedule  []DaySlots `json:"schedule"`
}

// DaySlots слоты одного дня
type DaySlots struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartAt   time.Time `json:"startAt"`
	EndAt     time.Time `json:"endAt"`
	Available bool      `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	schedule := make([]DaySlots, len(resp.Slots))
	for i, day := range resp.Slots {
		slots := make([]AvailableSlot, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = AvailableSlot{
				StartAt:   slot.StartAt,
				EndAt:     slot.EndAt,
				Available: slot.Available,
			}
		}
		schedule[i] = DaySlots{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		}
	}

	return &AvailableSlotsResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		Days:      resp.Days,
		Schedule:  schedule,
	}
}
