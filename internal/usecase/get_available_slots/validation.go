package get_available_slots

import (
	"fmt"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	if req.SlotDurationMinutes != nil {
		d := *req.SlotDurationMinutes
		if d < domain.MinSlotDurationMinutes || d > domain.MaxSlotDurationMinutes {
			return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
				ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
		}
	}

	if req.BufferTimeMinutes != nil {
		b := *req.BufferTimeMinutes
		if b < domain.MinBufferTimeMinutes || b > domain.MaxBufferTimeMinutes {
			return fmt.Errorf("%w: buffer time must be between %d and %d minutes",
				ErrInvalidInput, domain.MinBufferTimeMinutes, domain.MaxBufferTimeMinutes)
		}
	}

	return nil
}
