package cancel_booking

import (
	"context"

	"github.com/d1mas/BC-SchedulingService/internal/service/bookings/models"
)

type BookingService interface {
	CancelByAdmin(ctx context.Context, id int64, req *models.CancelBookingRequest) error
	CancelByReference(ctx context.Context, reference string, req *models.CancelBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
