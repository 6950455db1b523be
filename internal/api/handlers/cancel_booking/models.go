package cancel_booking

import "github.com/d1mas/BC-SchedulingService/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP request в запрос сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{Reason: r.Reason}
}
