package create_booking

import (
	"time"

	createBooking "github.com/d1mas/BC-SchedulingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`

	VisitorName  string  `json:"visitorName"`
	VisitorEmail string  `json:"visitorEmail"`
	VisitorPhone *string `json:"visitorPhone,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		StartAt:      r.StartAt,
		EndAt:        r.EndAt,
		VisitorName:  r.VisitorName,
		VisitorEmail: r.VisitorEmail,
		VisitorPhone: r.VisitorPhone,
		Notes:        r.Notes,
	}
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`

	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`

	VisitorName  string  `json:"visitorName"`
	VisitorEmail string  `json:"visitorEmail"`
	VisitorPhone *string `json:"visitorPhone,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:           resp.ID,
		Reference:    resp.Reference,
		StartAt:      resp.StartAt,
		EndAt:        resp.EndAt,
		VisitorName:  resp.VisitorName,
		VisitorEmail: resp.VisitorEmail,
		VisitorPhone: resp.VisitorPhone,
		Notes:        resp.Notes,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt,
	}
}
