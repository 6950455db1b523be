package models

import (
	"errors"
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода по началу слота (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода, не включительно (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`

	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`

	VisitorName  string  `json:"visitorName"`
	VisitorEmail string  `json:"visitorEmail"`
	VisitorPhone *string `json:"visitorPhone,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	Status string `json:"status"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		StartAt:            b.SlotStartAt,
		EndAt:              b.SlotEndAt,
		VisitorName:        b.VisitorName,
		VisitorEmail:       b.VisitorEmail,
		VisitorPhone:       b.VisitorPhone,
		Notes:              b.Notes,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result = append(result, *resp)
		}
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelledByVisitor:
		return domain.StatusCancelledByVisitor, nil
	case domain.StatusCancelledByAdmin:
		return domain.StatusCancelledByAdmin, nil
	default:
		return "", ErrInvalidStatus
	}
}
