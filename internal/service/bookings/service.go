package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	bookingRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/booking"
	"github.com/d1mas/BC-SchedulingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	eventRepo   EventRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	eventRepo EventRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByReference получает бронирование по коду подтверждения
// Используется посетителем: ID бронирования наружу не выдается
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
// - Все активные бронирования: List(ctx, &ListBookingsRequest{})
// - Бронирования за период: указать StartDate и EndDate
// - Только отменённые администратором: указать Status = "cancelled_by_admin"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// CancelByAdmin отменяет бронирование от имени администратора
func (s *Service) CancelByAdmin(ctx context.Context, id int64, req *models.CancelBookingRequest) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CancelByAdmin: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("CancelByAdmin: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: CancelByAdmin - repository error: %v", ErrInternal, err)
	}

	return s.cancel(ctx, booking, domain.StatusCancelledByAdmin, req.Reason)
}

// CancelByReference отменяет бронирование по коду подтверждения от имени посетителя
func (s *Service) CancelByReference(ctx context.Context, reference string, req *models.CancelBookingRequest) error {
	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("CancelByReference: booking reference=%s not found", reference)
			return ErrBookingNotFound
		}
		s.logger.Error("CancelByReference: repository error for reference=%s: %v", reference, err)
		return fmt.Errorf("%w: CancelByReference - repository error: %v", ErrInternal, err)
	}

	return s.cancel(ctx, booking, domain.StatusCancelledByVisitor, req.Reason)
}

// cancel отменяет бронирование и удаляет его занимающее событие
// Обе операции идут в одной транзакции: отмена без освобождения слота
// оставила бы интервал навсегда занятым для повторного бронирования
func (s *Service) cancel(ctx context.Context, booking *domain.Booking, status domain.BookingStatus, reason string) error {
	if !booking.CanBeCancelled() {
		s.logger.Warn("cancel: booking id=%d cannot be cancelled, status=%s", booking.ID, booking.Status)
		return ErrCannotCancel
	}

	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason must be at most %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.Cancel(txCtx, booking.ID, status, reason); err != nil {
			return err
		}

		if booking.EventID != nil {
			if err := s.eventRepo.Delete(txCtx, *booking.EventID); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("cancel: booking id=%d not found during cancellation", booking.ID)
			return ErrBookingNotFound
		}
		s.logger.Error("cancel: failed to cancel booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("cancel: successfully cancelled booking id=%d with status=%s", booking.ID, status)
	return nil
}
