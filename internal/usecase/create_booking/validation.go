package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{5,19}$`)
)

// validateRequest валидирует входные данные запроса
// Возвращает ошибку по первому непрошедшему полю
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.VisitorName)
	if len(name) < domain.MinVisitorNameLength {
		return fmt.Errorf("%w: visitor name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxVisitorNameLength {
		return fmt.Errorf("%w: visitor name must be at most %d characters",
			ErrInvalidInput, domain.MaxVisitorNameLength)
	}

	if !emailPattern.MatchString(req.VisitorEmail) {
		return fmt.Errorf("%w: visitor email is invalid", ErrInvalidInput)
	}

	if req.VisitorPhone != nil && !phonePattern.MatchString(*req.VisitorPhone) {
		return fmt.Errorf("%w: visitor phone is invalid", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters",
			ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: slot start and end are required", ErrInvalidInput)
	}
	if !req.EndAt.After(req.StartAt) {
		return fmt.Errorf("%w: slot end must be after slot start", ErrInvalidInput)
	}

	return nil
}

// validateBookingTime проверяет, что слот начинается строго в будущем
// и не раньше минимального срока уведомления
func validateBookingTime(startAt, now time.Time, minNotice time.Duration) error {
	if !startAt.After(now) {
		return fmt.Errorf("%w: slot start is in the past", ErrTooLateToBook)
	}
	if startAt.Before(now.Add(minNotice)) {
		return fmt.Errorf("%w: slot starts sooner than the minimum notice of %s",
			ErrTooLateToBook, minNotice)
	}
	return nil
}

// validateHorizon проверяет, что дата слота не выходит за горизонт бронирования
func validateHorizon(startAt, now time.Time, advanceBookingDays int) error {
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	slotDate := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, startAt.Location())

	if slotDate.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}
