package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1mas/BC-SchedulingService/internal/domain"
	bookingRepo "github.com/d1mas/BC-SchedulingService/internal/infra/storage/booking"
	"github.com/d1mas/BC-SchedulingService/internal/service/bookings/models"
	"github.com/d1mas/BC-SchedulingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	byRef    map[string]*domain.Booking
	listErr  error

	cancelledID     int64
	cancelledStatus domain.BookingStatus
	cancelledReason string
	cancelErr       error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	b, ok := f.byRef[reference]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type fakeEventRepo struct {
	deletedIDs []int64
	deleteErr  error
}

func (f *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeBooking(id int64, reference string) *domain.Booking {
	start := time.Date(2025, 11, 11, 11, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:           id,
		EventID:      ptr.Ptr(int64(100 + id)),
		Reference:    reference,
		SlotStartAt:  start,
		SlotEndAt:    start.Add(30 * time.Minute),
		VisitorName:  "Иван Петров",
		VisitorEmail: "ivan@example.com",
		Status:       domain.StatusConfirmed,
	}
}

type testEnv struct {
	svc       *Service
	repo      *fakeBookingRepo
	events    *fakeEventRepo
	txManager *fakeTxManager
}

func newTestEnv(bookings ...*domain.Booking) *testEnv {
	repo := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{},
		byRef:    map[string]*domain.Booking{},
	}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
		repo.byRef[b.Reference] = b
	}

	env := &testEnv{
		repo:      repo,
		events:    &fakeEventRepo{},
		txManager: &fakeTxManager{},
	}
	env.svc = NewService(repo, env.events, env.txManager, nopLogger{})
	return env
}

func TestGetByID(t *testing.T) {
	env := newTestEnv(activeBooking(1, "ref-0001"))

	resp, err := env.svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "ref-0001", resp.Reference)

	_, err = env.svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByReference(t *testing.T) {
	env := newTestEnv(activeBooking(1, "ref-0001"))

	resp, err := env.svc.GetByReference(context.Background(), "ref-0001")
	require.NoError(t, err)
	assert.Equal(t, "ref-0001", resp.Reference)

	_, err = env.svc.GetByReference(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList(t *testing.T) {
	env := newTestEnv(activeBooking(1, "ref-0001"), activeBooking(2, "ref-0002"))

	resp, err := env.svc.List(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestList_InvalidStatus(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("no-such-status"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancelByAdmin(t *testing.T) {
	env := newTestEnv(activeBooking(1, "ref-0001"))

	err := env.svc.CancelByAdmin(context.Background(), 1, &models.CancelBookingRequest{Reason: "no show"})
	require.NoError(t, err)

	assert.Equal(t, 1, env.txManager.calls)
	assert.Equal(t, int64(1), env.repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByAdmin, env.repo.cancelledStatus)
	assert.Equal(t, "no show", env.repo.cancelledReason)
	// Занимающее событие освобождено
	assert.Equal(t, []int64{101}, env.events.deletedIDs)
}

func TestCancelByReference(t *testing.T) {
	env := newTestEnv(activeBooking(1, "ref-0001"))

	err := env.svc.CancelByReference(context.Background(), "ref-0001", &models.CancelBookingRequest{})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelledByVisitor, env.repo.cancelledStatus)
	assert.Equal(t, []int64{101}, env.events.deletedIDs)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := activeBooking(1, "ref-0001")
	booking.Status = domain.StatusCancelledByVisitor
	env := newTestEnv(booking)

	err := env.svc.CancelByAdmin(context.Background(), 1, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Equal(t, 0, env.txManager.calls)
}

func TestCancel_NotFound(t *testing.T) {
	env := newTestEnv()

	err := env.svc.CancelByAdmin(context.Background(), 99, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	env := newTestEnv(activeBooking(1, "ref-0001"))

	err := env.svc.CancelByAdmin(context.Background(), 1, &models.CancelBookingRequest{
		Reason: strings.Repeat("a", domain.MaxCancellationReasonLength+1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, env.txManager.calls)
}

func TestCancel_NoLinkedEvent(t *testing.T) {
	booking := activeBooking(1, "ref-0001")
	booking.EventID = nil
	env := newTestEnv(booking)

	err := env.svc.CancelByAdmin(context.Background(), 1, &models.CancelBookingRequest{})
	require.NoError(t, err)
	assert.Empty(t, env.events.deletedIDs)
}

func TestCancel_EventDeleteErrorSurfaces(t *testing.T) {
	env := newTestEnv(activeBooking(1, "ref-0001"))
	env.events.deleteErr = errors.New("db down")

	err := env.svc.CancelByAdmin(context.Background(), 1, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
