package booking

import (
	"context"
	"errors"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/clock"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/logger"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/metrics"
)

type Service interface {
	Reserve(ctx context.Context, userID int, req ReserveRequest) (*ReserveResponse, error)
	Cancel(ctx context.Context, userID, bookingID int) error
	ListForUser(ctx context.Context, userID int) ([]BookingWithClass, error)
}

type service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, clk clock.Clock) Service {
	return &service{
		repo:  repo,
		clock: clk,
	}
}

func (s *service) Reserve(ctx context.Context, userID int, req ReserveRequest) (*ReserveResponse, error) {
	b, fc, err := s.repo.Reserve(ctx, userID, req.ClassID, req.ClientName, req.ClientEmail, s.clock.Now())
	if err != nil {
		metrics.RecordReservation(reserveOutcome(err))
		return nil, err
	}

	metrics.RecordReservation("booked")
	logger.Info("class booked",
		"user_id", userID,
		"class_id", req.ClassID,
		"booking_id", b.ID,
		"remaining_slots", fc.AvailableSlots,
	)

	return &ReserveResponse{
		Message:        "Class booked successfully",
		Booking:        b,
		ClassName:      fc.Name,
		RemainingSlots: fc.AvailableSlots,
	}, nil
}

func (s *service) Cancel(ctx context.Context, userID, bookingID int) error {
	err := s.repo.Cancel(ctx, userID, bookingID, s.clock.Now())
	if err != nil {
		metrics.RecordCancellation(cancelOutcome(err))
		return err
	}

	metrics.RecordCancellation("cancelled")
	logger.Info("booking cancelled", "user_id", userID, "booking_id", bookingID)
	return nil
}

func (s *service) ListForUser(ctx context.Context, userID int) ([]BookingWithClass, error) {
	return s.repo.ListForUser(ctx, userID)
}

func reserveOutcome(err error) string {
	switch {
	case errors.Is(err, ErrClassNotFound):
		return "not_found"
	case errors.Is(err, ErrClassStarted):
		return "past_class"
	case errors.Is(err, ErrClassFull):
		return "full"
	case errors.Is(err, ErrAlreadyBooked):
		return "duplicate"
	default:
		return "error"
	}
}

func cancelOutcome(err error) string {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		return "not_found"
	case errors.Is(err, ErrClassStarted):
		return "past_class"
	default:
		return "error"
	}
}
