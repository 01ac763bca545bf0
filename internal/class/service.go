package class

import (
	"context"
	"errors"
	"time"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/clock"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/metrics"
)

var (
	ErrClassNotFound      = errors.New("class not found")
	ErrStartTimeNotFuture = errors.New("class start time must be in the future")
)

type Service interface {
	Create(ctx context.Context, req CreateClassRequest, startTime time.Time, createdBy int) (*FitnessClass, error)
	ListUpcoming(ctx context.Context) ([]FitnessClass, error)
	GetByID(ctx context.Context, id int) (*FitnessClass, error)
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

func (s *service) Create(ctx context.Context, req CreateClassRequest, startTime time.Time, createdBy int) (*FitnessClass, error) {
	now := s.clock.Now()

	// The stored time is normalized to the studio zone; the cutoff check
	// compares instants, so the conversion itself changes nothing.
	startTime = startTime.In(now.Location())

	if !startTime.After(now) {
		return nil, ErrStartTimeNotFuture
	}

	fc, err := s.repo.Create(ctx, req.Name, startTime, req.Instructor, req.Capacity, createdBy)
	if err != nil {
		return nil, err
	}

	metrics.RecordClassCreated()
	return fc, nil
}

func (s *service) ListUpcoming(ctx context.Context) ([]FitnessClass, error) {
	return s.repo.ListUpcoming(ctx, s.clock.Now())
}

func (s *service) GetByID(ctx context.Context, id int) (*FitnessClass, error) {
	return s.repo.GetByID(ctx, id)
}
