package class

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, name string, startTime time.Time, instructor string, capacity, createdBy int) (*FitnessClass, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]FitnessClass, error)
	GetByID(ctx context.Context, id int) (*FitnessClass, error)
}
