package booking

import (
	"context"
	"time"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/class"
)

// Repository is the only writer of fitness_classes.available_slots. Reserve
// and Cancel each run as a single transaction so the seat count and the
// booking row never diverge.
type Repository interface {
	Reserve(ctx context.Context, userID, classID int, clientName, clientEmail string, now time.Time) (*Booking, *class.FitnessClass, error)
	Cancel(ctx context.Context, userID, bookingID int, now time.Time) error
	ListForUser(ctx context.Context, userID int) ([]BookingWithClass, error)
}
