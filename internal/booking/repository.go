package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/class"
)

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrClassStarted    = errors.New("class has already started")
	ErrClassFull       = errors.New("no available slots for this class")
	ErrAlreadyBooked   = errors.New("you have already booked this class")
	ErrBookingNotFound = errors.New("booking not found")
)

const pqUniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Reserve locks the class row before any check, so two concurrent callers
// cannot both observe a free slot and decrement past zero. The (user, class)
// unique constraint backstops the duplicate check.
func (r *repository) Reserve(ctx context.Context, userID, classID int, clientName, clientEmail string, now time.Time) (*Booking, *class.FitnessClass, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var fc class.FitnessClass
	err = tx.GetContext(ctx, &fc, `
		SELECT id, name, start_time, instructor, available_slots, total_slots, created_by, created_at
		FROM fitness_classes
		WHERE id = $1
		FOR UPDATE
	`, classID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrClassNotFound
		}
		return nil, nil, err
	}

	if !fc.StartTime.After(now) {
		return nil, nil, ErrClassStarted
	}

	if fc.AvailableSlots <= 0 {
		return nil, nil, ErrClassFull
	}

	var exists bool
	err = tx.GetContext(ctx, &exists, `
		SELECT EXISTS(SELECT 1 FROM bookings WHERE user_id = $1 AND class_id = $2)
	`, userID, classID)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrAlreadyBooked
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE fitness_classes
		SET available_slots = available_slots - 1
		WHERE id = $1
	`, classID)
	if err != nil {
		return nil, nil, err
	}

	var b Booking
	err = tx.GetContext(ctx, &b, `
		INSERT INTO bookings (user_id, class_id, client_name, client_email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, class_id, client_name, client_email, booking_time
	`, userID, classID, clientName, clientEmail)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, nil, ErrAlreadyBooked
		}
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	fc.AvailableSlots--
	return &b, &fc, nil
}

// Cancel deletes the booking and returns its seat in one transaction. The
// booking lookup is scoped by user_id so a booking owned by someone else is
// indistinguishable from a missing one.
func (r *repository) Cancel(ctx context.Context, userID, bookingID int, now time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var ref struct {
		ID      int `db:"id"`
		ClassID int `db:"class_id"`
	}
	err = tx.GetContext(ctx, &ref, `
		SELECT id, class_id FROM bookings
		WHERE id = $1 AND user_id = $2
	`, bookingID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		return err
	}

	// Same lock order as Reserve: class row first, then the booking.
	var startTime time.Time
	err = tx.GetContext(ctx, &startTime, `
		SELECT start_time FROM fitness_classes
		WHERE id = $1
		FOR UPDATE
	`, ref.ClassID)
	if err != nil {
		return err
	}

	if !startTime.After(now) {
		return ErrClassStarted
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE fitness_classes
		SET available_slots = available_slots + 1
		WHERE id = $1
	`, ref.ClassID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) ListForUser(ctx context.Context, userID int) ([]BookingWithClass, error) {
	query := `
		SELECT
			b.id,
			b.user_id,
			b.class_id,
			b.client_name,
			b.client_email,
			b.booking_time,
			fc.name AS class_name,
			fc.start_time AS class_start_time,
			fc.instructor
		FROM bookings b
		JOIN fitness_classes fc ON b.class_id = fc.id
		WHERE b.user_id = $1
		ORDER BY b.booking_time DESC
	`

	bookings := []BookingWithClass{}
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
