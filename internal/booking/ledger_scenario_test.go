package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathishrouthu1909/fitness-booking-api/internal/class"
	"github.com/sathishrouthu1909/fitness-booking-api/internal/clock"
)

// fakeLedger is an in-memory ledger honoring the reserve/cancel contract, so
// multi-step seat-accounting scenarios can run without a database.
type fakeLedger struct {
	classes  map[int]*class.FitnessClass
	bookings map[int]*Booking
	nextID   int
}

func newFakeLedger(classes ...*class.FitnessClass) *fakeLedger {
	f := &fakeLedger{
		classes:  make(map[int]*class.FitnessClass),
		bookings: make(map[int]*Booking),
		nextID:   1,
	}
	for _, fc := range classes {
		f.classes[fc.ID] = fc
	}
	return f
}

func (f *fakeLedger) Reserve(_ context.Context, userID, classID int, clientName, clientEmail string, now time.Time) (*Booking, *class.FitnessClass, error) {
	fc, ok := f.classes[classID]
	if !ok {
		return nil, nil, ErrClassNotFound
	}
	if !fc.StartTime.After(now) {
		return nil, nil, ErrClassStarted
	}
	if fc.AvailableSlots <= 0 {
		return nil, nil, ErrClassFull
	}
	for _, b := range f.bookings {
		if b.UserID == userID && b.ClassID == classID {
			return nil, nil, ErrAlreadyBooked
		}
	}
	fc.AvailableSlots--
	b := &Booking{ID: f.nextID, UserID: userID, ClassID: classID, ClientName: clientName, ClientEmail: clientEmail, BookingTime: now}
	f.bookings[b.ID] = b
	f.nextID++
	snapshot := *fc
	return b, &snapshot, nil
}

func (f *fakeLedger) Cancel(_ context.Context, userID, bookingID int, now time.Time) error {
	b, ok := f.bookings[bookingID]
	if !ok || b.UserID != userID {
		return ErrBookingNotFound
	}
	fc := f.classes[b.ClassID]
	if !fc.StartTime.After(now) {
		return ErrClassStarted
	}
	delete(f.bookings, bookingID)
	fc.AvailableSlots++
	return nil
}

func (f *fakeLedger) ListForUser(_ context.Context, userID int) ([]BookingWithClass, error) {
	var out []BookingWithClass
	for _, b := range f.bookings {
		if b.UserID == userID {
			fc := f.classes[b.ClassID]
			out = append(out, BookingWithClass{Booking: *b, ClassName: fc.Name, ClassStartTime: fc.StartTime, Instructor: fc.Instructor})
		}
	}
	return out, nil
}

func (f *fakeLedger) assertSlotsInvariant(t *testing.T) {
	t.Helper()
	for _, fc := range f.classes {
		live := 0
		for _, b := range f.bookings {
			if b.ClassID == fc.ID {
				live++
			}
		}
		assert.GreaterOrEqual(t, fc.AvailableSlots, 0)
		assert.LessOrEqual(t, fc.AvailableSlots, fc.TotalSlots)
		assert.Equal(t, fc.TotalSlots-live, fc.AvailableSlots, "seat count and live bookings must be two views of one fact")
	}
}

// The capacity-2 walkthrough: A and B fill the class, C bounces, A cancels,
// C gets the freed seat.
func TestLedger_CapacityTwoScenario(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ledger := newFakeLedger(&class.FitnessClass{
		ID: 1, Name: "Spin", StartTime: now.Add(24 * time.Hour),
		AvailableSlots: 2, TotalSlots: 2,
	})
	svc := NewService(ledger, clock.Fixed{T: now})
	ctx := context.Background()

	req := func(name, email string) ReserveRequest {
		return ReserveRequest{ClassID: 1, ClientName: name, ClientEmail: email}
	}

	respA, err := svc.Reserve(ctx, 100, req("User A", "a@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 1, respA.RemainingSlots)

	respB, err := svc.Reserve(ctx, 200, req("User B", "b@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 0, respB.RemainingSlots)

	_, err = svc.Reserve(ctx, 300, req("User C", "c@example.com"))
	assert.ErrorIs(t, err, ErrClassFull)
	assert.Equal(t, 0, ledger.classes[1].AvailableSlots, "a rejected reserve must not change state")
	ledger.assertSlotsInvariant(t)

	require.NoError(t, svc.Cancel(ctx, 100, respA.Booking.ID))
	assert.Equal(t, 1, ledger.classes[1].AvailableSlots)
	ledger.assertSlotsInvariant(t)

	respC, err := svc.Reserve(ctx, 300, req("User C", "c@example.com"))
	require.NoError(t, err)
	assert.Equal(t, 0, respC.RemainingSlots)
	ledger.assertSlotsInvariant(t)
}

func TestLedger_DoubleReserveChangesSlotsOnce(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ledger := newFakeLedger(&class.FitnessClass{
		ID: 1, Name: "Spin", StartTime: now.Add(time.Hour),
		AvailableSlots: 5, TotalSlots: 5,
	})
	svc := NewService(ledger, clock.Fixed{T: now})
	ctx := context.Background()

	_, err := svc.Reserve(ctx, 100, ReserveRequest{ClassID: 1, ClientName: "User A", ClientEmail: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, 100, ReserveRequest{ClassID: 1, ClientName: "User A", ClientEmail: "a@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Equal(t, 4, ledger.classes[1].AvailableSlots, "slots must change exactly once, not twice")
	ledger.assertSlotsInvariant(t)
}

func TestLedger_CancelThenRebookRestoresState(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ledger := newFakeLedger(&class.FitnessClass{
		ID: 1, Name: "Spin", StartTime: now.Add(time.Hour),
		AvailableSlots: 3, TotalSlots: 3,
	})
	svc := NewService(ledger, clock.Fixed{T: now})
	ctx := context.Background()

	resp, err := svc.Reserve(ctx, 100, ReserveRequest{ClassID: 1, ClientName: "User A", ClientEmail: "a@example.com"})
	require.NoError(t, err)
	require.Equal(t, 2, resp.RemainingSlots)

	require.NoError(t, svc.Cancel(ctx, 100, resp.Booking.ID))
	assert.Equal(t, 3, ledger.classes[1].AvailableSlots)

	resp2, err := svc.Reserve(ctx, 100, ReserveRequest{ClassID: 1, ClientName: "User A", ClientEmail: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp2.RemainingSlots)
	ledger.assertSlotsInvariant(t)
}

func TestLedger_PastClassBlocksBothTransitions(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ledger := newFakeLedger(&class.FitnessClass{
		ID: 1, Name: "Spin", StartTime: now.Add(time.Hour),
		AvailableSlots: 3, TotalSlots: 3,
	})
	ctx := context.Background()

	svcBefore := NewService(ledger, clock.Fixed{T: now})
	resp, err := svcBefore.Reserve(ctx, 100, ReserveRequest{ClassID: 1, ClientName: "User A", ClientEmail: "a@example.com"})
	require.NoError(t, err)

	// same ledger, clock moved past the start time
	svcAfter := NewService(ledger, clock.Fixed{T: now.Add(2 * time.Hour)})

	_, err = svcAfter.Reserve(ctx, 200, ReserveRequest{ClassID: 1, ClientName: "User B", ClientEmail: "b@example.com"})
	assert.ErrorIs(t, err, ErrClassStarted)

	err = svcAfter.Cancel(ctx, 100, resp.Booking.ID)
	assert.ErrorIs(t, err, ErrClassStarted, "a booking becomes permanently un-cancellable once its class starts")
	ledger.assertSlotsInvariant(t)
}
