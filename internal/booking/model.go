package booking

import "time"

type Booking struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	ClassID     int       `db:"class_id" json:"class_id"`
	ClientName  string    `db:"client_name" json:"client_name"`
	ClientEmail string    `db:"client_email" json:"client_email"`
	BookingTime time.Time `db:"booking_time" json:"booking_time"`
}

// BookingWithClass is a booking joined with the public fields of its class,
// for the user's booking history.
type BookingWithClass struct {
	Booking
	ClassName      string    `db:"class_name" json:"class_name"`
	ClassStartTime time.Time `db:"class_start_time" json:"class_start_time"`
	Instructor     string    `db:"instructor" json:"instructor"`
}

type ReserveRequest struct {
	ClassID     int    `json:"class_id" validate:"required"`
	ClientName  string `json:"client_name" validate:"required,min=2,max=100"`
	ClientEmail string `json:"client_email" validate:"required,email"`
}

type ReserveResponse struct {
	Message        string   `json:"message" example:"Class booked successfully"`
	Booking        *Booking `json:"booking"`
	ClassName      string   `json:"class_name"`
	RemainingSlots int      `json:"remaining_slots"`
}
