package class

import "time"

// FitnessClass is a scheduled class. TotalSlots is fixed at creation;
// AvailableSlots is only ever written by the booking ledger.
type FitnessClass struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	StartTime      time.Time `db:"start_time" json:"start_time"`
	Instructor     string    `db:"instructor" json:"instructor"`
	AvailableSlots int       `db:"available_slots" json:"available_slots"`
	TotalSlots     int       `db:"total_slots" json:"total_slots"`
	CreatedBy      int       `db:"created_by" json:"created_by"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type CreateClassRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	StartTime  string `json:"start_time" validate:"required"`
	Instructor string `json:"instructor" validate:"required,min=2,max=100"`
	Capacity   int    `json:"capacity" validate:"required,gte=1,lte=100"`
}
