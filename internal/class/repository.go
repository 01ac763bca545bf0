package class

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name string, startTime time.Time, instructor string, capacity, createdBy int) (*FitnessClass, error) {
	query := `
		INSERT INTO fitness_classes (name, start_time, instructor, available_slots, total_slots, created_by)
		VALUES ($1, $2, $3, $4, $4, $5)
		RETURNING id, name, start_time, instructor, available_slots, total_slots, created_by, created_at
	`

	var fc FitnessClass
	err := r.db.GetContext(ctx, &fc, query, name, startTime, instructor, capacity, createdBy)
	if err != nil {
		return nil, err
	}

	return &fc, nil
}

func (r *repository) ListUpcoming(ctx context.Context, now time.Time) ([]FitnessClass, error) {
	query := `
		SELECT id, name, start_time, instructor, available_slots, total_slots, created_by, created_at
		FROM fitness_classes
		WHERE start_time > $1
		ORDER BY start_time ASC
	`

	classes := []FitnessClass{}
	err := r.db.SelectContext(ctx, &classes, query, now)
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*FitnessClass, error) {
	query := `
		SELECT id, name, start_time, instructor, available_slots, total_slots, created_by, created_at
		FROM fitness_classes
		WHERE id = $1
	`

	var fc FitnessClass
	err := r.db.GetContext(ctx, &fc, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	return &fc, nil
}
