// This file defines the FerrySchedule model and repository. Schedules are
// grouped by route name on the marketing page; times are HH:MM:SS strings
// validated at the API edge and stored as TIME columns.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/atollway/travel-content-api/internal/ordering"
)

// FerrySchedule is one timetable entry. Price is a DECIMAL carried as a
// string; DaysOfWeek holds weekday names and is stored as a JSON column.
type FerrySchedule struct {
	ID            uint64   `json:"id"`
	RouteName     string   `json:"route_name"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      string   `json:"duration"`
	Price         string   `json:"price"`
	DaysOfWeek    []string `json:"days_of_week"`
	Notes         string   `json:"notes"`
	IsActive      bool     `json:"is_active"`
	Position      int      `json:"order"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}

const ferryTable = "ferry_schedules"

const ferryCols = `id, route_name, departure_time, arrival_time, duration, price,
	days_of_week, notes, is_active, position, created_at, updated_at`

// FerryRepo encapsulates all database queries for ferry schedules.
type FerryRepo struct {
	db *sql.DB
}

// NewFerryRepo constructs a FerryRepo with the provided DB handle.
func NewFerryRepo(db *sql.DB) *FerryRepo {
	return &FerryRepo{db: db}
}

func scanFerry(row interface{ Scan(...any) error }) (*FerrySchedule, error) {
	var (
		f    FerrySchedule
		days string
	)
	if err := row.Scan(&f.ID, &f.RouteName, &f.DepartureTime, &f.ArrivalTime, &f.Duration,
		&f.Price, &days, &f.Notes, &f.IsActive, &f.Position, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	f.DaysOfWeek = unpackStrings(days)
	return &f, nil
}

// Create inserts a schedule. Negative Position appends at the end.
func (r *FerryRepo) Create(ctx context.Context, f *FerrySchedule) error {
	days, err := packStrings(f.DaysOfWeek)
	if err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if f.Position < 0 {
		if f.Position, err = nextPositionTx(ctx, tx, ferryTable, "", nil); err != nil {
			return err
		}
	}
	const qInsert = `INSERT INTO ferry_schedules
		(route_name, departure_time, arrival_time, duration, price, days_of_week, notes, is_active, position)
		VALUES (?,?,?,?,?,?,?,?,?)`
	res, err := tx.ExecContext(ctx, qInsert,
		f.RouteName, f.DepartureTime, f.ArrivalTime, f.Duration, f.Price, days,
		f.Notes, f.IsActive, f.Position)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM ferry_schedules WHERE id = ?"
	err = tx.QueryRowContext(ctx, qSelect, f.ID).Scan(&f.CreatedAt, &f.UpdatedAt)
	return err
}

// GetByID fetches a schedule by id.
func (r *FerryRepo) GetByID(ctx context.Context, id uint64) (*FerrySchedule, error) {
	const q = "SELECT " + ferryCols + " FROM ferry_schedules WHERE id = ?"
	f, err := scanFerry(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// List returns schedules in display order.
func (r *FerryRepo) List(ctx context.Context, activeOnly *bool) ([]*FerrySchedule, error) {
	q := "SELECT " + ferryCols + " FROM ferry_schedules ORDER BY position, id"
	args := []any{}
	if activeOnly != nil {
		q = "SELECT " + ferryCols + " FROM ferry_schedules WHERE is_active = ? ORDER BY position, id"
		args = append(args, *activeOnly)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*FerrySchedule{}
	for rows.Next() {
		f, err := scanFerry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Update rewrites the schedule's content fields.
func (r *FerryRepo) Update(ctx context.Context, f *FerrySchedule) error {
	days, err := packStrings(f.DaysOfWeek)
	if err != nil {
		return err
	}
	const q = `UPDATE ferry_schedules
		SET route_name=?, departure_time=?, arrival_time=?, duration=?, price=?,
		    days_of_week=?, notes=?, is_active=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`
	res, err := r.db.ExecContext(ctx, q,
		f.RouteName, f.DepartureTime, f.ArrivalTime, f.Duration, f.Price, days,
		f.Notes, f.IsActive, f.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if probeErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM ferry_schedules WHERE id=?", f.ID).Scan(&exists); probeErr != nil {
			if errors.Is(probeErr, sql.ErrNoRows) {
				return ErrNotFound
			}
			return probeErr
		}
	}
	return nil
}

// Delete removes a schedule and renumbers the rest.
func (r *FerryRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	res, err := tx.ExecContext(ctx, "DELETE FROM ferry_schedules WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrNotFound
		return err
	}
	err = renumberTx(ctx, tx, ferryTable, "", nil)
	return err
}

// Move swaps the schedule with its neighbor in the given direction.
func (r *FerryRepo) Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	moved, err := moveTx(ctx, tx, ferryTable, "", nil, id, dir)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	return moved, tx.Commit()
}
