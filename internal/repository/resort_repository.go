// This file defines the ResortTransfer model and repository. A resort row
// is one price line inside an atoll: resort name, price, duration and the
// transfer mode used to reach it. Positions are dense per atoll, not
// globally.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/atollway/travel-content-api/internal/ordering"
)

// ResortTransfer is one pricing row owned by exactly one atoll. Price is a
// DECIMAL column carried as a string end to end; the service never parses
// it into a float.
type ResortTransfer struct {
	ID           uint64 `json:"id"`
	AtollID      uint64 `json:"atoll"`
	ResortName   string `json:"resort_name"`
	Price        string `json:"price"`
	Duration     string `json:"duration"`
	TransferType string `json:"transfer_type"`
	IsActive     bool   `json:"is_active"`
	Position     int    `json:"order"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

const resortTable = "resort_transfers"

const resortCols = `id, atoll_id, resort_name, price, duration, transfer_type,
	is_active, position, created_at, updated_at`

// ResortRepo encapsulates all database queries for resort transfer rows.
type ResortRepo struct {
	db *sql.DB
}

// NewResortRepo constructs a ResortRepo with the provided DB handle.
func NewResortRepo(db *sql.DB) *ResortRepo {
	return &ResortRepo{db: db}
}

func scanResort(row interface{ Scan(...any) error }) (*ResortTransfer, error) {
	var rt ResortTransfer
	if err := row.Scan(&rt.ID, &rt.AtollID, &rt.ResortName, &rt.Price, &rt.Duration,
		&rt.TransferType, &rt.IsActive, &rt.Position, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		return nil, err
	}
	return &rt, nil
}

// scanResortsByAtoll loads one atoll's resorts in display order. It is
// shared with AtollRepo, which attaches the rows to its parent record.
func scanResortsByAtoll(ctx context.Context, db *sql.DB, atollID uint64) ([]*ResortTransfer, error) {
	const q = "SELECT " + resortCols + " FROM resort_transfers WHERE atoll_id = ? ORDER BY position, id"
	rows, err := db.QueryContext(ctx, q, atollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*ResortTransfer{}
	for rows.Next() {
		rt, err := scanResort(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

// listResorts loads every resort row ordered by atoll and position.
func listResorts(ctx context.Context, db *sql.DB, activeOnly *bool) ([]*ResortTransfer, error) {
	q := "SELECT " + resortCols + " FROM resort_transfers ORDER BY atoll_id, position, id"
	args := []any{}
	if activeOnly != nil {
		q = "SELECT " + resortCols + " FROM resort_transfers WHERE is_active = ? ORDER BY atoll_id, position, id"
		args = append(args, *activeOnly)
	}
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*ResortTransfer{}
	for rows.Next() {
		rt, err := scanResort(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

// List returns every resort row grouped by atoll in display order.
func (r *ResortRepo) List(ctx context.Context, activeOnly *bool) ([]*ResortTransfer, error) {
	return listResorts(ctx, r.db, activeOnly)
}

// Create inserts a resort row under its atoll. The parent atoll must exist;
// a missing parent surfaces as ErrNotFound. Negative Position appends at
// the end of that atoll's list.
func (r *ResortRepo) Create(ctx context.Context, rt *ResortTransfer) error {
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

	var exists int
	if err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM atoll_transfers WHERE id=?", rt.AtollID).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		return err
	}
	if rt.Position < 0 {
		if rt.Position, err = nextPositionTx(ctx, tx, resortTable, "atoll_id", rt.AtollID); err != nil {
			return err
		}
	}
	const qInsert = `INSERT INTO resort_transfers
		(atoll_id, resort_name, price, duration, transfer_type, is_active, position)
		VALUES (?,?,?,?,?,?,?)`
	res, err := tx.ExecContext(ctx, qInsert,
		rt.AtollID, rt.ResortName, rt.Price, rt.Duration, rt.TransferType, rt.IsActive, rt.Position)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rt.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM resort_transfers WHERE id = ?"
	err = tx.QueryRowContext(ctx, qSelect, rt.ID).Scan(&rt.CreatedAt, &rt.UpdatedAt)
	return err
}

// GetByID fetches a resort row by id.
func (r *ResortRepo) GetByID(ctx context.Context, id uint64) (*ResortTransfer, error) {
	const q = "SELECT " + resortCols + " FROM resort_transfers WHERE id = ?"
	rt, err := scanResort(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rt, nil
}

// Update rewrites the row's content fields. The owning atoll never changes
// through update; a resort belongs to exactly one atoll for its lifetime.
func (r *ResortRepo) Update(ctx context.Context, rt *ResortTransfer) error {
	const q = `UPDATE resort_transfers
		SET resort_name=?, price=?, duration=?, transfer_type=?, is_active=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`
	res, err := r.db.ExecContext(ctx, q,
		rt.ResortName, rt.Price, rt.Duration, rt.TransferType, rt.IsActive, rt.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if probeErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM resort_transfers WHERE id=?", rt.ID).Scan(&exists); probeErr != nil {
			if errors.Is(probeErr, sql.ErrNoRows) {
				return ErrNotFound
			}
			return probeErr
		}
	}
	return nil
}

// Delete removes a resort row and renumbers its siblings within the same
// atoll so their positions stay 0..N-2.
func (r *ResortRepo) Delete(ctx context.Context, id uint64) error {
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

	var atollID uint64
	if err = tx.QueryRowContext(ctx,
		"SELECT atoll_id FROM resort_transfers WHERE id=?", id).Scan(&atollID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM resort_transfers WHERE id = ?", id); err != nil {
		return err
	}
	err = renumberTx(ctx, tx, resortTable, "atoll_id", atollID)
	return err
}

// Move swaps the row with its neighbor within the owning atoll's list.
func (r *ResortRepo) Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	var atollID uint64
	if err = tx.QueryRowContext(ctx,
		"SELECT atoll_id FROM resort_transfers WHERE id=?", id).Scan(&atollID); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, err
	}
	moved, err := moveTx(ctx, tx, resortTable, "atoll_id", atollID, id, dir)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	return moved, tx.Commit()
}
