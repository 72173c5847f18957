// This file defines the AtollTransfer model and repository. An atoll owns
// an ordered list of resort pricing rows; deleting the atoll removes its
// resorts in the same transaction, mirroring how the rest of the content
// tables keep their dense positions.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/atollway/travel-content-api/internal/ordering"
)

// AtollTransfer groups the resort transfer pricing rows of one atoll.
// Resorts is populated by ListWithResorts and GetByID; plain list queries
// leave it nil.
type AtollTransfer struct {
	ID          uint64            `json:"id"`
	AtollName   string            `json:"atoll_name"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	Gradient    string            `json:"gradient"`
	IsActive    bool              `json:"is_active"`
	Position    int               `json:"order"`
	Resorts     []*ResortTransfer `json:"resorts"`
	CreatedAt   string            `json:"created_at,omitempty"`
	UpdatedAt   string            `json:"updated_at,omitempty"`
}

const atollTable = "atoll_transfers"

// AtollRepo encapsulates all database queries related to atolls.
type AtollRepo struct {
	db *sql.DB
}

// NewAtollRepo constructs an AtollRepo with the provided DB handle.
func NewAtollRepo(db *sql.DB) *AtollRepo {
	return &AtollRepo{db: db}
}

// Create inserts a new atoll. A negative Position appends at the end.
func (r *AtollRepo) Create(ctx context.Context, a *AtollTransfer) error {
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

	if a.Position < 0 {
		if a.Position, err = nextPositionTx(ctx, tx, atollTable, "", nil); err != nil {
			return err
		}
	}
	const qInsert = `INSERT INTO atoll_transfers
		(atoll_name, description, icon, gradient, is_active, position)
		VALUES (?,?,?,?,?,?)`
	res, err := tx.ExecContext(ctx, qInsert,
		a.AtollName, a.Description, a.Icon, a.Gradient, a.IsActive, a.Position)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	if a.Resorts == nil {
		a.Resorts = []*ResortTransfer{}
	}

	const qSelect = "SELECT created_at, updated_at FROM atoll_transfers WHERE id = ?"
	err = tx.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt)
	return err
}

// GetByID fetches an atoll with its resorts in display order. It returns
// ErrNotFound when no row exists.
func (r *AtollRepo) GetByID(ctx context.Context, id uint64) (*AtollTransfer, error) {
	const q = `SELECT id, atoll_name, description, icon, gradient, is_active, position, created_at, updated_at
	           FROM atoll_transfers WHERE id = ?`
	var a AtollTransfer
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.AtollName, &a.Description,
		&a.Icon, &a.Gradient, &a.IsActive, &a.Position, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resorts, err := scanResortsByAtoll(ctx, r.db, a.ID)
	if err != nil {
		return nil, err
	}
	a.Resorts = resorts
	return &a, nil
}

// ListWithResorts returns all atolls in display order, each with its resort
// rows attached. Two queries and an in-memory group-by avoid an N+1 loop.
func (r *AtollRepo) ListWithResorts(ctx context.Context, activeOnly *bool) ([]*AtollTransfer, error) {
	q := `SELECT id, atoll_name, description, icon, gradient, is_active, position, created_at, updated_at
	      FROM atoll_transfers ORDER BY position, id`
	args := []any{}
	if activeOnly != nil {
		q = `SELECT id, atoll_name, description, icon, gradient, is_active, position, created_at, updated_at
		     FROM atoll_transfers WHERE is_active = ? ORDER BY position, id`
		args = append(args, *activeOnly)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*AtollTransfer{}
	byID := map[uint64]*AtollTransfer{}
	for rows.Next() {
		a := &AtollTransfer{Resorts: []*ResortTransfer{}}
		if err := rows.Scan(&a.ID, &a.AtollName, &a.Description, &a.Icon, &a.Gradient,
			&a.IsActive, &a.Position, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
		byID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	resorts, err := listResorts(ctx, r.db, activeOnly)
	if err != nil {
		return nil, err
	}
	for _, rt := range resorts {
		if a, ok := byID[rt.AtollID]; ok {
			a.Resorts = append(a.Resorts, rt)
		}
	}
	return out, nil
}

// Update rewrites the atoll's content fields in place.
func (r *AtollRepo) Update(ctx context.Context, a *AtollTransfer) error {
	const q = `UPDATE atoll_transfers
		SET atoll_name=?, description=?, icon=?, gradient=?, is_active=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`
	res, err := r.db.ExecContext(ctx, q,
		a.AtollName, a.Description, a.Icon, a.Gradient, a.IsActive, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if probeErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM atoll_transfers WHERE id=?", a.ID).Scan(&exists); probeErr != nil {
			if errors.Is(probeErr, sql.ErrNoRows) {
				return ErrNotFound
			}
			return probeErr
		}
	}
	return nil
}

// Delete removes an atoll and all of its resort rows, then renumbers the
// remaining atolls. The cascade and renumbering run in one transaction.
func (r *AtollRepo) Delete(ctx context.Context, id uint64) error {
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
	if err = tx.QueryRowContext(ctx, "SELECT 1 FROM atoll_transfers WHERE id=?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM resort_transfers WHERE atoll_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM atoll_transfers WHERE id = ?", id); err != nil {
		return err
	}
	err = renumberTx(ctx, tx, atollTable, "", nil)
	return err
}

// Move swaps the atoll with its neighbor in the given direction.
func (r *AtollRepo) Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	moved, err := moveTx(ctx, tx, atollTable, "", nil, id, dir)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	return moved, tx.Commit()
}
