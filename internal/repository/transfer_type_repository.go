// This file defines the TransferType model and repository. A transfer type
// is one of the marketing cards on the transportation page (speedboat,
// seaplane, ...) with its feature list, pricing range and pros/cons copy.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/atollway/travel-content-api/internal/ordering"
)

// TransferType represents one transportation option shown on the marketing
// page. List-valued fields are stored as JSON text columns.
type TransferType struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Gradient     string   `json:"gradient"`
	Features     []string `json:"features"`
	PricingRange string   `json:"pricing_range"`
	BestFor      string   `json:"best_for"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
	IsActive     bool     `json:"is_active"`
	Position     int      `json:"order"`
	CreatedAt    string   `json:"created_at,omitempty"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

const transferTypeTable = "transfer_types"

const transferTypeCols = `id, name, description, icon, gradient, features,
	pricing_range, best_for, pros, cons, is_active, position, created_at, updated_at`

// TransferTypeRepo encapsulates all database queries for transfer types.
type TransferTypeRepo struct {
	db *sql.DB
}

// NewTransferTypeRepo constructs a TransferTypeRepo with the provided DB
// handle, allowing dependency injection in tests and at startup.
func NewTransferTypeRepo(db *sql.DB) *TransferTypeRepo {
	return &TransferTypeRepo{db: db}
}

func scanTransferType(row interface{ Scan(...any) error }) (*TransferType, error) {
	var (
		t                    TransferType
		features, pros, cons string
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Icon, &t.Gradient,
		&features, &t.PricingRange, &t.BestFor, &pros, &cons,
		&t.IsActive, &t.Position, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Features = unpackStrings(features)
	t.Pros = unpackStrings(pros)
	t.Cons = unpackStrings(cons)
	return &t, nil
}

// Create inserts a new transfer type. A negative Position means "append":
// the record receives position = current count inside the same transaction.
// On success the ID, Position and timestamp fields are populated.
func (r *TransferTypeRepo) Create(ctx context.Context, t *TransferType) error {
	features, err := packStrings(t.Features)
	if err != nil {
		return err
	}
	pros, err := packStrings(t.Pros)
	if err != nil {
		return err
	}
	cons, err := packStrings(t.Cons)
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

	if t.Position < 0 {
		if t.Position, err = nextPositionTx(ctx, tx, transferTypeTable, "", nil); err != nil {
			return err
		}
	}
	const qInsert = `INSERT INTO transfer_types
		(name, description, icon, gradient, features, pricing_range, best_for, pros, cons, is_active, position)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`
	res, err := tx.ExecContext(ctx, qInsert,
		t.Name, t.Description, t.Icon, t.Gradient, features,
		t.PricingRange, t.BestFor, pros, cons, t.IsActive, t.Position)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)

	// Follow-up SELECT to populate default timestamp fields.
	const qSelect = "SELECT created_at, updated_at FROM transfer_types WHERE id = ?"
	err = tx.QueryRowContext(ctx, qSelect, t.ID).Scan(&t.CreatedAt, &t.UpdatedAt)
	return err
}

// GetByID fetches a transfer type by its id. It returns ErrNotFound when no
// row exists.
func (r *TransferTypeRepo) GetByID(ctx context.Context, id uint64) (*TransferType, error) {
	const q = "SELECT " + transferTypeCols + " FROM transfer_types WHERE id = ?"
	t, err := scanTransferType(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// List returns transfer types in display order. When activeOnly is non-nil
// the result is filtered on the is_active flag.
func (r *TransferTypeRepo) List(ctx context.Context, activeOnly *bool) ([]*TransferType, error) {
	q := "SELECT " + transferTypeCols + " FROM transfer_types ORDER BY position, id"
	args := []any{}
	if activeOnly != nil {
		q = "SELECT " + transferTypeCols + " FROM transfer_types WHERE is_active = ? ORDER BY position, id"
		args = append(args, *activeOnly)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*TransferType{}
	for rows.Next() {
		t, err := scanTransferType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update rewrites all content fields of a transfer type in place. The
// position column is not touched here; ordering changes go through Move.
func (r *TransferTypeRepo) Update(ctx context.Context, t *TransferType) error {
	features, err := packStrings(t.Features)
	if err != nil {
		return err
	}
	pros, err := packStrings(t.Pros)
	if err != nil {
		return err
	}
	cons, err := packStrings(t.Cons)
	if err != nil {
		return err
	}
	const q = `UPDATE transfer_types
		SET name=?, description=?, icon=?, gradient=?, features=?, pricing_range=?,
		    best_for=?, pros=?, cons=?, is_active=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`
	res, err := r.db.ExecContext(ctx, q,
		t.Name, t.Description, t.Icon, t.Gradient, features,
		t.PricingRange, t.BestFor, pros, cons, t.IsActive, t.ID)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is 0 both for missing rows and no-op updates, so
		// distinguish with an existence probe.
		var exists int
		if probeErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM transfer_types WHERE id=?", t.ID).Scan(&exists); probeErr != nil {
			if errors.Is(probeErr, sql.ErrNoRows) {
				return ErrNotFound
			}
			return probeErr
		}
	}
	return nil
}

// Delete removes a transfer type and renumbers the survivors so positions
// stay dense, all in one transaction.
func (r *TransferTypeRepo) Delete(ctx context.Context, id uint64) error {
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

	res, err := tx.ExecContext(ctx, "DELETE FROM transfer_types WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrNotFound
		return err
	}
	err = renumberTx(ctx, tx, transferTypeTable, "", nil)
	return err
}

// Move swaps the record with its neighbor in the given direction. It
// returns false when the move is a boundary no-op.
func (r *TransferTypeRepo) Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	moved, err := moveTx(ctx, tx, transferTypeTable, "", nil, id, dir)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	return moved, tx.Commit()
}
