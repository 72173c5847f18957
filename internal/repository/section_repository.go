// This file defines the SectionItem model and repository. Contact methods,
// booking steps, benefits, pricing factors and content blocks all share one
// CRUD shape (title, description, icon, optional value, active flag, dense
// position) and differ only in which list they belong to, so they live in a
// single table scoped by a kind column instead of five copy-pasted tables.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atollway/travel-content-api/internal/ordering"
)

// SectionKind identifies which admin tab a SectionItem belongs to.
type SectionKind string

const (
	KindContactMethod SectionKind = "contact_method"
	KindBookingStep   SectionKind = "booking_step"
	KindBenefit       SectionKind = "benefit"
	KindPricingFactor SectionKind = "pricing_factor"
	KindContent       SectionKind = "content"
)

// SectionKinds lists every valid kind; iteration order matches the aggregate
// response layout.
var SectionKinds = []SectionKind{
	KindContactMethod, KindBookingStep, KindBenefit, KindPricingFactor, KindContent,
}

// ValidSectionKind reports whether k names a known kind.
func ValidSectionKind(k SectionKind) bool {
	for _, v := range SectionKinds {
		if v == k {
			return true
		}
	}
	return false
}

// SectionItem is one row of a kind-scoped content list. Value is free text
// whose meaning depends on the kind (a phone number for contact methods, a
// body paragraph for content blocks); unused kinds leave it empty.
type SectionItem struct {
	ID          uint64      `json:"id"`
	Kind        SectionKind `json:"-"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Value       string      `json:"value,omitempty"`
	IsActive    bool        `json:"is_active"`
	Position    int         `json:"order"`
	CreatedAt   string      `json:"created_at,omitempty"`
	UpdatedAt   string      `json:"updated_at,omitempty"`
}

const sectionTable = "transfer_sections"

const sectionCols = "id, kind, title, description, icon, value, is_active, position, created_at, updated_at"

// SectionRepo encapsulates all database queries for section items. Every
// operation is scoped to a kind so the five resources stay independent
// lists with independent position sequences.
type SectionRepo struct {
	db *sql.DB
}

// NewSectionRepo constructs a SectionRepo with the provided DB handle.
func NewSectionRepo(db *sql.DB) *SectionRepo {
	return &SectionRepo{db: db}
}

func scanSection(row interface{ Scan(...any) error }) (*SectionItem, error) {
	var s SectionItem
	if err := row.Scan(&s.ID, &s.Kind, &s.Title, &s.Description, &s.Icon, &s.Value,
		&s.IsActive, &s.Position, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts an item under its kind. Negative Position appends at the
// end of that kind's list. The kind must be one of SectionKinds; the router
// only builds handlers for known kinds, so a miss here is a wiring bug.
func (r *SectionRepo) Create(ctx context.Context, s *SectionItem) error {
	if !ValidSectionKind(s.Kind) {
		return fmt.Errorf("unknown section kind %q", s.Kind)
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

	if s.Position < 0 {
		if s.Position, err = nextPositionTx(ctx, tx, sectionTable, "kind", string(s.Kind)); err != nil {
			return err
		}
	}
	const qInsert = `INSERT INTO transfer_sections
		(kind, title, description, icon, value, is_active, position) VALUES (?,?,?,?,?,?,?)`
	res, err := tx.ExecContext(ctx, qInsert,
		string(s.Kind), s.Title, s.Description, s.Icon, s.Value, s.IsActive, s.Position)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM transfer_sections WHERE id = ?"
	err = tx.QueryRowContext(ctx, qSelect, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
	return err
}

// GetByID fetches an item by id but only within the given kind, so one
// resource's endpoints can never read another's rows.
func (r *SectionRepo) GetByID(ctx context.Context, kind SectionKind, id uint64) (*SectionItem, error) {
	const q = "SELECT " + sectionCols + " FROM transfer_sections WHERE id = ? AND kind = ?"
	s, err := scanSection(r.db.QueryRowContext(ctx, q, id, string(kind)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// List returns one kind's items in display order.
func (r *SectionRepo) List(ctx context.Context, kind SectionKind, activeOnly *bool) ([]*SectionItem, error) {
	q := "SELECT " + sectionCols + " FROM transfer_sections WHERE kind = ? ORDER BY position, id"
	args := []any{string(kind)}
	if activeOnly != nil {
		q = "SELECT " + sectionCols + " FROM transfer_sections WHERE kind = ? AND is_active = ? ORDER BY position, id"
		args = append(args, *activeOnly)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*SectionItem{}
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update rewrites the item's content fields, scoped to its kind.
func (r *SectionRepo) Update(ctx context.Context, s *SectionItem) error {
	const q = `UPDATE transfer_sections
		SET title=?, description=?, icon=?, value=?, is_active=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=? AND kind=?`
	res, err := r.db.ExecContext(ctx, q,
		s.Title, s.Description, s.Icon, s.Value, s.IsActive, s.ID, string(s.Kind))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if probeErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM transfer_sections WHERE id=? AND kind=?", s.ID, string(s.Kind)).Scan(&exists); probeErr != nil {
			if errors.Is(probeErr, sql.ErrNoRows) {
				return ErrNotFound
			}
			return probeErr
		}
	}
	return nil
}

// Delete removes an item and renumbers the remainder of its kind.
func (r *SectionRepo) Delete(ctx context.Context, kind SectionKind, id uint64) error {
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

	res, err := tx.ExecContext(ctx,
		"DELETE FROM transfer_sections WHERE id = ? AND kind = ?", id, string(kind))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrNotFound
		return err
	}
	err = renumberTx(ctx, tx, sectionTable, "kind", string(kind))
	return err
}

// Move swaps the item with its neighbor within its kind.
func (r *SectionRepo) Move(ctx context.Context, kind SectionKind, id uint64, dir ordering.Direction) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	moved, err := moveTx(ctx, tx, sectionTable, "kind", string(kind), id, dir)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	return moved, tx.Commit()
}
