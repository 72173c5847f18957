// This file defines the TransferFAQ model and repository. FAQs carry a free
// text category used as a filter key; the literal "all" (or an absent
// category) selects the full set.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/atollway/travel-content-api/internal/ordering"
)

// TransferFAQ is one question/answer pair on the transportation page.
type TransferFAQ struct {
	ID        uint64 `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Category  string `json:"category"`
	Icon      string `json:"icon"`
	IsActive  bool   `json:"is_active"`
	Position  int    `json:"order"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CategoryAll is the literal filter value meaning "no filter".
const CategoryAll = "all"

const faqTable = "transfer_faqs"

const faqCols = "id, question, answer, category, icon, is_active, position, created_at, updated_at"

// FAQRepo encapsulates all database queries for transfer FAQs.
type FAQRepo struct {
	db *sql.DB
}

// NewFAQRepo constructs a FAQRepo with the provided DB handle.
func NewFAQRepo(db *sql.DB) *FAQRepo {
	return &FAQRepo{db: db}
}

func scanFAQ(row interface{ Scan(...any) error }) (*TransferFAQ, error) {
	var f TransferFAQ
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.Icon,
		&f.IsActive, &f.Position, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// Create inserts a FAQ. Negative Position appends at the end.
func (r *FAQRepo) Create(ctx context.Context, f *TransferFAQ) error {
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
		if f.Position, err = nextPositionTx(ctx, tx, faqTable, "", nil); err != nil {
			return err
		}
	}
	const qInsert = `INSERT INTO transfer_faqs
		(question, answer, category, icon, is_active, position) VALUES (?,?,?,?,?,?)`
	res, err := tx.ExecContext(ctx, qInsert,
		f.Question, f.Answer, f.Category, f.Icon, f.IsActive, f.Position)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)

	const qSelect = "SELECT created_at, updated_at FROM transfer_faqs WHERE id = ?"
	err = tx.QueryRowContext(ctx, qSelect, f.ID).Scan(&f.CreatedAt, &f.UpdatedAt)
	return err
}

// GetByID fetches a FAQ by id.
func (r *FAQRepo) GetByID(ctx context.Context, id uint64) (*TransferFAQ, error) {
	const q = "SELECT " + faqCols + " FROM transfer_faqs WHERE id = ?"
	f, err := scanFAQ(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// List returns FAQs in display order, optionally narrowed to one category.
// The category "all" and the empty string both mean unfiltered.
func (r *FAQRepo) List(ctx context.Context, category string, activeOnly *bool) ([]*TransferFAQ, error) {
	q := "SELECT " + faqCols + " FROM transfer_faqs"
	var (
		conds []string
		args  []any
	)
	if category != "" && category != CategoryAll {
		conds = append(conds, "category = ?")
		args = append(args, category)
	}
	if activeOnly != nil {
		conds = append(conds, "is_active = ?")
		args = append(args, *activeOnly)
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY position, id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*TransferFAQ{}
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Update rewrites the FAQ's content fields.
func (r *FAQRepo) Update(ctx context.Context, f *TransferFAQ) error {
	const q = `UPDATE transfer_faqs
		SET question=?, answer=?, category=?, icon=?, is_active=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=?`
	res, err := r.db.ExecContext(ctx, q,
		f.Question, f.Answer, f.Category, f.Icon, f.IsActive, f.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if probeErr := r.db.QueryRowContext(ctx,
			"SELECT 1 FROM transfer_faqs WHERE id=?", f.ID).Scan(&exists); probeErr != nil {
			if errors.Is(probeErr, sql.ErrNoRows) {
				return ErrNotFound
			}
			return probeErr
		}
	}
	return nil
}

// Delete removes a FAQ and renumbers the rest.
func (r *FAQRepo) Delete(ctx context.Context, id uint64) error {
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

	res, err := tx.ExecContext(ctx, "DELETE FROM transfer_faqs WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrNotFound
		return err
	}
	err = renumberTx(ctx, tx, faqTable, "", nil)
	return err
}

// Move swaps the FAQ with its neighbor in the given direction.
func (r *FAQRepo) Move(ctx context.Context, id uint64, dir ordering.Direction) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	moved, err := moveTx(ctx, tx, faqTable, "", nil, id, dir)
	if err != nil {
		_ = tx.Rollback()
		return false, err
	}
	return moved, tx.Commit()
}
