package repository

// positions.go implements the dense display-order invariant at the SQL
// layer. Every ordered table carries a `position` column holding exactly
// 0..N-1 within its scope (the whole table, one atoll's resorts, or one
// section kind). The helpers here run inside the caller's transaction so a
// delete or move and its renumbering commit atomically. Table and scope
// column names always come from package-internal constants, never from
// request input.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/atollway/travel-content-api/internal/ordering"
)

// orderedIDsTx returns the ids of a scoped collection in display order.
// Position ties are broken by id so renumbering is deterministic.
func orderedIDsTx(ctx context.Context, tx *sql.Tx, table, scopeCol string, scopeVal any) ([]uint64, error) {
	q := fmt.Sprintf("SELECT id FROM %s ORDER BY position, id", table)
	args := []any{}
	if scopeCol != "" {
		q = fmt.Sprintf("SELECT id FROM %s WHERE %s = ? ORDER BY position, id", table, scopeCol)
		args = append(args, scopeVal)
	}
	rows, err := tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// writePositionsTx persists position = index for the given id order.
func writePositionsTx(ctx context.Context, tx *sql.Tx, table string, ids []uint64) error {
	q := fmt.Sprintf("UPDATE %s SET position = ? WHERE id = ?", table)
	for i, id := range ids {
		if _, err := tx.ExecContext(ctx, q, i, id); err != nil {
			return err
		}
	}
	return nil
}

// renumberTx restores the dense 0..N-1 permutation after a delete or import.
func renumberTx(ctx context.Context, tx *sql.Tx, table, scopeCol string, scopeVal any) error {
	ids, err := orderedIDsTx(ctx, tx, table, scopeCol, scopeVal)
	if err != nil {
		return err
	}
	return writePositionsTx(ctx, tx, table, ids)
}

// moveTx swaps id with its neighbor in the given direction, then renumbers.
// It returns false (and no error) when the move is a boundary no-op, and
// ErrNotFound when the id is not part of the scoped collection.
func moveTx(ctx context.Context, tx *sql.Tx, table, scopeCol string, scopeVal any, id uint64, dir ordering.Direction) (bool, error) {
	ids, err := orderedIDsTx(ctx, tx, table, scopeCol, scopeVal)
	if err != nil {
		return false, err
	}
	i := ordering.IndexOf(ids, id)
	if i < 0 {
		return false, ErrNotFound
	}
	swapped, ok := ordering.Move(ids, i, dir)
	if !ok {
		return false, nil
	}
	if err := writePositionsTx(ctx, tx, table, swapped); err != nil {
		return false, err
	}
	return true, nil
}

// nextPositionTx returns the append position (current count) for a scope.
func nextPositionTx(ctx context.Context, tx *sql.Tx, table, scopeCol string, scopeVal any) (int, error) {
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	args := []any{}
	if scopeCol != "" {
		q = fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ?", table, scopeCol)
		args = append(args, scopeVal)
	}
	var n int
	if err := tx.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return ordering.AppendPosition(n), nil
}
