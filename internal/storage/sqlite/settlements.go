package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/splitz/ledger/internal/models"
	"github.com/splitz/ledger/internal/storage"
)

const settlementColumns = `id, group_id, payer_id, payee_id, amount, status,
	created_at, updated_at, marked_paid_at, settled_at`

// CreateSettlement persists a new settlement to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}
	settlement.UpdatedAt = settlement.CreatedAt
	if settlement.Status == "" {
		settlement.Status = models.StatusPending
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (group_id, payer_id, payee_id, amount, status,
			created_at, updated_at, marked_paid_at, settled_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.GroupID, settlement.PayerID, settlement.PayeeID, settlement.Amount, settlement.Status,
		settlement.CreatedAt, settlement.UpdatedAt,
		nullTime(settlement.MarkedPaidAt), nullTime(settlement.SettledAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}
	settlement.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read settlement id: %w", err)
	}
	return nil
}

// GetSettlement retrieves a settlement by ID.
func (s *SQLiteStore) GetSettlement(ctx context.Context, settlementID int64) (*models.Settlement, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+settlementColumns+" FROM settlements WHERE id = ?", settlementID)
	settlement, err := scanSettlement(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("settlement %d: %w", settlementID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}
	return settlement, nil
}

// ListSettlementsByGroup retrieves all settlements for a group.
func (s *SQLiteStore) ListSettlementsByGroup(ctx context.Context, groupID int64) ([]*models.Settlement, error) {
	return listSettlements(ctx, s.db, groupID)
}

func listSettlements(ctx context.Context, q queryer, groupID int64) ([]*models.Settlement, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+settlementColumns+" FROM settlements WHERE group_id = ? ORDER BY created_at DESC, id DESC",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by group: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}

// UpdateSettlementStatus writes the status and lifecycle timestamps of a
// settlement if its stored status is still from, so two racing transitions
// cannot both succeed.
func (s *SQLiteStore) UpdateSettlementStatus(ctx context.Context, settlement *models.Settlement, from models.SettlementStatus) error {
	if settlement.UpdatedAt == 0 {
		settlement.UpdatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE settlements SET status = ?, updated_at = ?, marked_paid_at = ?, settled_at = ?
		 WHERE id = ? AND status = ?`,
		settlement.Status, settlement.UpdatedAt,
		nullTime(settlement.MarkedPaidAt), nullTime(settlement.SettledAt), settlement.ID, from,
	)
	if err != nil {
		return fmt.Errorf("failed to update settlement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated settlement: %w", err)
	}
	if n > 0 {
		return nil
	}

	if _, err := s.GetSettlement(ctx, settlement.ID); err != nil {
		return err
	}
	return fmt.Errorf("settlement %d is no longer %s: %w", settlement.ID, from, models.ErrInvalidTransition)
}

func scanSettlement(row rowScanner) (*models.Settlement, error) {
	var (
		st                  models.Settlement
		status              string
		markedPaid, settled sql.NullInt64
	)
	if err := row.Scan(&st.ID, &st.GroupID, &st.PayerID, &st.PayeeID, &st.Amount, &status,
		&st.CreatedAt, &st.UpdatedAt, &markedPaid, &settled); err != nil {
		return nil, err
	}

	parsed, err := models.ParseSettlementStatus(status)
	if err != nil {
		return nil, err
	}
	st.Status = parsed
	st.MarkedPaidAt = markedPaid.Int64
	st.SettledAt = settled.Int64
	return &st, nil
}

// nullTime stores an unset unix timestamp as NULL.
func nullTime(ts int64) sql.NullInt64 {
	return sql.NullInt64{Int64: ts, Valid: ts != 0}
}
