package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitz/ledger/internal/models"
	"github.com/splitz/ledger/internal/storage"
)

const expenseColumns = `id, group_id, description, amount, currency, paid_by, category_id,
	expense_date, notes, receipt_url, created_at, updated_at`

// CreateExpense persists a new expense and its splits in one transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	now := time.Now().Unix()
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now
	}
	expense.UpdatedAt = expense.CreatedAt
	if expense.Currency == "" {
		expense.Currency = models.DefaultCurrency
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO expenses (group_id, description, amount, currency, paid_by, category_id,
			expense_date, notes, receipt_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.GroupID, expense.Description, expense.Amount, expense.Currency, expense.PaidBy,
		expense.CategoryID, nullString(expense.ExpenseDate), nullString(expense.Notes),
		nullString(expense.ReceiptURL), expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	expense.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}

	if err := insertSplits(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including its splits.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID int64) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+expenseColumns+" FROM expenses WHERE id = ?", expenseID)
	expense, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %d: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	splits, err := listSplits(ctx, s.db, "WHERE expense_id = ?", expenseID)
	if err != nil {
		return nil, err
	}
	expense.Splits = splits[expense.ID]
	return expense, nil
}

// ListExpensesByGroup retrieves all expenses of a group, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID int64) ([]*models.Expense, error) {
	return listExpenses(ctx, s.db, groupID)
}

func listExpenses(ctx context.Context, q queryer, groupID int64) ([]*models.Expense, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE group_id = ? ORDER BY created_at DESC, id DESC",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	var expenses []*models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	splits, err := listSplits(ctx, q,
		"WHERE expense_id IN (SELECT id FROM expenses WHERE group_id = ?)", groupID)
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		e.Splits = splits[e.ID]
	}
	return expenses, nil
}

// UpdateExpense overwrites an expense and replaces its splits wholesale.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	expense.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses SET description = ?, amount = ?, currency = ?, category_id = ?,
			expense_date = ?, notes = ?, receipt_url = ?, updated_at = ?
		 WHERE id = ?`,
		expense.Description, expense.Amount, expense.Currency, expense.CategoryID,
		nullString(expense.ExpenseDate), nullString(expense.Notes), nullString(expense.ReceiptURL),
		expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check updated expense: %w", err)
	} else if n == 0 {
		return fmt.Errorf("expense %d: %w", expense.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to delete old splits: %w", err)
	}
	if err := insertSplits(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense; its splits go with it via ON DELETE CASCADE.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to check deleted expense: %w", err)
	} else if n == 0 {
		return fmt.Errorf("expense %d: %w", expenseID, storage.ErrNotFound)
	}
	return nil
}

func insertSplits(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	for _, split := range expense.Splits {
		var value decimal.NullDecimal
		if split.SplitValue != nil {
			value = decimal.NewNullDecimal(*split.SplitValue)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO expense_splits (expense_id, user_id, split_type, split_value, share_amount)
			 VALUES (?, ?, ?, ?, ?)`,
			expense.ID, split.UserID, split.SplitType, value, split.ShareAmount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}

// listSplits loads splits matching where, keyed by expense id, in insertion order.
func listSplits(ctx context.Context, q queryer, where string, args ...any) (map[int64][]models.ExpenseSplit, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT expense_id, user_id, split_type, split_value, share_amount FROM expense_splits "+where+" ORDER BY expense_id, id",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	splits := make(map[int64][]models.ExpenseSplit)
	for rows.Next() {
		var (
			expenseID int64
			split     models.ExpenseSplit
			value     decimal.NullDecimal
		)
		if err := rows.Scan(&expenseID, &split.UserID, &split.SplitType, &value, &split.ShareAmount); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		if value.Valid {
			v := value.Decimal
			split.SplitValue = &v
		}
		splits[expenseID] = append(splits[expenseID], split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	var (
		e                       models.Expense
		category                sql.NullInt64
		date, notes, receiptURL sql.NullString
	)
	if err := row.Scan(&e.ID, &e.GroupID, &e.Description, &e.Amount, &e.Currency, &e.PaidBy, &category,
		&date, &notes, &receiptURL, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if category.Valid {
		id := category.Int64
		e.CategoryID = &id
	}
	e.ExpenseDate = date.String
	e.Notes = notes.String
	e.ReceiptURL = receiptURL.String
	return &e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
