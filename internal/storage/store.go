// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/splitz/ledger/internal/calculator"
	"github.com/splitz/ledger/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
// It is the same sentinel the calculator uses, so a Store can serve as a
// calculator.FactSource directly.
var ErrNotFound = calculator.ErrNotFound

// ErrAlreadyExists is returned (wrapped) when a record would be duplicated.
var ErrAlreadyExists = errors.New("already exists")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	calculator.FactSource

	// CreateGroup persists a new group and adds group.CreatedBy as its admin.
	// The group.ID and CreatedAt fields are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by its ID.
	GetGroup(ctx context.Context, groupID int64) (*models.Group, error)

	// UpdateGroup overwrites a group's name and description.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group together with its memberships, expenses and
	// settlements.
	DeleteGroup(ctx context.Context, groupID int64) error

	// AddMember adds userID to a group. Adding an existing member is an error.
	AddMember(ctx context.Context, member *models.GroupMember) error

	// RemoveMember deletes a membership. Past expenses and settlements that
	// mention the user are kept.
	RemoveMember(ctx context.Context, groupID, userID int64) error

	// GetMember returns a user's membership in a group.
	GetMember(ctx context.Context, groupID, userID int64) (*models.GroupMember, error)

	// ListMembers returns a group's members ordered by join time.
	ListMembers(ctx context.Context, groupID int64) ([]*models.GroupMember, error)

	// ListMembershipsByUser returns every group userID belongs to, ordered by group id.
	ListMembershipsByUser(ctx context.Context, userID int64) ([]calculator.Membership, error)

	// CreateExpense persists an expense together with its splits.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense with its splits.
	GetExpense(ctx context.Context, expenseID int64) (*models.Expense, error)

	// ListExpensesByGroup returns a group's expenses with splits, newest first.
	ListExpensesByGroup(ctx context.Context, groupID int64) ([]*models.Expense, error)

	// UpdateExpense overwrites an expense and replaces all of its splits.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, expenseID int64) error

	// CreateSettlement persists a new settlement.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// GetSettlement retrieves a settlement by ID.
	GetSettlement(ctx context.Context, settlementID int64) (*models.Settlement, error)

	// ListSettlementsByGroup returns a group's settlements, newest first.
	ListSettlementsByGroup(ctx context.Context, groupID int64) ([]*models.Settlement, error)

	// UpdateSettlementStatus stores the status and lifecycle timestamps of a
	// settlement, provided its stored status is still from. Otherwise it
	// returns models.ErrInvalidTransition.
	UpdateSettlementStatus(ctx context.Context, settlement *models.Settlement, from models.SettlementStatus) error

	// ListCategories returns every expense category ordered by name.
	ListCategories(ctx context.Context) ([]*models.Category, error)

	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, categoryID int64) (*models.Category, error)

	// Close releases any resources held by the store.
	Close() error
}
