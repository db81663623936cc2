package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/splitz/ledger/internal/calculator"
	"github.com/splitz/ledger/internal/events"
	"github.com/splitz/ledger/internal/metrics"
	"github.com/splitz/ledger/internal/models"
	"github.com/splitz/ledger/internal/storage"
	"github.com/splitz/ledger/pkg/api"
)

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	store  storage.Store
	notify notifier
}

var _ api.ExpenseServiceHandler = (*ExpenseService)(nil)

// NewExpenseService creates a new ExpenseService. A nil publisher drops events.
func NewExpenseService(store storage.Store, publisher events.Publisher, m *metrics.Metrics) *ExpenseService {
	return &ExpenseService{store: store, notify: newNotifier(publisher, m)}
}

// CreateExpense records an expense and computes its splits.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "CreateExpense request received",
		"group_id", req.Msg.GroupID,
		"amount", req.Msg.Amount,
		"split_type", req.Msg.SplitType,
		"splits_count", len(req.Msg.Splits),
	)

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "CreateExpense", err)
	}

	payer := req.Msg.PaidBy
	if payer == 0 {
		payer = userID
	}
	expense := &models.Expense{
		GroupID:     req.Msg.GroupID,
		Description: strings.TrimSpace(req.Msg.Description),
		Currency:    req.Msg.Currency,
		PaidBy:      payer,
		CategoryID:  req.Msg.CategoryID,
		ExpenseDate: req.Msg.ExpenseDate,
		Notes:       req.Msg.Notes,
		ReceiptURL:  req.Msg.ReceiptURL,
	}
	if err := s.applySplits(ctx, expense, req.Msg.Amount, req.Msg.SplitType, req.Msg.Splits); err != nil {
		return nil, toConnectError(ctx, "CreateExpense", err)
	}
	if err := s.validate(ctx, expense); err != nil {
		return nil, toConnectError(ctx, "CreateExpense", err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, toConnectError(ctx, "CreateExpense", err)
	}

	slog.InfoContext(ctx, "Expense created", "expense_id", expense.ID, "group_id", expense.GroupID)
	s.notify.publish(ctx, expenseEvent(events.ExpenseCreated, expense, userID))

	return connect.NewResponse(&api.CreateExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// GetExpense retrieves an expense. Only group members may read it.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, toConnectError(ctx, "GetExpense", err)
	}
	if _, err := requireMember(ctx, s.store, expense.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "GetExpense", err)
	}

	return connect.NewResponse(&api.GetExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpenses lists a group's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "ListExpenses", err)
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(ctx, "ListExpenses", err)
	}

	out := make([]api.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toAPIExpense(e)
	}

	slog.DebugContext(ctx, "ListExpenses successful", "group_id", req.Msg.GroupID, "count", len(out))

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// UpdateExpense changes the fields set in the request. Only the payer or a
// group admin may update an expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[api.UpdateExpenseRequest]) (*connect.Response[api.UpdateExpenseResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "UpdateExpense request received", "expense_id", req.Msg.ExpenseID)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, toConnectError(ctx, "UpdateExpense", err)
	}
	if err := s.authorizeChange(ctx, expense, userID); err != nil {
		return nil, toConnectError(ctx, "UpdateExpense", err)
	}

	msg := req.Msg
	if msg.Description != nil {
		expense.Description = strings.TrimSpace(*msg.Description)
	}
	if msg.Currency != nil {
		expense.Currency = *msg.Currency
	}
	if msg.CategoryID != nil {
		expense.CategoryID = msg.CategoryID
	}
	if msg.ExpenseDate != nil {
		expense.ExpenseDate = *msg.ExpenseDate
	}
	if msg.Notes != nil {
		expense.Notes = *msg.Notes
	}
	if msg.ReceiptURL != nil {
		expense.ReceiptURL = *msg.ReceiptURL
	}

	if msg.Amount != nil || msg.SplitType != nil || len(msg.Splits) > 0 {
		if err := s.resplit(ctx, expense, msg); err != nil {
			return nil, toConnectError(ctx, "UpdateExpense", err)
		}
	}
	if err := s.validate(ctx, expense); err != nil {
		return nil, toConnectError(ctx, "UpdateExpense", err)
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, toConnectError(ctx, "UpdateExpense", err)
	}

	slog.InfoContext(ctx, "Expense updated", "expense_id", expense.ID)
	s.notify.publish(ctx, expenseEvent(events.ExpenseUpdated, expense, userID))

	return connect.NewResponse(&api.UpdateExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// DeleteExpense removes an expense. Only the payer or a group admin may delete it.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "DeleteExpense request received", "expense_id", req.Msg.ExpenseID)

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, toConnectError(ctx, "DeleteExpense", err)
	}
	if err := s.authorizeChange(ctx, expense, userID); err != nil {
		return nil, toConnectError(ctx, "DeleteExpense", err)
	}

	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		return nil, toConnectError(ctx, "DeleteExpense", err)
	}

	slog.InfoContext(ctx, "Expense deleted", "expense_id", expense.ID)
	s.notify.publish(ctx, expenseEvent(events.ExpenseDeleted, expense, userID))

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// authorizeChange lets the payer through, then any admin of the group.
func (s *ExpenseService) authorizeChange(ctx context.Context, expense *models.Expense, userID int64) error {
	if expense.PaidBy == userID {
		return nil
	}
	err := requireAdmin(ctx, s.store, expense.GroupID, userID)
	if errors.Is(err, ErrPermissionDenied) {
		return fmt.Errorf("%w: only the payer or a group admin can modify expense %d", ErrPermissionDenied, expense.ID)
	}
	return err
}

// applySplits parses the amount and split inputs and stores the computed
// splits on expense. Every split user must be a current member.
func (s *ExpenseService) applySplits(ctx context.Context, expense *models.Expense, amount, splitType string, inputs []api.SplitInput) error {
	total, err := parseMoney("amount", amount)
	if err != nil {
		return err
	}
	strategy, err := calculator.ParseSplitStrategy(splitType)
	if err != nil {
		return err
	}
	participants, err := participantsFromAPI(strategy, inputs)
	if err != nil {
		return err
	}
	if err := s.requireMembers(ctx, expense.GroupID, participants); err != nil {
		return err
	}

	splits, err := models.BuildSplits(total, strategy, participants)
	if err != nil {
		return err
	}
	expense.Amount = total
	expense.Splits = splits
	return nil
}

// resplit recomputes every share after an amount or split change. Missing
// pieces of the request fall back to the expense's current values.
func (s *ExpenseService) resplit(ctx context.Context, expense *models.Expense, msg *api.UpdateExpenseRequest) error {
	amount := calculator.FormatMoney(expense.Amount)
	if msg.Amount != nil {
		amount = *msg.Amount
	}

	splitType := string(calculator.SplitEqual)
	if len(expense.Splits) > 0 {
		splitType = string(expense.Splits[0].SplitType)
	}
	if msg.SplitType != nil {
		splitType = *msg.SplitType
	}

	inputs := msg.Splits
	if len(inputs) == 0 {
		inputs = make([]api.SplitInput, len(expense.Splits))
		for i, split := range expense.Splits {
			inputs[i] = api.SplitInput{UserID: split.UserID}
			if split.SplitValue != nil {
				inputs[i].Value = split.SplitValue.String()
			}
		}
	}

	return s.applySplits(ctx, expense, amount, splitType, inputs)
}

func (s *ExpenseService) requireMembers(ctx context.Context, groupID int64, participants []calculator.Participant) error {
	members, err := memberSet(ctx, s.store, groupID)
	if err != nil {
		return err
	}
	for _, p := range participants {
		if !members[p.UserID] {
			return validationf("split user %d is not a member of group %d", p.UserID, groupID)
		}
	}
	return nil
}

// validate checks the descriptive fields of an expense and fills defaults.
func (s *ExpenseService) validate(ctx context.Context, expense *models.Expense) error {
	if expense.Description == "" {
		return validationf("description is required")
	}
	if expense.Currency == "" {
		expense.Currency = models.DefaultCurrency
	}
	expense.Currency = strings.ToUpper(expense.Currency)
	if len(expense.Currency) != 3 {
		return validationf("currency %q must be a 3-letter ISO code", expense.Currency)
	}
	if expense.ExpenseDate != "" {
		if _, err := time.Parse(time.DateOnly, expense.ExpenseDate); err != nil {
			return validationf("expense_date %q must be YYYY-MM-DD", expense.ExpenseDate)
		}
	}
	if expense.CategoryID != nil {
		if _, err := s.store.GetCategory(ctx, *expense.CategoryID); err != nil {
			return err
		}
	}
	if _, err := s.store.GetMember(ctx, expense.GroupID, expense.PaidBy); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return validationf("payer %d must be a member of group %d", expense.PaidBy, expense.GroupID)
		}
		return err
	}
	return nil
}

// ListCategories returns the categories an expense can be filed under.
func (s *ExpenseService) ListCategories(ctx context.Context, req *connect.Request[api.ListCategoriesRequest]) (*connect.Response[api.ListCategoriesResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, toConnectError(ctx, "ListCategories", err)
	}

	out := make([]api.Category, len(categories))
	for i, c := range categories {
		out[i] = toAPICategory(c)
	}
	return connect.NewResponse(&api.ListCategoriesResponse{Categories: out}), nil
}

func expenseEvent(t events.Type, e *models.Expense, actorID int64) events.Event {
	return events.New(t, e.GroupID, e.ID, actorID, map[string]string{
		"amount":   calculator.FormatMoney(e.Amount),
		"currency": e.Currency,
		"paid_by":  fmt.Sprint(e.PaidBy),
	})
}
