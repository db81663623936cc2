package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/splitz/ledger/internal/calculator"
	"github.com/splitz/ledger/internal/metrics"
	"github.com/splitz/ledger/internal/storage"
	"github.com/splitz/ledger/pkg/api"
)

// BalanceService implements the Connect BalanceService. Balances are derived
// from stored expenses and settlements on every call and never persisted.
type BalanceService struct {
	store   storage.Store
	metrics *metrics.Metrics
	opts    []calculator.UserBalanceOption
}

var _ api.BalanceServiceHandler = (*BalanceService)(nil)

// NewBalanceService creates a new BalanceService. opts configure how
// GetUserBalances fans out over the caller's groups.
func NewBalanceService(store storage.Store, m *metrics.Metrics, opts ...calculator.UserBalanceOption) *BalanceService {
	return &BalanceService{store: store, metrics: m, opts: opts}
}

// GetGroupBalances returns every member's net balance in a group and the
// simplified list of payments that would settle it.
func (s *BalanceService) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "GetGroupBalances", err)
	}

	facts, err := s.store.GroupFacts(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(ctx, "GetGroupBalances", err)
	}
	balances := calculator.ComputeGroupBalances(*facts)
	s.metrics.ObserveGroupBalances(len(balances.SimplifiedDebts))

	slog.DebugContext(ctx, "GetGroupBalances successful",
		"group_id", req.Msg.GroupID,
		"expenses", len(facts.Expenses),
		"settlements", len(facts.Settlements),
		"debts", len(balances.SimplifiedDebts),
	)

	return connect.NewResponse(toAPIGroupBalances(balances)), nil
}

// GetUserBalances returns the caller's balance in each of their groups and
// the total across them. Users may only read their own balances.
func (s *BalanceService) GetUserBalances(ctx context.Context, req *connect.Request[api.GetUserBalancesRequest]) (*connect.Response[api.GetUserBalancesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	target := req.Msg.UserID
	if target == 0 {
		target = userID
	}
	if target != userID {
		err := fmt.Errorf("%w: user %d cannot read balances of user %d", ErrPermissionDenied, userID, target)
		return nil, toConnectError(ctx, "GetUserBalances", err)
	}

	memberships, err := s.store.ListMembershipsByUser(ctx, target)
	if err != nil {
		return nil, toConnectError(ctx, "GetUserBalances", err)
	}

	result, err := calculator.ComputeUserBalances(ctx, s.store, target, memberships, s.opts...)
	if err != nil {
		return nil, toConnectError(ctx, "GetUserBalances", err)
	}
	s.metrics.ObserveUserBalances(len(result.Skipped))

	if len(result.Skipped) > 0 {
		slog.WarnContext(ctx, "Groups disappeared while computing user balances",
			"user_id", target,
			"skipped", len(result.Skipped),
		)
	}

	return connect.NewResponse(toAPIUserBalances(result)), nil
}

// PreviewSplits computes the shares an expense would produce without storing
// anything.
func (s *BalanceService) PreviewSplits(ctx context.Context, req *connect.Request[api.PreviewSplitsRequest]) (*connect.Response[api.PreviewSplitsResponse], error) {
	if _, err := callerID(ctx); err != nil {
		return nil, err
	}

	amount, err := parseMoney("amount", req.Msg.Amount)
	if err != nil {
		return nil, toConnectError(ctx, "PreviewSplits", err)
	}
	strategy, err := calculator.ParseSplitStrategy(req.Msg.SplitType)
	if err != nil {
		return nil, toConnectError(ctx, "PreviewSplits", err)
	}
	participants, err := participantsFromAPI(strategy, req.Msg.Splits)
	if err != nil {
		return nil, toConnectError(ctx, "PreviewSplits", err)
	}

	shares, err := calculator.ComputeSplits(amount, strategy, participants)
	if err != nil {
		return nil, toConnectError(ctx, "PreviewSplits", err)
	}

	out := make([]api.Share, len(shares))
	for i, sh := range shares {
		out[i] = api.Share{UserID: sh.UserID, Amount: calculator.FormatMoney(sh.Amount)}
	}
	return connect.NewResponse(&api.PreviewSplitsResponse{Shares: out}), nil
}
