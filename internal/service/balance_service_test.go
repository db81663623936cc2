package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitz/ledger/internal/calculator"
	"github.com/splitz/ledger/internal/middleware"
	"github.com/splitz/ledger/internal/storage"
	"github.com/splitz/ledger/pkg/api"
)

func TestGetGroupBalances(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	t.Run("new group is all zero", func(t *testing.T) {
		groupID := env.newGroup(t, "Empty", alice, bob)
		got := env.groupBalances(t, alice, groupID)
		assert.Equal(t, groupID, got.GroupID)
		assert.Equal(t, []api.UserBalance{
			{UserID: alice, Balance: "0.00"},
			{UserID: bob, Balance: "0.00"},
		}, got.Balances)
		assert.Empty(t, got.SimplifiedDebts)
	})

	t.Run("non-member is denied", func(t *testing.T) {
		groupID := env.newGroup(t, "Private", alice)
		_, err := env.balances.GetGroupBalances(ctx, as(t, env, bob, &api.GetGroupBalancesRequest{GroupID: groupID}))
		assertCode(t, connect.CodePermissionDenied, err)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := env.balances.GetGroupBalances(ctx, as(t, env, alice, &api.GetGroupBalancesRequest{GroupID: 9999}))
		assertCode(t, connect.CodeNotFound, err)
	})

	// Only the successful call is counted.
	const expected = `
# HELP splitz_ledger_balance_computations_total Balance computations by scope (group or user).
# TYPE splitz_ledger_balance_computations_total counter
splitz_ledger_balance_computations_total{scope="group"} 1
`
	require.NoError(t, testutil.GatherAndCompare(env.registry, strings.NewReader(expected),
		"splitz_ledger_balance_computations_total"))
}

func TestGetUserBalances(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	trip := env.newGroup(t, "Trip", alice, bob, carol)
	flat := env.newGroup(t, "Flat", bob, alice)
	env.newGroup(t, "Solo", carol)

	env.newExpense(t, alice, &api.CreateExpenseRequest{
		GroupID: trip, Description: "Dinner", Amount: "60.00",
		SplitType: "EQUAL", Splits: equalSplits(alice, bob, carol),
	})
	env.newExpense(t, bob, &api.CreateExpenseRequest{
		GroupID: flat, Description: "Rent", Amount: "100.00",
		SplitType: "EQUAL", Splits: equalSplits(alice, bob),
	})

	t.Run("balance per group and total", func(t *testing.T) {
		resp, err := env.balances.GetUserBalances(ctx, as(t, env, alice, &api.GetUserBalancesRequest{}))
		require.NoError(t, err)

		assert.Equal(t, alice, resp.Msg.UserID)
		assert.Equal(t, "-10.00", resp.Msg.TotalBalance)
		assert.Equal(t, []api.GroupBalance{
			{GroupID: trip, GroupName: "Trip", Balance: "40.00"},
			{GroupID: flat, GroupName: "Flat", Balance: "-50.00"},
		}, resp.Msg.Groups)
		assert.Empty(t, resp.Msg.SkippedGroups)
	})

	t.Run("explicit self request", func(t *testing.T) {
		resp, err := env.balances.GetUserBalances(ctx, as(t, env, bob, &api.GetUserBalancesRequest{UserID: bob}))
		require.NoError(t, err)
		assert.Equal(t, "30.00", resp.Msg.TotalBalance)
	})

	t.Run("no groups", func(t *testing.T) {
		resp, err := env.balances.GetUserBalances(ctx, as(t, env, dave, &api.GetUserBalancesRequest{}))
		require.NoError(t, err)
		assert.Equal(t, "0.00", resp.Msg.TotalBalance)
		assert.Empty(t, resp.Msg.Groups)
	})

	t.Run("other users are private", func(t *testing.T) {
		_, err := env.balances.GetUserBalances(ctx, as(t, env, carol, &api.GetUserBalancesRequest{UserID: alice}))
		assertCode(t, connect.CodePermissionDenied, err)
	})
}

// deletingStore deletes a group right after the caller's memberships are
// listed, as a concurrent DeleteGroup would.
type deletingStore struct {
	storage.Store
	groupID int64
}

func (s *deletingStore) ListMembershipsByUser(ctx context.Context, userID int64) ([]calculator.Membership, error) {
	memberships, err := s.Store.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return memberships, s.Store.DeleteGroup(ctx, s.groupID)
}

func TestGetUserBalancesGroupDeletedConcurrently(t *testing.T) {
	setup := func(t *testing.T) (*testEnv, int64, int64) {
		env := setupTestServer(t)
		trip := env.newGroup(t, "Trip", alice, bob)
		flat := env.newGroup(t, "Flat", alice, bob)
		env.newExpense(t, alice, &api.CreateExpenseRequest{
			GroupID: trip, Description: "Dinner", Amount: "60.00",
			SplitType: "EQUAL", Splits: equalSplits(alice, bob),
		})
		env.newExpense(t, bob, &api.CreateExpenseRequest{
			GroupID: flat, Description: "Rent", Amount: "100.00",
			SplitType: "EQUAL", Splits: equalSplits(alice, bob),
		})
		return env, trip, flat
	}
	ctx := middleware.WithUserID(context.Background(), alice)

	t.Run("skipped by default", func(t *testing.T) {
		env, trip, flat := setup(t)
		svc := NewBalanceService(&deletingStore{Store: env.store, groupID: trip}, nil)

		resp, err := svc.GetUserBalances(ctx, connect.NewRequest(&api.GetUserBalancesRequest{}))
		require.NoError(t, err)
		assert.Equal(t, "-50.00", resp.Msg.TotalBalance)
		assert.Equal(t, []api.GroupBalance{{GroupID: flat, GroupName: "Flat", Balance: "-50.00"}}, resp.Msg.Groups)
		assert.Equal(t, []int64{trip}, resp.Msg.SkippedGroups)
	})

	t.Run("fails when configured", func(t *testing.T) {
		env, trip, _ := setup(t)
		svc := NewBalanceService(&deletingStore{Store: env.store, groupID: trip}, nil,
			calculator.WithMissingGroupPolicy(calculator.FailOnMissingGroup))

		_, err := svc.GetUserBalances(ctx, connect.NewRequest(&api.GetUserBalancesRequest{}))
		assertCode(t, connect.CodeNotFound, err)
	})
}

func TestPreviewSplits(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	resp, err := env.balances.PreviewSplits(ctx, as(t, env, alice, &api.PreviewSplitsRequest{
		Amount:    "10.00",
		SplitType: "EQUAL",
		Splits:    equalSplits(carol, alice, bob),
	}))
	require.NoError(t, err)
	assert.Equal(t, []api.Share{
		{UserID: carol, Amount: "3.34"},
		{UserID: alice, Amount: "3.33"},
		{UserID: bob, Amount: "3.33"},
	}, resp.Msg.Shares)

	resp, err = env.balances.PreviewSplits(ctx, as(t, env, alice, &api.PreviewSplitsRequest{
		Amount:    "12.00",
		SplitType: "EXACT",
		Splits:    []api.SplitInput{{UserID: alice, Value: "2"}, {UserID: bob, Value: "10"}},
	}))
	require.NoError(t, err)
	assert.Equal(t, []api.Share{
		{UserID: alice, Amount: "2.00"},
		{UserID: bob, Amount: "10.00"},
	}, resp.Msg.Shares)

	_, err = env.balances.PreviewSplits(ctx, as(t, env, alice, &api.PreviewSplitsRequest{
		Amount:    "12.00",
		SplitType: "EXACT",
		Splits:    []api.SplitInput{{UserID: alice, Value: "2"}, {UserID: bob, Value: "9"}},
	}))
	assertCode(t, connect.CodeInvalidArgument, err)

	_, err = env.balances.PreviewSplits(ctx, connect.NewRequest(&api.PreviewSplitsRequest{
		Amount: "1.00", SplitType: "EQUAL", Splits: equalSplits(alice),
	}))
	assertCode(t, connect.CodeUnauthenticated, err)
}
