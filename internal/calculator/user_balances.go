package calculator

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// FactSource supplies group snapshots. Implementations must return an error
// matching ErrNotFound (errors.Is) when the group no longer exists.
type FactSource interface {
	GroupFacts(ctx context.Context, groupID int64) (*GroupFacts, error)
}

// Membership names a group a user belongs to.
type Membership struct {
	GroupID   int64
	GroupName string
}

// GroupBalance is a user's balance within one group.
type GroupBalance struct {
	GroupID   int64
	GroupName string
	Balance   decimal.Decimal
}

// UserBalances is the cross-group view of one user.
type UserBalances struct {
	UserID       int64
	TotalBalance decimal.Decimal
	Groups       []GroupBalance
	// Skipped lists memberships whose group vanished before its facts could be
	// read. Always empty under FailOnMissingGroup.
	Skipped []Membership
}

// MissingGroupPolicy decides what ComputeUserBalances does when a group's
// facts report ErrNotFound.
type MissingGroupPolicy int

const (
	// SkipMissingGroups leaves the group out of the total and lists it in
	// UserBalances.Skipped.
	SkipMissingGroups MissingGroupPolicy = iota
	// FailOnMissingGroup aborts the whole call with ErrNotFound.
	FailOnMissingGroup
)

// DefaultFetchConcurrency bounds concurrent FactSource calls.
const DefaultFetchConcurrency = 4

type userBalanceOptions struct {
	policy      MissingGroupPolicy
	concurrency int
}

// UserBalanceOption configures ComputeUserBalances.
type UserBalanceOption func(*userBalanceOptions)

// WithMissingGroupPolicy overrides the default SkipMissingGroups policy.
func WithMissingGroupPolicy(p MissingGroupPolicy) UserBalanceOption {
	return func(o *userBalanceOptions) { o.policy = p }
}

// WithFetchConcurrency bounds how many group snapshots are fetched at once.
// Values below 1 are ignored.
func WithFetchConcurrency(n int) UserBalanceOption {
	return func(o *userBalanceOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// ComputeUserBalances computes userID's balance in every group of memberships
// and their total. Groups are reported in membership order.
//
// Errors other than ErrNotFound from the source always fail the call; the
// handling of ErrNotFound is chosen by MissingGroupPolicy.
func ComputeUserBalances(ctx context.Context, source FactSource, userID int64, memberships []Membership, opts ...UserBalanceOption) (*UserBalances, error) {
	o := userBalanceOptions{policy: SkipMissingGroups, concurrency: DefaultFetchConcurrency}
	for _, opt := range opts {
		opt(&o)
	}

	balances := make([]*decimal.Decimal, len(memberships))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, m := range memberships {
		i, m := i, m
		g.Go(func() error {
			facts, err := source.GroupFacts(gctx, m.GroupID)
			if err != nil {
				if errors.Is(err, ErrNotFound) && o.policy == SkipMissingGroups {
					return nil
				}
				return fmt.Errorf("group %d: %w", m.GroupID, err)
			}
			balance := ComputeGroupBalances(*facts).BalanceOf(userID)
			balances[i] = &balance
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &UserBalances{
		UserID:       userID,
		TotalBalance: zero,
		Groups:       make([]GroupBalance, 0, len(memberships)),
	}
	for i, m := range memberships {
		if balances[i] == nil {
			result.Skipped = append(result.Skipped, m)
			continue
		}
		result.Groups = append(result.Groups, GroupBalance{
			GroupID:   m.GroupID,
			GroupName: m.GroupName,
			Balance:   *balances[i],
		})
		result.TotalBalance = result.TotalBalance.Add(*balances[i])
	}
	result.TotalBalance = RoundMoney(result.TotalBalance)
	return result, nil
}
