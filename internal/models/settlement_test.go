package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitz/ledger/internal/calculator"
)

func TestSettlementLifecycle(t *testing.T) {
	s := NewSettlement(1, 102, 101, decimal.RequireFromString("50.00"))
	assert.Equal(t, StatusPending, s.Status)

	require.NoError(t, s.MarkPaid(1000))
	assert.Equal(t, StatusMarkedPaid, s.Status)
	assert.Equal(t, int64(1000), s.MarkedPaidAt)
	assert.Zero(t, s.SettledAt)

	require.NoError(t, s.Confirm(2000))
	assert.Equal(t, StatusCompleted, s.Status)
	assert.Equal(t, int64(2000), s.SettledAt)
	assert.Equal(t, int64(2000), s.UpdatedAt)
}

func TestSettlementInvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		from  SettlementStatus
		apply func(*Settlement) error
	}{
		{"confirm pending", StatusPending, func(s *Settlement) error { return s.Confirm(1) }},
		{"mark paid twice", StatusMarkedPaid, func(s *Settlement) error { return s.MarkPaid(1) }},
		{"mark completed paid", StatusCompleted, func(s *Settlement) error { return s.MarkPaid(1) }},
		{"confirm completed", StatusCompleted, func(s *Settlement) error { return s.Confirm(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settlement{Status: tt.from}
			err := tt.apply(s)
			require.ErrorIs(t, err, ErrInvalidTransition)
			assert.Equal(t, tt.from, s.Status, "status must not change on a rejected transition")
		})
	}
}

func TestSettlementFactsGateOnStatus(t *testing.T) {
	s := NewSettlement(1, 2, 1, decimal.RequireFromString("10.00"))
	members := []int64{1, 2}

	balances := calculator.ComputeBalances(members, nil, []calculator.SettlementFacts{s.Facts()})
	assert.True(t, balances[1].IsZero())

	require.NoError(t, s.MarkPaid(1))
	require.NoError(t, s.Confirm(2))
	balances = calculator.ComputeBalances(members, nil, []calculator.SettlementFacts{s.Facts()})
	assert.Equal(t, "-10.00", calculator.FormatMoney(balances[1]))
	assert.Equal(t, "10.00", calculator.FormatMoney(balances[2]))
}

func TestParseSettlementStatus(t *testing.T) {
	st, err := ParseSettlementStatus("MARKED_PAID")
	require.NoError(t, err)
	assert.Equal(t, StatusMarkedPaid, st)

	_, err = ParseSettlementStatus("REFUNDED")
	assert.Error(t, err)
}

func TestBuildSplits(t *testing.T) {
	splits, err := BuildSplits(decimal.RequireFromString("10.00"), calculator.SplitEqual, []calculator.Participant{
		{UserID: 1}, {UserID: 2}, {UserID: 3},
	})
	require.NoError(t, err)
	require.Len(t, splits, 3)
	assert.Equal(t, "3.34", calculator.FormatMoney(splits[0].ShareAmount))
	assert.Nil(t, splits[0].SplitValue)
	assert.Equal(t, calculator.SplitEqual, splits[1].SplitType)

	v := decimal.RequireFromString("7.50")
	rest := decimal.RequireFromString("2.50")
	splits, err = BuildSplits(decimal.RequireFromString("10.00"), calculator.SplitExact, []calculator.Participant{
		{UserID: 1, Value: &v}, {UserID: 2, Value: &rest},
	})
	require.NoError(t, err)
	require.NotNil(t, splits[0].SplitValue)
	assert.True(t, splits[0].SplitValue.Equal(v))
	assert.True(t, splits[1].ShareAmount.Equal(rest))

	e := &Expense{PaidBy: 1, Amount: decimal.RequireFromString("10.00"), Splits: splits}
	facts := e.Facts()
	assert.Equal(t, int64(1), facts.PayerID)
	require.Len(t, facts.Splits, 2)
	assert.Equal(t, int64(2), facts.Splits[1].UserID)

	_, err = BuildSplits(decimal.RequireFromString("10.00"), calculator.SplitExact, nil)
	assert.ErrorIs(t, err, calculator.ErrValidation)
}
