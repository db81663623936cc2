package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func equalExpense(t *testing.T, payer int64, amount string, participants ...int64) ExpenseFacts {
	t.Helper()
	shares, err := ComputeSplits(dec(amount), SplitEqual, users(participants...))
	require.NoError(t, err)
	return ExpenseFacts{PayerID: payer, Amount: dec(amount), Splits: shares}
}

func formatBalances(b Balances) map[int64]string {
	out := make(map[int64]string, len(b))
	for id, v := range b {
		out[id] = FormatMoney(v)
	}
	return out
}

func TestComputeBalances(t *testing.T) {
	t.Run("equal split single payer", func(t *testing.T) {
		balances := ComputeBalances(
			[]int64{101, 102, 103},
			[]ExpenseFacts{equalExpense(t, 101, "60.00", 101, 102, 103)},
			nil,
		)
		assert.Equal(t, map[int64]string{101: "40.00", 102: "-20.00", 103: "-20.00"}, formatBalances(balances))
		assert.True(t, balances.Sum().IsZero())
	})

	t.Run("multi expense netting", func(t *testing.T) {
		balances := ComputeBalances(
			[]int64{101, 102, 103},
			[]ExpenseFacts{
				equalExpense(t, 101, "60.00", 101, 102, 103),
				equalExpense(t, 102, "30.00", 101, 102),
			},
			nil,
		)
		assert.Equal(t, map[int64]string{101: "25.00", 102: "-5.00", 103: "-20.00"}, formatBalances(balances))
	})

	t.Run("completed settlement zeroes the pair", func(t *testing.T) {
		shares, err := ComputeSplits(dec("50.00"), SplitExact, []Participant{
			{UserID: 101, Value: decPtr("0.00")},
			{UserID: 102, Value: decPtr("50.00")},
		})
		require.NoError(t, err)
		expenses := []ExpenseFacts{{PayerID: 101, Amount: dec("50.00"), Splits: shares}}

		before := ComputeBalances([]int64{101, 102}, expenses, nil)
		assert.Equal(t, map[int64]string{101: "50.00", 102: "-50.00"}, formatBalances(before))

		after := ComputeBalances([]int64{101, 102}, expenses, []SettlementFacts{
			{PayerID: 102, PayeeID: 101, Amount: dec("50.00"), Status: SettlementCompleted},
		})
		assert.Equal(t, map[int64]string{101: "0.00", 102: "0.00"}, formatBalances(after))
	})

	t.Run("idle members are reported at zero", func(t *testing.T) {
		balances := ComputeBalances([]int64{1, 2, 3}, nil, nil)
		assert.Equal(t, map[int64]string{1: "0.00", 2: "0.00", 3: "0.00"}, formatBalances(balances))
	})

	t.Run("split users outside membership are included", func(t *testing.T) {
		balances := ComputeBalances(
			[]int64{1},
			[]ExpenseFacts{equalExpense(t, 1, "10.00", 1, 99)},
			nil,
		)
		assert.Equal(t, map[int64]string{1: "5.00", 99: "-5.00"}, formatBalances(balances))
	})
}

func TestComputeBalances_SettlementStatusGating(t *testing.T) {
	members := []int64{1, 2}
	expenses := []ExpenseFacts{equalExpense(t, 1, "30.00", 1, 2)}
	baseline := formatBalances(ComputeBalances(members, expenses, nil))

	for _, status := range []SettlementStatus{SettlementPending, SettlementMarkedPaid} {
		t.Run(string(status), func(t *testing.T) {
			got := ComputeBalances(members, expenses, []SettlementFacts{
				{PayerID: 2, PayeeID: 1, Amount: dec("15.00"), Status: status},
			})
			assert.Equal(t, baseline, formatBalances(got))
		})
	}

	t.Run(string(SettlementCompleted), func(t *testing.T) {
		got := ComputeBalances(members, expenses, []SettlementFacts{
			{PayerID: 2, PayeeID: 1, Amount: dec("15.00"), Status: SettlementCompleted},
		})
		assert.Equal(t, map[int64]string{1: "0.00", 2: "0.00"}, formatBalances(got))
	})
}

func TestComputeBalances_Conservation(t *testing.T) {
	members := []int64{1, 2, 3, 4, 5}
	expenses := []ExpenseFacts{
		equalExpense(t, 1, "10.00", 1, 2, 3),
		equalExpense(t, 2, "99.99", 1, 2, 3, 4, 5),
		equalExpense(t, 3, "0.01", 4, 5),
		equalExpense(t, 5, "1234.57", 5, 4, 3, 2, 1),
		equalExpense(t, 4, "7.00", 1, 2, 3, 4, 5, 6),
	}
	settlements := []SettlementFacts{
		{PayerID: 4, PayeeID: 5, Amount: dec("100.00"), Status: SettlementCompleted},
		{PayerID: 1, PayeeID: 5, Amount: dec("33.33"), Status: SettlementPending},
		{PayerID: 2, PayeeID: 3, Amount: dec("12.34"), Status: SettlementCompleted},
	}

	balances := ComputeBalances(members, expenses, settlements)
	assert.True(t, balances.Sum().IsZero(), "balances sum to %s", balances.Sum())
	for _, v := range balances {
		assert.True(t, hasMoneyScale(v))
	}

	// Order of facts does not matter.
	reversed := make([]ExpenseFacts, len(expenses))
	for i, e := range expenses {
		reversed[len(expenses)-1-i] = e
	}
	assert.Equal(t, formatBalances(balances), formatBalances(ComputeBalances(members, reversed, settlements)))
}

func TestBalances_UserIDs(t *testing.T) {
	b := Balances{30: zero, 10: zero, 20: zero}
	assert.Equal(t, []int64{10, 20, 30}, b.UserIDs())
}
