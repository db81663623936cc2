package calculator

import "github.com/shopspring/decimal"

// GroupFacts is a consistent snapshot of everything that moves a group's balances.
type GroupFacts struct {
	GroupID     int64
	Members     []int64
	Expenses    []ExpenseFacts
	Settlements []SettlementFacts
}

// MemberBalance is one user's entry in a group balance report.
type MemberBalance struct {
	UserID  int64
	Balance decimal.Decimal
}

// GroupBalances is the group-level view: every user's balance (ascending user
// id) and the simplified transfers that would settle them.
type GroupBalances struct {
	GroupID         int64
	Balances        []MemberBalance
	SimplifiedDebts []Debt
}

// ComputeGroupBalances runs the balance aggregation and debt simplification
// over one group snapshot.
func ComputeGroupBalances(facts GroupFacts) GroupBalances {
	balances := ComputeBalances(facts.Members, facts.Expenses, facts.Settlements)

	ordered := make([]MemberBalance, 0, len(balances))
	for _, id := range balances.UserIDs() {
		ordered = append(ordered, MemberBalance{UserID: id, Balance: balances[id]})
	}

	return GroupBalances{
		GroupID:         facts.GroupID,
		Balances:        ordered,
		SimplifiedDebts: SimplifyDebts(balances),
	}
}

// BalanceOf returns userID's balance, or 0.00 when the user has no entry.
func (g GroupBalances) BalanceOf(userID int64) decimal.Decimal {
	for _, b := range g.Balances {
		if b.UserID == userID {
			return b.Balance
		}
	}
	return zero
}
