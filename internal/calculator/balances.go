package calculator

import (
	"slices"

	"github.com/shopspring/decimal"
)

// SettlementStatus mirrors the settlement lifecycle tag. Only SettlementCompleted
// settlements move balances.
type SettlementStatus string

const (
	SettlementPending    SettlementStatus = "PENDING"
	SettlementMarkedPaid SettlementStatus = "MARKED_PAID"
	SettlementCompleted  SettlementStatus = "COMPLETED"
)

// ExpenseFacts is the slice of an expense the balance computation needs.
type ExpenseFacts struct {
	PayerID int64
	Amount  decimal.Decimal
	Splits  []Share
}

// SettlementFacts is the slice of a settlement the balance computation needs.
type SettlementFacts struct {
	PayerID int64 // debtor settling up
	PayeeID int64 // creditor being paid
	Amount  decimal.Decimal
	Status  SettlementStatus
}

// Balances maps a user id to their net position in a group.
// Positive = the group owes them, negative = they owe the group.
type Balances map[int64]decimal.Decimal

// Sum returns the total of all balances. For a consistent fact set it is zero.
func (b Balances) Sum() decimal.Decimal {
	total := zero
	for _, v := range b {
		total = total.Add(v)
	}
	return total
}

// UserIDs returns the ids present in b in ascending order.
func (b Balances) UserIDs() []int64 {
	ids := make([]int64, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ComputeBalances folds a group's expenses and completed settlements into a
// net balance per user.
//
// Algorithm:
//   - every member starts at 0.00, even with no activity
//   - an expense credits its payer with the full amount and debits each split
//     user with their share (split users that are no longer members are added)
//   - a COMPLETED settlement credits the payer and debits the payee
//
// Given exact split sums the result sums to zero.
func ComputeBalances(members []int64, expenses []ExpenseFacts, settlements []SettlementFacts) Balances {
	balances := make(Balances, len(members))
	for _, id := range members {
		balances[id] = zero
	}

	for _, e := range expenses {
		balances.add(e.PayerID, e.Amount)
		for _, s := range e.Splits {
			balances.add(s.UserID, s.Amount.Neg())
		}
	}

	for _, s := range settlements {
		if s.Status != SettlementCompleted {
			continue
		}
		// Payer's debt is discharged, payee's credit is realized.
		balances.add(s.PayerID, s.Amount)
		balances.add(s.PayeeID, s.Amount.Neg())
	}

	for id, v := range balances {
		balances[id] = RoundMoney(v)
	}
	return balances
}

func (b Balances) add(userID int64, amount decimal.Decimal) {
	current, ok := b[userID]
	if !ok {
		current = zero
	}
	b[userID] = current.Add(amount)
}
