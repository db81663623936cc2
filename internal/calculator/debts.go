package calculator

import (
	"container/heap"

	"github.com/shopspring/decimal"
)

// Debt is one transfer of the simplified settlement plan.
type Debt struct {
	From   int64 // person who owes
	To     int64 // person who is owed
	Amount decimal.Decimal
}

// SimplifyDebts reduces a balance map to a list of transfers that brings
// every balance to zero.
//
// Greedy matching: the largest creditor is paired with the largest debtor,
// the smaller side is fully settled and the other is re-queued with what is
// left. Equal balances are ordered by ascending user id so the output is
// reproducible. Every step zeroes at least one user, so the result has at
// most (users with a nonzero balance - 1) transfers. The count is not
// guaranteed to be the global minimum.
func SimplifyDebts(balances Balances) []Debt {
	// creditors: largest positive first; debtors: most negative first.
	creditors := &ledgerQueue{less: func(a, b position) bool {
		if c := a.amount.Cmp(b.amount); c != 0 {
			return c > 0
		}
		return a.userID < b.userID
	}}
	debtors := &ledgerQueue{less: func(a, b position) bool {
		if c := a.amount.Cmp(b.amount); c != 0 {
			return c < 0
		}
		return a.userID < b.userID
	}}

	for _, id := range balances.UserIDs() {
		amount := balances[id]
		switch amount.Sign() {
		case 1:
			creditors.items = append(creditors.items, position{userID: id, amount: amount})
		case -1:
			debtors.items = append(debtors.items, position{userID: id, amount: amount})
		}
	}
	heap.Init(creditors)
	heap.Init(debtors)

	var debts []Debt
	for creditors.Len() > 0 && debtors.Len() > 0 {
		creditor := heap.Pop(creditors).(position)
		debtor := heap.Pop(debtors).(position)

		settle := RoundMoney(decimal.Min(creditor.amount, debtor.amount.Abs()))
		if settle.IsPositive() {
			debts = append(debts, Debt{From: debtor.userID, To: creditor.userID, Amount: settle})
		}

		creditor.amount = creditor.amount.Sub(settle)
		debtor.amount = debtor.amount.Add(settle)

		if creditor.amount.IsPositive() {
			heap.Push(creditors, creditor)
		}
		if debtor.amount.IsNegative() {
			heap.Push(debtors, debtor)
		}
	}
	return debts
}

type position struct {
	userID int64
	amount decimal.Decimal
}

// ledgerQueue is a binary heap of positions ordered by less.
type ledgerQueue struct {
	items []position
	less  func(a, b position) bool
}

func (q *ledgerQueue) Len() int           { return len(q.items) }
func (q *ledgerQueue) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }
func (q *ledgerQueue) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *ledgerQueue) Push(x any)         { q.items = append(q.items, x.(position)) }

func (q *ledgerQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}
