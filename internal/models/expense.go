package models

import (
	"github.com/shopspring/decimal"

	"github.com/splitz/ledger/internal/calculator"
)

// DefaultCurrency is used when an expense is created without a currency code.
const DefaultCurrency = "EUR"

// Expense is a payment made by one group member on behalf of some participants.
type Expense struct {
	// ID is assigned by the store on creation.
	ID int64

	GroupID int64

	Description string

	// Amount is the total paid, at two decimal places.
	Amount decimal.Decimal

	// Currency is an ISO 4217 code (e.g., "EUR").
	Currency string

	// PaidBy is the user who paid the full amount.
	PaidBy int64

	// CategoryID optionally classifies the expense.
	CategoryID *int64

	// ExpenseDate is the calendar day of the expense in YYYY-MM-DD form, if known.
	ExpenseDate string

	Notes      string
	ReceiptURL string

	CreatedAt int64
	UpdatedAt int64

	// Splits divide Amount among participants and always sum to it exactly.
	Splits []ExpenseSplit
}

// ExpenseSplit is one participant's portion of an expense.
type ExpenseSplit struct {
	UserID int64

	// SplitType records the strategy the share was computed with.
	SplitType calculator.SplitStrategy

	// SplitValue is the declared value for EXACT splits; nil for EQUAL.
	SplitValue *decimal.Decimal

	// ShareAmount is the computed amount this user owes toward the expense.
	ShareAmount decimal.Decimal
}

// Facts returns the part of the expense that balance computation reads.
func (e *Expense) Facts() calculator.ExpenseFacts {
	shares := make([]calculator.Share, len(e.Splits))
	for i, s := range e.Splits {
		shares[i] = calculator.Share{UserID: s.UserID, Amount: s.ShareAmount}
	}
	return calculator.ExpenseFacts{PayerID: e.PaidBy, Amount: e.Amount, Splits: shares}
}

// BuildSplits computes splits for amount and turns them into ExpenseSplits.
func BuildSplits(amount decimal.Decimal, strategy calculator.SplitStrategy, participants []calculator.Participant) ([]ExpenseSplit, error) {
	shares, err := calculator.ComputeSplits(amount, strategy, participants)
	if err != nil {
		return nil, err
	}

	splits := make([]ExpenseSplit, len(shares))
	for i, share := range shares {
		split := ExpenseSplit{
			UserID:      share.UserID,
			SplitType:   strategy,
			ShareAmount: share.Amount,
		}
		if strategy == calculator.SplitExact {
			split.SplitValue = participants[i].Value
		}
		splits[i] = split
	}
	return splits, nil
}
