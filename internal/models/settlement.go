package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/splitz/ledger/internal/calculator"
)

// ErrInvalidTransition is returned when a settlement cannot move to the requested status.
var ErrInvalidTransition = errors.New("invalid settlement status transition")

// SettlementStatus is the lifecycle state of a settlement.
type SettlementStatus = calculator.SettlementStatus

const (
	StatusPending    = calculator.SettlementPending
	StatusMarkedPaid = calculator.SettlementMarkedPaid
	StatusCompleted  = calculator.SettlementCompleted
)

// ParseSettlementStatus converts a stored tag into a SettlementStatus.
func ParseSettlementStatus(s string) (SettlementStatus, error) {
	switch SettlementStatus(s) {
	case StatusPending, StatusMarkedPaid, StatusCompleted:
		return SettlementStatus(s), nil
	default:
		return "", fmt.Errorf("unknown settlement status %q", s)
	}
}

// nextStatus lists the single forward step allowed from each state.
// COMPLETED is terminal.
var nextStatus = map[SettlementStatus]SettlementStatus{
	StatusPending:    StatusMarkedPaid,
	StatusMarkedPaid: StatusCompleted,
}

// Settlement is a payment between group members to clear debts.
type Settlement struct {
	// ID is assigned by the store on creation.
	ID int64

	GroupID int64

	// PayerID is the user who pays (debtor settling up).
	PayerID int64

	// PayeeID is the user who receives payment (creditor being paid).
	PayeeID int64

	Amount decimal.Decimal

	Status SettlementStatus

	CreatedAt int64
	UpdatedAt int64

	// MarkedPaidAt is set when the payer asserts payment.
	MarkedPaidAt int64

	// SettledAt is set when the payee confirms payment.
	SettledAt int64
}

// NewSettlement returns a PENDING settlement.
func NewSettlement(groupID, payerID, payeeID int64, amount decimal.Decimal) *Settlement {
	return &Settlement{
		GroupID: groupID,
		PayerID: payerID,
		PayeeID: payeeID,
		Amount:  amount,
		Status:  StatusPending,
	}
}

// MarkPaid moves a PENDING settlement to MARKED_PAID.
func (s *Settlement) MarkPaid(now int64) error {
	if err := s.advance(StatusMarkedPaid); err != nil {
		return err
	}
	s.MarkedPaidAt = now
	s.UpdatedAt = now
	return nil
}

// Confirm moves a MARKED_PAID settlement to COMPLETED.
func (s *Settlement) Confirm(now int64) error {
	if err := s.advance(StatusCompleted); err != nil {
		return err
	}
	s.SettledAt = now
	s.UpdatedAt = now
	return nil
}

func (s *Settlement) advance(to SettlementStatus) error {
	if nextStatus[s.Status] != to {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Status, to)
	}
	s.Status = to
	return nil
}

// Facts returns the part of the settlement that balance computation reads.
func (s *Settlement) Facts() calculator.SettlementFacts {
	return calculator.SettlementFacts{
		PayerID: s.PayerID,
		PayeeID: s.PayeeID,
		Amount:  s.Amount,
		Status:  s.Status,
	}
}
