package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SplitStrategy selects how an expense amount is divided among participants.
type SplitStrategy string

const (
	// SplitEqual divides the amount evenly. Any rounding remainder goes to the
	// first participant in input order.
	SplitEqual SplitStrategy = "EQUAL"

	// SplitExact takes each participant's declared value as their share.
	// The declared values must sum to the amount exactly.
	SplitExact SplitStrategy = "EXACT"
)

// ParseSplitStrategy converts a wire tag into a SplitStrategy.
func ParseSplitStrategy(s string) (SplitStrategy, error) {
	switch SplitStrategy(s) {
	case SplitEqual, SplitExact:
		return SplitStrategy(s), nil
	default:
		return "", fmt.Errorf("%w: unknown split strategy %q", ErrValidation, s)
	}
}

// Participant is one entry of a split request. Value is only read for EXACT splits.
type Participant struct {
	UserID int64
	Value  *decimal.Decimal
}

// Share is one participant's computed portion of an expense.
type Share struct {
	UserID int64
	Amount decimal.Decimal
}

// ComputeSplits divides amount among participants according to strategy.
// The returned shares follow participant order and always sum to amount exactly.
//
// For SplitEqual the base share is amount/N rounded half-up to two decimals and
// the first participant absorbs amount - base*N. The bias toward the first
// participant is part of the contract: callers that want a different person to
// carry the extra cent must order the participants accordingly.
//
// When amount is only a few cents and N is large, base can round up past
// amount/N and the first share goes negative: 0.04 over six gives -0.01 to the
// first participant and 0.01 to the others. The shares still sum to amount.
//
// For SplitExact every declared value must be non-negative with at most two
// decimal places.
func ComputeSplits(amount decimal.Decimal, strategy SplitStrategy, participants []Participant) ([]Share, error) {
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: at least one split required", ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero, got %s", ErrValidation, amount)
	}
	if !hasMoneyScale(amount) {
		return nil, fmt.Errorf("%w: amount %s has more than %d decimal places", ErrValidation, amount, MoneyScale)
	}

	seen := make(map[int64]struct{}, len(participants))
	for _, p := range participants {
		if _, dup := seen[p.UserID]; dup {
			return nil, fmt.Errorf("%w: user %d appears more than once in splits", ErrValidation, p.UserID)
		}
		seen[p.UserID] = struct{}{}
	}

	switch strategy {
	case SplitEqual:
		return splitEqual(amount, participants), nil
	case SplitExact:
		return splitExact(amount, participants)
	default:
		return nil, fmt.Errorf("%w: unknown split strategy %q", ErrValidation, strategy)
	}
}

func splitEqual(amount decimal.Decimal, participants []Participant) []Share {
	count := decimal.NewFromInt(int64(len(participants)))
	base := amount.DivRound(count, MoneyScale)
	remainder := amount.Sub(base.Mul(count))

	shares := make([]Share, len(participants))
	for i, p := range participants {
		share := base
		if i == 0 {
			share = share.Add(remainder)
		}
		shares[i] = Share{UserID: p.UserID, Amount: RoundMoney(share)}
	}
	return shares
}

func splitExact(amount decimal.Decimal, participants []Participant) ([]Share, error) {
	sum := decimal.Zero
	shares := make([]Share, len(participants))
	for i, p := range participants {
		if p.Value == nil {
			return nil, fmt.Errorf("%w: split value is required for EXACT split (user %d)", ErrValidation, p.UserID)
		}
		if p.Value.IsNegative() {
			return nil, fmt.Errorf("%w: split value for user %d must not be negative, got %s", ErrValidation, p.UserID, p.Value)
		}
		if !hasMoneyScale(*p.Value) {
			return nil, fmt.Errorf("%w: split value %s for user %d has more than %d decimal places",
				ErrValidation, p.Value, p.UserID, MoneyScale)
		}
		sum = sum.Add(*p.Value)
		shares[i] = Share{UserID: p.UserID, Amount: *p.Value}
	}

	if !sum.Equal(amount) {
		return nil, fmt.Errorf("%w: sum of splits %s must equal total amount %s (difference %s)",
			ErrValidation, FormatMoney(sum), FormatMoney(amount), FormatMoney(amount.Sub(sum)))
	}
	return shares, nil
}
