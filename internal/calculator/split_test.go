package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func users(ids ...int64) []Participant {
	ps := make([]Participant, len(ids))
	for i, id := range ids {
		ps[i] = Participant{UserID: id}
	}
	return ps
}

func shareAmounts(shares []Share) []string {
	out := make([]string, len(shares))
	for i, s := range shares {
		out[i] = FormatMoney(s.Amount)
	}
	return out
}

func TestComputeSplits(t *testing.T) {
	tests := []struct {
		name         string
		amount       string
		strategy     SplitStrategy
		participants []Participant
		want         []string
		wantErr      bool
	}{
		{
			name:         "equal split divides evenly",
			amount:       "60.00",
			strategy:     SplitEqual,
			participants: users(101, 102, 103),
			want:         []string{"20.00", "20.00", "20.00"},
		},
		{
			name:         "equal split gives positive remainder to first participant",
			amount:       "10.00",
			strategy:     SplitEqual,
			participants: users(1, 2, 3),
			want:         []string{"3.34", "3.33", "3.33"},
		},
		{
			name:         "equal split gives negative remainder to first participant",
			amount:       "20.00",
			strategy:     SplitEqual,
			participants: users(1, 2, 3),
			want:         []string{"6.66", "6.67", "6.67"},
		},
		{
			name:         "equal split of one cent",
			amount:       "0.01",
			strategy:     SplitEqual,
			participants: users(1, 2),
			want:         []string{"0.00", "0.01"},
		},
		{
			name:         "equal split of a few cents can leave the first share negative",
			amount:       "0.04",
			strategy:     SplitEqual,
			participants: users(1, 2, 3, 4, 5, 6),
			want:         []string{"-0.01", "0.01", "0.01", "0.01", "0.01", "0.01"},
		},
		{
			name:         "single participant takes everything",
			amount:       "42.42",
			strategy:     SplitEqual,
			participants: users(7),
			want:         []string{"42.42"},
		},
		{
			name:     "exact split passes values through",
			amount:   "50.00",
			strategy: SplitExact,
			participants: []Participant{
				{UserID: 101, Value: decPtr("0.00")},
				{UserID: 102, Value: decPtr("50.00")},
			},
			want: []string{"0.00", "50.00"},
		},
		{
			name:     "exact split sum mismatch",
			amount:   "50.00",
			strategy: SplitExact,
			participants: []Participant{
				{UserID: 101, Value: decPtr("20.00")},
				{UserID: 102, Value: decPtr("29.99")},
			},
			wantErr: true,
		},
		{
			name:     "exact split missing value",
			amount:   "50.00",
			strategy: SplitExact,
			participants: []Participant{
				{UserID: 101, Value: decPtr("50.00")},
				{UserID: 102},
			},
			wantErr: true,
		},
		{
			name:     "exact split negative value",
			amount:   "10.00",
			strategy: SplitExact,
			participants: []Participant{
				{UserID: 1, Value: decPtr("15.00")},
				{UserID: 2, Value: decPtr("-5.00")},
			},
			wantErr: true,
		},
		{
			name:     "exact split value with sub-cent precision",
			amount:   "20.00",
			strategy: SplitExact,
			participants: []Participant{
				{UserID: 102, Value: decPtr("10.005")},
				{UserID: 103, Value: decPtr("9.995")},
			},
			wantErr: true,
		},
		{
			name:         "no participants",
			amount:       "10.00",
			strategy:     SplitEqual,
			participants: nil,
			wantErr:      true,
		},
		{
			name:         "zero amount",
			amount:       "0",
			strategy:     SplitEqual,
			participants: users(1),
			wantErr:      true,
		},
		{
			name:         "amount with sub-cent precision",
			amount:       "10.005",
			strategy:     SplitEqual,
			participants: users(1, 2),
			wantErr:      true,
		},
		{
			name:         "duplicate participant",
			amount:       "10.00",
			strategy:     SplitEqual,
			participants: users(1, 1),
			wantErr:      true,
		},
		{
			name:         "unknown strategy",
			amount:       "10.00",
			strategy:     "PERCENT",
			participants: users(1),
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := ComputeSplits(dec(tt.amount), tt.strategy, tt.participants)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation), "want ErrValidation, got %v", err)
				assert.Nil(t, shares)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, shareAmounts(shares))
			for i, s := range shares {
				assert.Equal(t, tt.participants[i].UserID, s.UserID)
			}
		})
	}
}

func TestComputeSplits_ErrorMessages(t *testing.T) {
	_, err := ComputeSplits(dec("10.00"), SplitEqual, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one split required")

	_, err = ComputeSplits(dec("50.00"), SplitExact, []Participant{
		{UserID: 1, Value: decPtr("20.00")},
		{UserID: 2, Value: decPtr("25.00")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "45.00")
	assert.Contains(t, err.Error(), "50.00")
	assert.Contains(t, err.Error(), "difference 5.00")

	_, err = ComputeSplits(dec("20.00"), SplitExact, []Participant{
		{UserID: 102, Value: decPtr("10.005")},
		{UserID: 103, Value: decPtr("9.995")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user 102")
}

func TestComputeSplits_EqualSumsExactly(t *testing.T) {
	amounts := []string{"0.01", "0.02", "1.00", "10.00", "20.00", "99.99", "100.00", "1234.56", "7.77"}
	for _, a := range amounts {
		for n := 1; n <= 13; n++ {
			ids := make([]int64, n)
			for i := range ids {
				ids[i] = int64(i + 1)
			}
			shares, err := ComputeSplits(dec(a), SplitEqual, users(ids...))
			require.NoError(t, err)
			require.Len(t, shares, n)

			sum := decimal.Zero
			for _, s := range shares {
				sum = sum.Add(s.Amount)
				assert.True(t, hasMoneyScale(s.Amount), "share %s not at money scale", s.Amount)
			}
			assert.True(t, sum.Equal(dec(a)), "amount %s split %d ways sums to %s", a, n, sum)
		}
	}
}

func TestParseSplitStrategy(t *testing.T) {
	s, err := ParseSplitStrategy("EQUAL")
	require.NoError(t, err)
	assert.Equal(t, SplitEqual, s)

	s, err = ParseSplitStrategy("EXACT")
	require.NoError(t, err)
	assert.Equal(t, SplitExact, s)

	_, err = ParseSplitStrategy("equal")
	assert.ErrorIs(t, err, ErrValidation)
}
