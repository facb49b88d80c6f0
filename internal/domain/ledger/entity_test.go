package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdjustmentSign(t *testing.T) {
	assert.Equal(t, 1, AdjustmentRaise.Sign())
	assert.Equal(t, -1, AdjustmentDecrease.Sign())
	assert.Equal(t, -1, AdjustmentCredit.Sign())

	// Unknown kinds count positive rather than silently vanishing.
	assert.Equal(t, 1, AdjustmentKind("bonus").Sign())
}

func TestSignedSum(t *testing.T) {
	adjustments := []WageAdjustment{
		{Kind: AdjustmentRaise, Amount: decimal.NewFromInt(300)},
		{Kind: AdjustmentDecrease, Amount: decimal.NewFromInt(120)},
		{Kind: AdjustmentCredit, Amount: decimal.NewFromInt(50)},
		{Kind: AdjustmentRaise, Amount: decimal.RequireFromString("19.75")},
	}

	assert.True(t, SignedSum(adjustments).Equal(decimal.RequireFromString("149.75")))
}

func TestSignedSumEmpty(t *testing.T) {
	assert.True(t, SignedSum(nil).IsZero())
}
