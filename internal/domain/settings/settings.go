package settings

import (
	"FutureYako/internal/pkg"

	"github.com/shopspring/decimal"
)

type DeductionType string

const (
	DeductionPercentage DeductionType = "percentage"
	DeductionFixed      DeductionType = "fixed"
)

func (t DeductionType) Valid() bool {
	return t == DeductionPercentage || t == DeductionFixed
}

// MinDurationMonths is the shortest saving period a user can choose.
const MinDurationMonths = 6

// Settings controls how much of every incoming deposit is saved.
type Settings struct {
	DeductionType  DeductionType   `json:"deductionType"`
	Amount         decimal.Decimal `json:"amount"`
	IsEnabled      bool            `json:"isEnabled"`
	DurationMonths int             `json:"durationMonths"`
}

// Deduction is the part of deposit that goes to savings. Fixed deductions
// never exceed the deposit itself.
func (s Settings) Deduction(deposit decimal.Decimal) decimal.Decimal {
	if !s.IsEnabled || !deposit.IsPositive() || !s.Amount.IsPositive() {
		return decimal.Zero
	}
	if s.DeductionType == DeductionFixed {
		return decimal.Min(s.Amount, deposit)
	}
	return deposit.Mul(s.Amount).Div(pkg.Hundred)
}

// CanPayBills holds once automatic deduction is switched off and the saving
// period meets the minimum.
func (s Settings) CanPayBills() bool {
	return !s.IsEnabled && s.DurationMonths >= MinDurationMonths
}

// OnboardingRequest is the first deduction choice made by a new user.
type OnboardingRequest struct {
	DeductionType DeductionType   `validate:"required,oneof=percentage fixed"`
	Amount        decimal.Decimal `validate:"gt=0"`
}
