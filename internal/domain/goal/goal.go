package goal

import (
	"time"

	"FutureYako/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type AllocationType string

const (
	AllocationPercentage AllocationType = "percentage"
	AllocationFixed      AllocationType = "fixed"
)

func (t AllocationType) Valid() bool {
	return t == AllocationPercentage || t == AllocationFixed
}

type GoalStatus string

const (
	Active    GoalStatus = "ACTIVE"
	Completed GoalStatus = "COMPLETED"
)

const (
	DefaultGoalName = "My Savings"
	DefaultCategory = "General"
)

type Goal struct {
	Id              ulid.ULID       `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	CurrentAmount   decimal.Decimal `json:"currentAmount"`
	AllocationType  AllocationType  `json:"allocationType"`
	AllocationValue decimal.Decimal `json:"allocationValue"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Status reports COMPLETED once the balance reaches a positive target.
func (g Goal) Status() GoalStatus {
	if g.TargetAmount.IsPositive() && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount) {
		return Completed
	}
	return Active
}

type Progress struct {
	GoalId        ulid.ULID       `json:"goalId"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Remaining     decimal.Decimal `json:"remaining"`
	Percentage    decimal.Decimal `json:"percentage"`
	Status        GoalStatus      `json:"status"`
}

// Progress is the display view of a goal. Balances may overflow the target;
// only the percentage is clamped to 100.
func (g Goal) Progress() Progress {
	percentage := decimal.Zero
	if g.TargetAmount.IsPositive() {
		percentage = g.CurrentAmount.Div(g.TargetAmount).Mul(pkg.Hundred)
		if percentage.GreaterThan(pkg.Hundred) {
			percentage = pkg.Hundred
		}
	}

	return Progress{
		GoalId:        g.Id,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Remaining:     pkg.ClampZero(g.TargetAmount.Sub(g.CurrentAmount)),
		Percentage:    percentage,
		Status:        g.Status(),
	}
}

func newDefaultGoal(amount decimal.Decimal) Goal {
	now := time.Now()
	return Goal{
		Id:              pkg.GenerateULIDObject(),
		Name:            DefaultGoalName,
		Category:        DefaultCategory,
		TargetAmount:    decimal.Zero,
		CurrentAmount:   amount,
		AllocationType:  AllocationPercentage,
		AllocationValue: pkg.Hundred,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
