package goal

import (
	"time"

	"FutureYako/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Distribute splits amount across goals by their allocation rules and
// returns the updated collection. The input slice is never modified.
//
// A non-positive amount returns goals as given. An empty collection yields a
// single "My Savings" goal holding the whole amount. When every goal requests
// nothing the amount is split equally. Otherwise each goal receives its
// requested share, scaled down proportionally when the requests exceed the
// amount. Requests below the amount are not scaled up and the remainder is
// left unassigned.
func Distribute(goals []Goal, amount decimal.Decimal) []Goal {
	if !amount.IsPositive() {
		return goals
	}
	if len(goals) == 0 {
		return []Goal{newDefaultGoal(amount)}
	}

	requests := make([]decimal.Decimal, len(goals))
	totalRequested := decimal.Zero
	for i, g := range goals {
		requests[i] = requestedShare(g, amount)
		totalRequested = totalRequested.Add(requests[i])
	}

	now := time.Now()
	updated := clone(goals)

	if !totalRequested.IsPositive() {
		equalShare := amount.Div(decimal.NewFromInt(int64(len(goals))))
		for i := range updated {
			credit(&updated[i], equalShare, now)
		}
		return updated
	}

	if totalRequested.LessThanOrEqual(amount) {
		for i, requested := range requests {
			if requested.IsPositive() {
				credit(&updated[i], requested, now)
			}
		}
		return updated
	}

	// Over-subscribed: scale every request by amount/totalRequested. The last
	// funded goal takes the rounding remainder so the shares sum to amount.
	last := -1
	for i, requested := range requests {
		if requested.IsPositive() {
			last = i
		}
	}
	assigned := decimal.Zero
	for i, requested := range requests {
		if !requested.IsPositive() {
			continue
		}
		share := requested.Mul(amount).Div(totalRequested)
		if i == last {
			share = pkg.ClampZero(amount.Sub(assigned))
		}
		assigned = assigned.Add(share)
		credit(&updated[i], share, now)
	}
	return updated
}

func requestedShare(g Goal, amount decimal.Decimal) decimal.Decimal {
	if !g.AllocationValue.IsPositive() {
		return decimal.Zero
	}
	if g.AllocationType == AllocationFixed {
		return g.AllocationValue
	}
	return amount.Mul(g.AllocationValue).Div(pkg.Hundred)
}

// DeductFromGoal removes up to amount from the goal with the given id,
// clamping its balance at zero. Any shortfall is not taken from other goals.
func DeductFromGoal(goals []Goal, id ulid.ULID, amount decimal.Decimal) []Goal {
	if !amount.IsPositive() {
		return goals
	}

	idx := indexOf(goals, id)
	if idx < 0 || !goals[idx].CurrentAmount.IsPositive() {
		return goals
	}

	updated := clone(goals)
	g := &updated[idx]
	deduction := decimal.Min(amount, g.CurrentAmount)
	g.CurrentAmount = pkg.ClampZero(g.CurrentAmount.Sub(deduction))
	g.UpdatedAt = time.Now()
	return updated
}

// DeductFromTotal drains amount from goals in collection order: earlier goals
// are emptied before later ones are touched. Whatever exceeds the combined
// balance is discarded.
func DeductFromTotal(goals []Goal, amount decimal.Decimal) []Goal {
	if !amount.IsPositive() {
		return goals
	}

	now := time.Now()
	updated := clone(goals)
	remaining := amount
	for i := range updated {
		if !remaining.IsPositive() {
			break
		}
		balance := updated[i].CurrentAmount
		if !balance.IsPositive() {
			continue
		}
		deduction := decimal.Min(balance, remaining)
		remaining = remaining.Sub(deduction)
		updated[i].CurrentAmount = balance.Sub(deduction)
		updated[i].UpdatedAt = now
	}
	return updated
}

// Total sums the balances of goals.
func Total(goals []Goal) decimal.Decimal {
	total := decimal.Zero
	for _, g := range goals {
		total = total.Add(g.CurrentAmount)
	}
	return total
}

func credit(g *Goal, share decimal.Decimal, now time.Time) {
	g.CurrentAmount = g.CurrentAmount.Add(share)
	g.UpdatedAt = now
}

func clone(goals []Goal) []Goal {
	out := make([]Goal, len(goals))
	copy(out, goals)
	return out
}

func indexOf(goals []Goal, id ulid.ULID) int {
	for i := range goals {
		if goals[i].Id == id {
			return i
		}
	}
	return -1
}
