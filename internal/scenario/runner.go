package scenario

import (
	"context"
	"fmt"
	"strings"

	"FutureYako/internal/domain/bill"
	"FutureYako/internal/domain/dashboard"
	"FutureYako/internal/domain/goal"
	"FutureYako/internal/domain/investment"
	"FutureYako/internal/domain/reset"
	"FutureYako/internal/domain/savings"
	"FutureYako/internal/domain/settings"
	appErrors "FutureYako/internal/errors"
	"FutureYako/internal/logger"
	"FutureYako/internal/pkg"

	"github.com/shopspring/decimal"
)

type StepResult struct {
	Index   int
	Action  Action
	Message string
	Err     *appErrors.AppError
}

func (r StepResult) Failed() bool {
	return r.Err != nil
}

type Report struct {
	Name    string
	Steps   []StepResult
	Summary *dashboard.Summary
}

func (r *Report) Failures() int {
	n := 0
	for _, s := range r.Steps {
		if s.Failed() {
			n++
		}
	}
	return n
}

type Runner struct {
	Registry    *goal.Registry
	Settings    *settings.Provider
	Savings     *savings.Service
	Bills       *bill.Service
	Investments *investment.Service
	Dashboard   *dashboard.Service
	Bus         *reset.Bus
	Currency    string
}

func NewRunner(
	registry *goal.Registry,
	settingsProvider *settings.Provider,
	savingsService *savings.Service,
	billService *bill.Service,
	investmentService *investment.Service,
	dashboardService *dashboard.Service,
	bus *reset.Bus,
) *Runner {
	return &Runner{
		Registry:    registry,
		Settings:    settingsProvider,
		Savings:     savingsService,
		Bills:       billService,
		Investments: investmentService,
		Dashboard:   dashboardService,
		Bus:         bus,
		Currency:    billService.Currency,
	}
}

// Run plays the scenario against the current session. A failing step is
// recorded in the report and the run continues, the way the app shows an
// alert and lets the user carry on.
func (r *Runner) Run(ctx context.Context, sc Scenario) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	if sc.Settings != nil {
		r.applySettings(*sc.Settings)
	}

	report := &Report{Name: sc.Name, Steps: make([]StepResult, 0, len(sc.Steps))}
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return report, appErrors.FromError(err)
		}

		message, err := r.runStep(ctx, step)
		result := StepResult{Index: i + 1, Action: step.Action, Message: message}
		if err != nil {
			result.Err = appErrors.FromError(err)
			logger.Warn().
				Int("step", result.Index).
				Str("action", string(step.Action)).
				Str("code", result.Err.Code).
				Msg("scenario step failed")
		}
		report.Steps = append(report.Steps, result)
	}

	summary, err := r.Dashboard.Summary(ctx)
	if err != nil {
		return report, err
	}
	report.Summary = summary

	logger.Info().
		Str("scenario", sc.Name).
		Int("steps", len(report.Steps)).
		Int("failures", report.Failures()).
		Str("total_savings", summary.TotalBalance.String()).
		Msg("scenario finished")

	return report, nil
}

func (r *Runner) applySettings(s Settings) {
	current := r.Settings.Get()
	if s.DeductionType != "" {
		current.DeductionType = settings.DeductionType(strings.ToLower(s.DeductionType))
	}
	if !s.Amount.IsZero() {
		current.Amount = s.Amount.Decimal
	}
	if s.Enabled != nil {
		current.IsEnabled = *s.Enabled
	}
	if s.DurationMonths != 0 {
		current.DurationMonths = s.DurationMonths
	}
	r.Settings.SetAll(current)
}

func (r *Runner) runStep(ctx context.Context, step Step) (string, error) {
	switch step.Action {
	case ActionCreateGoal:
		created, err := r.Registry.Create(goal.CreateRequest{
			Name:            step.Goal,
			Category:        step.Category,
			TargetAmount:    step.Target.Decimal,
			AllocationType:  goal.AllocationType(strings.ToLower(step.AllocationType)),
			AllocationValue: allocationValue(step),
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("created goal %s with target %s", created.Name, r.money(created.TargetAmount)), nil

	case ActionSetAllocation:
		g, err := r.Registry.FindByName(step.Goal)
		if err != nil {
			return "", err
		}
		if step.AllocationType != "" {
			if g, err = r.Registry.SetAllocationType(g.Id, goal.AllocationType(strings.ToLower(step.AllocationType))); err != nil {
				return "", err
			}
		}
		if step.AllocationValue != nil {
			if g, err = r.Registry.SetAllocationValue(g.Id, step.AllocationValue.Decimal); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("%s now receives %s %s", g.Name, g.AllocationValue.String(), g.AllocationType), nil

	case ActionDeposit:
		result, err := r.Savings.Deposit(ctx, step.Amount.Decimal)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("deposited %s", r.money(result.Deducted)), nil

	case ActionReceive:
		result, err := r.Savings.SimulateDeposit(ctx, step.Amount.Decimal)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("received %s, saved %s", r.money(result.Incoming), r.money(result.Deducted)), nil

	case ActionPayBill:
		source, err := r.source(step.From)
		if err != nil {
			return "", err
		}
		referenceType := bill.ReferenceType(strings.ToLower(step.ReferenceType))
		if referenceType == "" {
			referenceType = bill.ReferenceControl
		}
		receipt, err := r.Bills.Pay(ctx, bill.PayRequest{
			BillerID:       step.Biller,
			ReferenceType:  referenceType,
			ReferenceValue: step.Reference,
			Amount:         step.Amount.Decimal,
			Source:         source,
		})
		if err != nil {
			return "", err
		}
		return receipt.Message, nil

	case ActionInvest:
		source, err := r.source(step.From)
		if err != nil {
			return "", err
		}
		result, err := r.Investments.Invest(ctx, investment.InvestRequest{
			AssetID: step.Asset,
			Amount:  step.Amount.Decimal,
			Source:  source,
		})
		if err != nil {
			return "", err
		}
		return result.Message, nil

	case ActionDeductGoal:
		g, err := r.Registry.FindByName(step.Goal)
		if err != nil {
			return "", err
		}
		goals := r.Registry.DeductFromGoal(g.Id, step.Amount.Decimal)
		return fmt.Sprintf("deducted from %s, total savings %s", g.Name, r.money(goal.Total(goals))), nil

	case ActionDeductTotal:
		goals := r.Registry.DeductFromTotal(step.Amount.Decimal)
		return fmt.Sprintf("deducted from total, total savings %s", r.money(goal.Total(goals))), nil

	case ActionToggleDeduction:
		if r.Settings.ToggleEnabled() {
			return "automatic deduction on", nil
		}
		return "automatic deduction off", nil

	case ActionSetDuration:
		r.Settings.SetDurationMonths(step.Months)
		return fmt.Sprintf("saving duration %d months", r.Settings.Get().DurationMonths), nil

	case ActionReset:
		r.Bus.Reset()
		return "demo state reset", nil
	}

	return "", appErrors.ErrUnknownAction.WithDetails(map[string]interface{}{"action": string(step.Action)})
}

func (r *Runner) source(from string) (savings.FundingSource, error) {
	from = strings.TrimSpace(from)
	if from == "" || strings.EqualFold(from, "total") {
		return savings.FromTotal(), nil
	}
	g, err := r.Registry.FindByName(from)
	if err != nil {
		return savings.FundingSource{}, err
	}
	return savings.FromGoal(g.Id), nil
}

func (r *Runner) money(amount decimal.Decimal) string {
	return pkg.FormatMoney(r.Currency, amount)
}

func allocationValue(step Step) decimal.Decimal {
	if step.AllocationValue == nil {
		return decimal.Zero
	}
	return step.AllocationValue.Decimal
}
