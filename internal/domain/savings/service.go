package savings

import (
	"context"

	"FutureYako/internal/domain/goal"
	"FutureYako/internal/domain/settings"
	"FutureYako/internal/domain/transaction"
	appErrors "FutureYako/internal/errors"
	"FutureYako/internal/logger"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// FundingSource selects where a withdrawal is taken from: a single goal, or
// all goals in order when GoalID is nil.
type FundingSource struct {
	GoalID *ulid.ULID
}

func FromTotal() FundingSource {
	return FundingSource{}
}

func FromGoal(id ulid.ULID) FundingSource {
	return FundingSource{GoalID: &id}
}

func (f FundingSource) IsTotal() bool {
	return f.GoalID == nil
}

func (f FundingSource) String() string {
	if f.IsTotal() {
		return "total"
	}
	return f.GoalID.String()
}

type DepositResult struct {
	Incoming    decimal.Decimal
	Deducted    decimal.Decimal
	Goals       []goal.Goal
	Transaction *transaction.Transaction
}

type WithdrawResult struct {
	Amount      decimal.Decimal
	Source      FundingSource
	Goals       []goal.Goal
	Transaction transaction.Transaction
}

type WithdrawRequest struct {
	Source      FundingSource
	Amount      decimal.Decimal
	Category    transaction.Category
	Description string
}

type Service struct {
	Registry     *goal.Registry
	Settings     *settings.Provider
	Transactions *transaction.Store
}

func NewService(registry *goal.Registry, settingsProvider *settings.Provider, transactions *transaction.Store) *Service {
	return &Service{
		Registry:     registry,
		Settings:     settingsProvider,
		Transactions: transactions,
	}
}

// Deposit distributes amount across the goals as-is.
func (s *Service) Deposit(ctx context.Context, amount decimal.Decimal) (DepositResult, error) {
	if err := ctx.Err(); err != nil {
		return DepositResult{}, appErrors.FromError(err)
	}
	if !amount.IsPositive() {
		return DepositResult{}, appErrors.NewValidationError("amount", "amount must be greater than zero")
	}

	return s.save(amount, amount, "Deposit to savings"), nil
}

// SimulateDeposit models money arriving in the linked account: the configured
// deduction is taken from incoming and distributed across the goals. With
// automatic deduction off nothing is saved.
func (s *Service) SimulateDeposit(ctx context.Context, incoming decimal.Decimal) (DepositResult, error) {
	if err := ctx.Err(); err != nil {
		return DepositResult{}, appErrors.FromError(err)
	}
	if !incoming.IsPositive() {
		return DepositResult{}, appErrors.NewValidationError("amount", "incoming amount must be greater than zero")
	}

	deducted := s.Settings.Get().Deduction(incoming)
	if !deducted.IsPositive() {
		logger.Info().
			Str("incoming", incoming.String()).
			Msg("automatic deduction is off, nothing saved")
		return DepositResult{
			Incoming: incoming,
			Deducted: decimal.Zero,
			Goals:    s.Registry.Goals(),
		}, nil
	}

	return s.save(incoming, deducted, "Automatic deduction"), nil
}

func (s *Service) save(incoming, amount decimal.Decimal, description string) DepositResult {
	goals := s.Registry.Distribute(amount)
	tx := s.Transactions.Record(transaction.Deposit, transaction.CategorySavings, amount, description, nil)

	logger.Info().
		Str("incoming", incoming.String()).
		Str("saved", amount.String()).
		Int("goals", len(goals)).
		Str("total_savings", goal.Total(goals).String()).
		Msg("deposit distributed")

	return DepositResult{
		Incoming:    incoming,
		Deducted:    amount,
		Goals:       goals,
		Transaction: &tx,
	}
}

// Withdraw checks that the source can cover amount before deducting it. The
// allocation engine clamps silently, so insufficient balances are reported
// here.
func (s *Service) Withdraw(ctx context.Context, request WithdrawRequest) (WithdrawResult, error) {
	if err := ctx.Err(); err != nil {
		return WithdrawResult{}, appErrors.FromError(err)
	}
	if !request.Amount.IsPositive() {
		return WithdrawResult{}, appErrors.NewValidationError("amount", "please enter a valid amount")
	}

	var goals []goal.Goal
	if request.Source.IsTotal() {
		total := s.Registry.TotalSavings()
		if total.LessThan(request.Amount) {
			return WithdrawResult{}, appErrors.ErrInsufficientSavings.WithDetails(map[string]interface{}{
				"available": total.String(),
				"requested": request.Amount.String(),
			})
		}
		goals = s.Registry.DeductFromTotal(request.Amount)
	} else {
		g, err := s.Registry.Get(*request.Source.GoalID)
		if err != nil || !g.CurrentAmount.IsPositive() {
			return WithdrawResult{}, appErrors.ErrNoGoalBalance.WithDetails(map[string]interface{}{
				"goal_id": request.Source.String(),
			})
		}
		if g.CurrentAmount.LessThan(request.Amount) {
			return WithdrawResult{}, appErrors.ErrInsufficientGoalBalance.WithDetails(map[string]interface{}{
				"goal":      g.Name,
				"available": g.CurrentAmount.String(),
				"requested": request.Amount.String(),
			})
		}
		goals = s.Registry.DeductFromGoal(g.Id, request.Amount)
	}

	tx := s.Transactions.Record(transaction.Withdrawal, request.Category, request.Amount, request.Description, request.Source.GoalID)

	logger.Info().
		Str("amount", request.Amount.String()).
		Str("source", request.Source.String()).
		Str("category", string(request.Category)).
		Str("total_savings", goal.Total(goals).String()).
		Msg("savings withdrawn")

	return WithdrawResult{
		Amount:      request.Amount,
		Source:      request.Source,
		Goals:       goals,
		Transaction: tx,
	}, nil
}
