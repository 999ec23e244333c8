package investment

import (
	"context"
	"fmt"

	"FutureYako/config"
	"FutureYako/internal/domain/savings"
	"FutureYako/internal/domain/transaction"
	appErrors "FutureYako/internal/errors"
	"FutureYako/internal/logger"
	"FutureYako/internal/pkg"

	"github.com/shopspring/decimal"
)

type SavingsServiceInterface interface {
	Withdraw(ctx context.Context, request savings.WithdrawRequest) (savings.WithdrawResult, error)
}

type InvestRequest struct {
	AssetID string                `validate:"required"`
	Amount  decimal.Decimal       `validate:"gte=0"`
	Source  savings.FundingSource `validate:"-"`
}

type InvestResult struct {
	Holding       Holding
	TotalInvested decimal.Decimal
	Transaction   transaction.Transaction
	Message       string
}

type Service struct {
	Savings   SavingsServiceInterface
	Portfolio *Portfolio
	Ticket    decimal.Decimal
	Currency  string
}

func NewService(savingsService *savings.Service, portfolio *Portfolio, cfg *config.Config) *Service {
	return &Service{
		Savings:   savingsService,
		Portfolio: portfolio,
		Ticket:    cfg.Money.InvestmentTicket,
		Currency:  cfg.Money.Currency,
	}
}

// Invest buys into an asset with money taken from savings. A zero amount
// buys one standard ticket.
func (s *Service) Invest(ctx context.Context, req InvestRequest) (*InvestResult, error) {
	if err := pkg.Validator().Struct(req); err != nil {
		return nil, appErrors.ParseValidationErrors(err)
	}

	asset, err := FindAsset(req.AssetID)
	if err != nil {
		return nil, err
	}

	amount := req.Amount
	if amount.IsZero() {
		amount = s.Ticket
	}

	result, err := s.Savings.Withdraw(ctx, savings.WithdrawRequest{
		Source:      req.Source,
		Amount:      amount,
		Category:    transaction.CategoryInvestment,
		Description: fmt.Sprintf("Investment in %s", asset.Name),
	})
	if err != nil {
		return nil, err
	}

	holding := s.Portfolio.Add(asset, amount)
	total := s.Portfolio.TotalInvested()

	logger.Info().
		Str("asset", asset.Id).
		Str("type", string(asset.Type)).
		Str("amount", amount.String()).
		Str("portfolio_value", total.String()).
		Msg("investment made")

	return &InvestResult{
		Holding:       holding,
		TotalInvested: total,
		Transaction:   result.Transaction,
		Message:       fmt.Sprintf("Invested %s in %s.", pkg.FormatMoney(s.Currency, amount), asset.Name),
	}, nil
}

func (s *Service) ListHoldings(pagination *pkg.PaginationParams) *pkg.PaginatedResponse[Holding] {
	return pkg.Paginate(s.Portfolio.Holdings(), pagination)
}
