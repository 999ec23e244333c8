package bill

import (
	"context"
	"fmt"

	"FutureYako/config"
	"FutureYako/internal/domain/goal"
	"FutureYako/internal/domain/savings"
	"FutureYako/internal/domain/transaction"
	appErrors "FutureYako/internal/errors"
	"FutureYako/internal/logger"
	"FutureYako/internal/pkg"

	"github.com/shopspring/decimal"
)

type PayRequest struct {
	BillerID       string                `validate:"required"`
	ReferenceType  ReferenceType         `validate:"required,oneof=control phone lipa"`
	ReferenceValue string                `validate:"notblank"`
	Amount         decimal.Decimal       `validate:"gt=0"`
	Source         savings.FundingSource `validate:"-"`
}

type Receipt struct {
	Biller         Biller
	ReferenceType  ReferenceType
	ReferenceValue string
	Amount         decimal.Decimal
	Source         savings.FundingSource
	Goals          []goal.Goal
	Transaction    transaction.Transaction
	Message        string
}

type Service struct {
	Savings  *savings.Service
	Currency string
}

func NewService(savingsService *savings.Service, cfg *config.Config) *Service {
	return &Service{
		Savings:  savingsService,
		Currency: cfg.Money.Currency,
	}
}

// Pay settles a bill from savings. Bills unlock only once the saving period
// is over and automatic deduction has been switched off.
func (s *Service) Pay(ctx context.Context, request PayRequest) (*Receipt, error) {
	if !s.Savings.Settings.Get().CanPayBills() {
		return nil, appErrors.ErrSavingPeriodActive
	}
	if !s.Savings.Registry.TotalSavings().IsPositive() {
		return nil, appErrors.ErrNoSavings
	}

	biller, err := FindBiller(request.BillerID)
	if err != nil {
		return nil, err
	}

	if !request.Amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "please enter a valid amount to pay")
	}
	if err := pkg.Validator().Struct(request); err != nil {
		return nil, appErrors.ParseValidationErrors(err)
	}

	result, err := s.Savings.Withdraw(ctx, savings.WithdrawRequest{
		Source:      request.Source,
		Amount:      request.Amount,
		Category:    transaction.CategoryBill,
		Description: fmt.Sprintf("%s (%s %s)", biller.Name, request.ReferenceType.Label(), request.ReferenceValue),
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("biller", biller.Id).
		Str("reference_type", string(request.ReferenceType)).
		Str("amount", request.Amount.String()).
		Str("source", request.Source.String()).
		Msg("bill paid")

	return &Receipt{
		Biller:         biller,
		ReferenceType:  request.ReferenceType,
		ReferenceValue: request.ReferenceValue,
		Amount:         request.Amount,
		Source:         request.Source,
		Goals:          result.Goals,
		Transaction:    result.Transaction,
		Message:        fmt.Sprintf("You have paid %s to %s.", pkg.FormatMoney(s.Currency, request.Amount), biller.Name),
	}, nil
}
