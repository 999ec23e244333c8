package cmd

import (
	"fmt"

	appErrors "FutureYako/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func DepositCmd() *cobra.Command {
	var amount string
	var auto bool

	command := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit into a fresh session and show how it is distributed",
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return appErrors.NewValidationError("amount", fmt.Sprintf("invalid amount %q", amount))
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			if auto {
				_, err = a.Savings.SimulateDeposit(cmd.Context(), value)
			} else {
				_, err = a.Savings.Deposit(cmd.Context(), value)
			}
			if err != nil {
				return err
			}

			summary, err := a.Dashboard.Summary(cmd.Context())
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), a.Config.Money.Currency, summary)
			return nil
		},
	}

	command.Flags().StringVar(&amount, "amount", "", "amount to deposit")
	command.Flags().BoolVar(&auto, "auto", false, "treat the amount as incoming money and apply the automatic deduction")
	_ = command.MarkFlagRequired("amount")

	return command
}
