package cmd

import (
	"fmt"

	"FutureYako/internal/scenario"

	"github.com/spf13/cobra"
)

func SimulateCmd() *cobra.Command {
	var file string

	command := &cobra.Command{
		Use:   "simulate",
		Short: "Play a scenario file (YAML or JSON) and print the resulting dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(file)
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			report, err := a.Runner.Run(cmd.Context(), sc)
			if err != nil {
				return err
			}

			printReport(cmd.OutOrStdout(), a.Config.Money.Currency, report)
			if n := report.Failures(); n > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d step(s) failed\n", n)
			}
			return nil
		},
	}

	command.Flags().StringVarP(&file, "file", "f", "", "scenario file")
	_ = command.MarkFlagRequired("file")

	return command
}
