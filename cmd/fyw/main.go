package main

import (
	"os"

	"FutureYako/cmd/fyw/cmd"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "fyw",
		Short:         "Future Yako savings simulator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(cmd.SimulateCmd())
	rootCmd.AddCommand(cmd.DepositCmd())
	rootCmd.AddCommand(cmd.BillersCmd())
	rootCmd.AddCommand(cmd.AssetsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
