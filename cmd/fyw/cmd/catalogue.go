package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"FutureYako/internal/domain/bill"
	"FutureYako/internal/domain/investment"
	"FutureYako/internal/pkg"

	"github.com/spf13/cobra"
)

func BillersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "billers [query]",
		Short: "List the billers bills can be paid to",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			billers := bill.Search(strings.Join(args, " "))
			if len(billers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No billers found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
			for _, b := range billers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.Id, b.Name, b.Category)
			}
			return w.Flush()
		},
	}
}

func AssetsCmd() *cobra.Command {
	var assetType string

	command := &cobra.Command{
		Use:   "assets",
		Short: "List the DSE investment options",
		RunE: func(cmd *cobra.Command, args []string) error {
			assets := investment.Assets()
			if assetType != "" {
				assets = investment.AssetsByType(investment.Types(strings.ToLower(assetType)))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tPRICE")
			for _, a := range assets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Id, a.Name, a.Type, pkg.FormatMoney("TZS", a.Price))
			}
			return w.Flush()
		},
	}

	command.Flags().StringVar(&assetType, "type", "", "filter by type: stock, utt or bond")

	return command
}
