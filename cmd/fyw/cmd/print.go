package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"FutureYako/internal/domain/dashboard"
	"FutureYako/internal/pkg"
	"FutureYako/internal/scenario"
)

func printReport(out io.Writer, currency string, report *scenario.Report) {
	if report.Name != "" {
		fmt.Fprintf(out, "Scenario: %s\n\n", report.Name)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tACTION\tRESULT")
	for _, step := range report.Steps {
		result := step.Message
		if step.Failed() {
			result = "FAILED: " + step.Err.Message
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", step.Index, step.Action, result)
	}
	_ = w.Flush()

	if report.Summary != nil {
		fmt.Fprintln(out)
		printSummary(out, currency, report.Summary)
	}
}

func printSummary(out io.Writer, currency string, summary *dashboard.Summary) {
	fmt.Fprintf(out, "Total savings:  %s\n", pkg.FormatMoney(currency, summary.TotalBalance))
	fmt.Fprintf(out, "Invested:       %s\n", pkg.FormatMoney(currency, summary.TotalInvested))
	if summary.CanPayBills {
		fmt.Fprintln(out, "Bill payments:  available")
	} else {
		fmt.Fprintln(out, "Bill payments:  locked until the saving period ends")
	}

	if len(summary.Goals) == 0 {
		return
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GOAL\tSAVED\tTARGET\tPROGRESS\tSTATUS")
	for _, g := range summary.Goals {
		target := "-"
		if g.TargetAmount.IsPositive() {
			target = pkg.FormatMoney(currency, g.TargetAmount)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t%s\n",
			g.Name,
			pkg.FormatMoney(currency, g.CurrentAmount),
			target,
			g.Percentage.Round(1).String(),
			g.Status,
		)
	}
	_ = w.Flush()
}
