// Package report recomputes and prints the monthly report.
package report

import (
	"fmt"

	"fjacquet/fattura-desk/cmd/common"
	"fjacquet/fattura-desk/cmd/root"
	"fjacquet/fattura-desk/internal/currencyutils"
	"fjacquet/fattura-desk/internal/export"

	"github.com/spf13/cobra"
)

var months int

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Rebuild and print the monthly purchase/sale totals",
	Long: `Recompute the report_mensile table from the registered documents and
print the most recent months. --output writes the rows to a CSV file.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().IntVar(&months, "months", 5, "How many months to print (0 = all)")
}

func reportFunc(cmd *cobra.Command, args []string) {
	env := common.Open()
	defer env.Close()

	if err := env.Ledger.RebuildMonthlyReport(); err != nil {
		root.Log.Fatalf("Error rebuilding monthly report: %v", err)
	}

	rows, err := env.Ledger.LastMonthsAscending(months)
	if err != nil {
		root.Log.Fatalf("Error reading monthly report: %v", err)
	}

	if len(rows) == 0 {
		fmt.Println("Nessun documento registrato.")
		return
	}

	fmt.Printf("%-8s %15s %15s\n", "Mese", "Acquisti", "Vendite")
	for _, r := range rows {
		fmt.Printf("%-8s %15s %15s\n", r.Mese,
			currencyutils.FormatAmount(r.TotaleAcquisti),
			currencyutils.FormatAmount(r.TotaleVendite))
	}

	if root.Output != "" {
		if err := export.WriteCSV(rows, root.Output); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
	}
}
