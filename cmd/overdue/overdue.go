// Package overdue prints the per-party overdue balances.
package overdue

import (
	"fmt"

	"fjacquet/fattura-desk/cmd/common"
	"fjacquet/fattura-desk/cmd/root"
	"fjacquet/fattura-desk/internal/currencyutils"
	"fjacquet/fattura-desk/internal/export"
	"fjacquet/fattura-desk/internal/ledger"

	"github.com/spf13/cobra"
)

var fornitori bool

// Cmd represents the overdue command
var Cmd = &cobra.Command{
	Use:   "overdue",
	Short: "Print parties with overdue schedules",
	Long: `Print every party with at least one schedule past its due date and a
net-of-payments remainder above the reporting threshold. Clients by
default, suppliers with --fornitori; --output writes the rows to CSV.`,
	Run: overdueFunc,
}

func init() {
	Cmd.Flags().BoolVar(&fornitori, "fornitori", false, "Report suppliers instead of clients")
}

func overdueFunc(cmd *cobra.Command, args []string) {
	env := common.Open()
	defer env.Close()

	kind := ledger.Clienti
	if fornitori {
		kind = ledger.Fornitori
	}

	rows, err := env.Ledger.Overdue(kind)
	if err != nil {
		root.Log.Fatalf("Error reading overdue balances: %v", err)
	}

	if len(rows) == 0 {
		fmt.Println("Nessuno scaduto.")
		return
	}

	fmt.Printf("%-10s %-30s %8s %15s %15s %15s\n",
		"Codice", "Soggetto", "Scadenze", "Totale", "Pagato", "Saldo")
	for _, r := range rows {
		fmt.Printf("%-10s %-30.30s %8d %15s %15s %15s\n",
			r.Codice, r.RagioneSociale, r.NumeroScadenzeScadute,
			currencyutils.FormatAmount(r.TotaleScadenze),
			currencyutils.FormatAmount(r.TotalePagato),
			currencyutils.FormatAmount(r.SaldoScaduto))
	}

	if root.Output != "" {
		if err := export.WriteCSV(rows, root.Output); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
	}
}
