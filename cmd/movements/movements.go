// Package movements prints the unified dare/avere ledger.
package movements

import (
	"fmt"

	"fjacquet/fattura-desk/cmd/common"
	"fjacquet/fattura-desk/cmd/root"
	"fjacquet/fattura-desk/internal/currencyutils"
	"fjacquet/fattura-desk/internal/export"

	"github.com/spf13/cobra"
)

var soggettoID int64

// Cmd represents the movements command
var Cmd = &cobra.Command{
	Use:   "movements",
	Short: "Print the unified movement ledger",
	Long: `Print documents and settling payments as one dare/avere ledger,
oldest first. --soggetto restricts to one party and prints its balance;
--output writes the rows to a CSV file.`,
	Run: movementsFunc,
}

func init() {
	Cmd.Flags().Int64Var(&soggettoID, "soggetto", 0, "Restrict to one party id")
}

func movementsFunc(cmd *cobra.Command, args []string) {
	env := common.Open()
	defer env.Close()

	movements, err := env.Ledger.Movements(soggettoID)
	if err != nil {
		root.Log.Fatalf("Error reading movements: %v", err)
	}

	if len(movements) == 0 {
		fmt.Println("Nessun movimento registrato.")
		return
	}

	fmt.Printf("%-10s %-30s %-45s %12s %12s\n",
		"Data", "Soggetto", "Descrizione", "Dare", "Avere")
	for _, m := range movements {
		fmt.Printf("%-10s %-30.30s %-45.45s %12s %12s\n",
			m.DataMovimento, m.RagioneSociale, m.Descrizione,
			currencyutils.FormatAmount(m.Dare), currencyutils.FormatAmount(m.Avere))
	}

	if soggettoID > 0 {
		balance, err := env.Ledger.PartyBalance(soggettoID)
		if err != nil {
			root.Log.Fatalf("Error computing balance: %v", err)
		}
		fmt.Printf("\nSaldo: %s\n", currencyutils.FormatAmount(balance))
	}

	if root.Output != "" {
		if err := export.WriteCSV(movements, root.Output); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
	}
}
