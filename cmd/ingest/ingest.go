// Package ingest registers already-downloaded invoice files.
package ingest

import (
	"fmt"

	"fjacquet/fattura-desk/cmd/common"
	"fjacquet/fattura-desk/cmd/root"
	"fjacquet/fattura-desk/internal/importer"

	"github.com/spf13/cobra"
)

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest [directory]",
	Short: "Register invoice XML files into the store",
	Long: `Scan a directory of FatturaPA XML files and register each invoice,
creating unknown counterparties on the fly and skipping documents that
are already stored. Without an argument the configured deposit
directory is used.`,
	Args: cobra.MaximumNArgs(1),
	Run:  ingestFunc,
}

func ingestFunc(cmd *cobra.Command, args []string) {
	env := common.Open()
	defer env.Close()

	dir := env.Settings.DepositDir()
	if len(args) == 1 {
		dir = args[0]
	}

	results, err := importer.New(env.Store).ImportDir(dir)
	if err != nil {
		root.Log.Fatalf("Error ingesting %s: %v", dir, err)
	}

	imported := 0
	for _, r := range results {
		if r.Imported {
			imported++
			continue
		}
		root.Log.Infof("Skipped %s: %s", r.File, r.Reason)
	}
	fmt.Printf("Registrate %d fatture su %d file.\n", imported, len(results))
}
