// Package validate runs the invoice checks over one FatturaPA file.
package validate

import (
	"fmt"

	"fjacquet/fattura-desk/cmd/common"
	"fjacquet/fattura-desk/cmd/root"
	"fjacquet/fattura-desk/internal/checks"
	"fjacquet/fattura-desk/internal/validator"

	"github.com/spf13/cobra"
)

var (
	selectedChecks []string
	reportFile     string
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate <fattura.xml>",
	Short: "Run the invoice checks over one XML file",
	Long: `Parse one FatturaPA XML file and run the registered checks against it
and the store. Findings are printed per check; --report writes them to a
YAML file.`,
	Args: cobra.ExactArgs(1),
	Run:  validateFunc,
}

func init() {
	Cmd.Flags().StringSliceVar(&selectedChecks, "checks", nil,
		"Comma-separated check names to run (default: all)")
	Cmd.Flags().StringVar(&reportFile, "report", "", "Write a YAML report to this file")
}

func validateFunc(cmd *cobra.Command, args []string) {
	env := common.Open()
	defer env.Close()

	pipeline := validator.New(checks.NewRegistry(), env.Store)

	results, err := pipeline.Validate(args[0], selectedChecks)
	if err != nil {
		root.Log.Fatalf("Error validating %s: %v", args[0], err)
	}

	passed := true
	for _, r := range results {
		if r.Passed() {
			root.Log.Infof("Check %q: ok", r.Name)
			continue
		}
		passed = false
		for _, f := range r.Findings {
			root.Log.Warnf("Check %q: %s", r.Name, f.Message)
			for key, value := range f.Details {
				root.Log.Warnf("  %s: %s", key, value)
			}
		}
	}

	if reportFile != "" {
		report := validator.NewReport(args[0], results)
		if err := report.WriteYAML(reportFile); err != nil {
			root.Log.Fatalf("Error writing report: %v", err)
		}
	}

	if passed {
		fmt.Println("Fattura conforme: nessun rilievo.")
	} else {
		fmt.Println("Fattura con rilievi: vedere i dettagli sopra.")
	}
}
