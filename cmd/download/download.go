// Package download drives the portal download pipelines.
package download

import (
	"fmt"
	"time"

	"fjacquet/fattura-desk/cmd/common"
	"fjacquet/fattura-desk/cmd/root"
	"fjacquet/fattura-desk/internal/downloader"
	"fjacquet/fattura-desk/internal/history"
	"fjacquet/fattura-desk/internal/importer"

	"github.com/spf13/cobra"
)

var (
	mese int
	anno int
	kind string
)

// Cmd represents the download command
var Cmd = &cobra.Command{
	Use:   "download",
	Short: "Download invoices from the portal",
	Long: `Run the quick download (last five days of received invoices) or, with
--mese and --anno, one calendar month of purchases or sales. Downloaded
files are ingested into the store and the quick run is recorded in the
history.`,
	Run: downloadFunc,
}

func init() {
	Cmd.Flags().IntVar(&mese, "mese", 0, "Month to download (1-12, monthly mode)")
	Cmd.Flags().IntVar(&anno, "anno", 0, "Year to download (monthly mode)")
	Cmd.Flags().StringVar(&kind, "tipo", string(downloader.Acquisti),
		"Monthly mode: acquisti or vendite")
}

func downloadFunc(cmd *cobra.Command, args []string) {
	env := common.Open()
	defer env.Close()

	o := downloader.New(env.Settings, downloader.DefaultHelpers(), nil)

	monthly := mese != 0 || anno != 0
	if monthly {
		if mese < 1 || mese > 12 || anno == 0 {
			root.Log.Fatal("Monthly download needs --mese 1-12 and --anno")
		}
		if err := o.RunMonthly(time.Month(mese), anno, downloader.Kind(kind)); err != nil {
			root.Log.Fatalf("Download failed: %v", err)
		}
	} else {
		if err := o.RunFast(); err != nil {
			root.Log.Fatalf("Download failed: %v", err)
		}
	}

	results, err := importer.New(env.Store).ImportDir(env.Settings.DepositDir())
	if err != nil {
		root.Log.Fatalf("Error ingesting downloaded invoices: %v", err)
	}

	summaries := importer.Summaries(results)
	fmt.Printf("Scaricate e registrate %d fatture.\n", len(summaries))

	if !monthly {
		if !history.New("").AddDownload(summaries) {
			root.Log.Warn("Could not record the download in the history")
		}
	}
}
