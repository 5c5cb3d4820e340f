// Package history prints and clears the quick-download history.
package history

import (
	"fmt"

	"fjacquet/fattura-desk/cmd/root"
	"fjacquet/fattura-desk/internal/history"

	"github.com/spf13/cobra"
)

var (
	limit int
	clear bool
)

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recent quick downloads",
	Long: `Print the most recent quick-download runs recorded in
download_history.json. --clear empties the history.`,
	Run: historyFunc,
}

func init() {
	Cmd.Flags().IntVar(&limit, "limit", 0, "How many entries to print (0 = all)")
	Cmd.Flags().BoolVar(&clear, "clear", false, "Empty the download history")
}

func historyFunc(cmd *cobra.Command, args []string) {
	ring := history.New("")

	if clear {
		if !ring.Clear() {
			root.Log.Fatal("Error clearing download history")
		}
		fmt.Println("Storico svuotato.")
		return
	}

	entries := ring.RecentDownloads(limit)
	if len(entries) == 0 {
		fmt.Println("Nessun download registrato.")
		return
	}

	for _, e := range entries {
		fmt.Printf("%s %s (%d fatture)\n", e.Data, e.Ora, len(e.Fatture))
		for _, f := range e.Fatture {
			fmt.Printf("  %s - %s (%s)\n", f.Numero, f.Soggetto, f.Data)
		}
	}
}
