package seedsweep

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seedsweep/seedsweep/internal/audit"
	"github.com/seedsweep/seedsweep/internal/cache"
)

var flagHistoryLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scans from the audit log",
		RunE:  runHistory,
	}
	cmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "number of records to show")
	rootCmd.AddCommand(cmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	records, err := audit.New(cache.DefaultStateDir()).History()
	if err != nil {
		return fmt.Errorf("no scan history: %w", err)
	}
	if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
		records = records[:flagHistoryLimit]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	for _, r := range records {
		fmt.Printf("%s  findings=%d  scanned=%d  skipped=%d  duration=%s  roots=%v\n",
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.TotalFindings, r.FilesScanned, r.FilesSkipped, r.Duration, r.Roots)
	}
	return nil
}
