package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/oandacl/config"
	"github.com/rustyeddy/oandacl/journal"
	"github.com/rustyeddy/oandacl/oanda"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Inspect the local API call journal",
}

var (
	journalListFrom string
	journalListTo   string
)

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journaled API calls in a time window",
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := openJournal()
		if err != nil {
			return err
		}
		defer j.Close()

		start := time.Time{}
		end := time.Now().UTC().Add(time.Hour)
		if journalListFrom != "" {
			if start, err = time.Parse(time.RFC3339, journalListFrom); err != nil {
				return fmt.Errorf("parse --from: %w", err)
			}
		}
		if journalListTo != "" {
			if end, err = time.Parse(time.RFC3339, journalListTo); err != nil {
				return fmt.Errorf("parse --to: %w", err)
			}
		}

		recs, err := j.ListCallsBetween(start, end)
		if err != nil {
			return err
		}
		printCalls(recs)
		return nil
	},
}

var journalFailedLimit int

var journalFailedCmd = &cobra.Command{
	Use:   "failed",
	Short: "List recent failed API calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := openJournal()
		if err != nil {
			return err
		}
		defer j.Close()

		recs, err := j.ListFailedCalls(journalFailedLimit)
		if err != nil {
			return err
		}
		printCalls(recs)
		return nil
	},
}

// openJournal resolves the journal path without requiring an API token, so
// the journal stays inspectable offline.
func openJournal() (*journal.SQLite, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}
	if cfg.Journal.DBPath == "" {
		return nil, fmt.Errorf("no journal db_path configured")
	}
	return journal.NewSQLite(cfg.Journal.DBPath)
}

func printCalls(recs []oanda.CallRecord) {
	fmt.Printf("%-26s %-25s %-6s %6s %8s  %s\n", "ID", "TIME", "METHOD", "STATUS", "MS", "URL")
	for _, r := range recs {
		fmt.Printf("%-26s %-25s %-6s %6d %8d  %s\n",
			r.ID, r.Time.Format(time.RFC3339), r.Method, r.Status, r.Duration.Milliseconds(), r.URL)
	}
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd, journalFailedCmd)

	journalListCmd.Flags().StringVar(&journalListFrom, "from", "", "window start (RFC 3339, default beginning of time)")
	journalListCmd.Flags().StringVar(&journalListTo, "to", "", "window end (RFC 3339, default now)")
	journalFailedCmd.Flags().IntVar(&journalFailedLimit, "limit", 20, "maximum rows to show")
}
