package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/oandacl/config"
	"github.com/rustyeddy/oandacl/oanda"
)

var (
	candlesGranularity string
	candlesPrice       string
	candlesCount       int
	candlesFrom        string
	candlesTo          string
	candlesCSV         bool
)

var candlesCmd = &cobra.Command{
	Use:   "candles INSTRUMENT",
	Short: "Fetch historical candles for an instrument",
	Long: `Fetch historical candles and print them as a table or CSV.

Examples:
  oandacl candles EUR_USD --granularity H1 --count 100
  oandacl candles EUR_USD --from 2024-01-01T00:00:00Z --to 2024-02-01T00:00:00Z --csv`,
	Args: cobra.ExactArgs(1),
	RunE: runCandles,
}

func init() {
	rootCmd.AddCommand(candlesCmd)

	candlesCmd.Flags().StringVarP(&candlesGranularity, "granularity", "g", "H1", "candle granularity (S5..M)")
	candlesCmd.Flags().StringVarP(&candlesPrice, "price", "p", "M", "price component (M, B or A)")
	candlesCmd.Flags().IntVarP(&candlesCount, "count", "n", 100, "number of candles (max 5000, ignored when --from is set)")
	candlesCmd.Flags().StringVar(&candlesFrom, "from", "", "start time (RFC 3339)")
	candlesCmd.Flags().StringVar(&candlesTo, "to", "", "end time (RFC 3339)")
	candlesCmd.Flags().BoolVar(&candlesCSV, "csv", false, "write CSV to stdout instead of a table")
}

func runCandles(cmd *cobra.Command, args []string) error {
	return withClient(func(cfg *config.Config, c *oanda.Client) error {
		req := oanda.CandlesRequest{
			Instrument:  args[0],
			Granularity: oanda.Granularity(candlesGranularity),
			Price:       oanda.PriceComponent(candlesPrice),
		}

		if candlesFrom != "" {
			from, err := time.Parse(time.RFC3339, candlesFrom)
			if err != nil {
				return fmt.Errorf("parse --from: %w", err)
			}
			req.From = &from
			if candlesTo != "" {
				to, err := time.Parse(time.RFC3339, candlesTo)
				if err != nil {
					return fmt.Errorf("parse --to: %w", err)
				}
				req.To = &to
			}
		} else {
			req.Count = candlesCount
		}

		candles, err := c.Candles(cmd.Context(), req)
		if err != nil {
			return err
		}

		if candlesCSV {
			return writeCandlesCSV(args[0], candles)
		}

		fmt.Printf("%-25s %10s %10s %10s %10s %8s\n", "TIME", "OPEN", "HIGH", "LOW", "CLOSE", "VOLUME")
		for _, cd := range candles {
			fmt.Printf("%-25s %10.5f %10.5f %10.5f %10.5f %8.0f\n",
				cd.Time.Format(time.RFC3339), cd.Open, cd.High, cd.Low, cd.Close, cd.Volume)
		}
		return nil
	})
}

// writeCandlesCSV emits the canonical candle CSV:
// time,instrument,o,h,l,c,volume
func writeCandlesCSV(instrument string, candles []oanda.Candle) error {
	cw := csv.NewWriter(os.Stdout)

	if err := cw.Write([]string{"time", "instrument", "o", "h", "l", "c", "volume"}); err != nil {
		return err
	}

	for _, cd := range candles {
		row := []string{
			cd.Time.Format(time.RFC3339),
			instrument,
			strconv.FormatFloat(cd.Open, 'f', -1, 64),
			strconv.FormatFloat(cd.High, 'f', -1, 64),
			strconv.FormatFloat(cd.Low, 'f', -1, 64),
			strconv.FormatFloat(cd.Close, 'f', -1, 64),
			strconv.FormatFloat(cd.Volume, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
