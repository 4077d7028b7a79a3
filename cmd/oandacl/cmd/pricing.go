package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/oandacl/config"
	"github.com/rustyeddy/oandacl/oanda"
)

var pricingInstruments []string

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Show current pricing for instruments",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			params := map[string]string{
				"instruments": strings.Join(pricingInstruments, ","),
			}
			out, err := c.GetPricing(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var pricingStreamMax int

// errStreamDone stops the stream once --max prices were printed.
var errStreamDone = errors.New("stream done")

var pricingStreamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Stream live prices until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}

			seen := 0
			err = c.StreamPricing(cmd.Context(), id, pricingInstruments, func(p oanda.StreamPrice) error {
				bid, ask := "-", "-"
				if len(p.Bids) > 0 {
					bid = p.Bids[0].Price
				}
				if len(p.Asks) > 0 {
					ask = p.Asks[0].Price
				}
				fmt.Printf("%s  %s  bid=%s ask=%s\n", p.Time, p.Instrument, bid, ask)

				seen++
				if pricingStreamMax > 0 && seen >= pricingStreamMax {
					return errStreamDone
				}
				return nil
			})
			if errors.Is(err, errStreamDone) {
				return nil
			}
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(pricingCmd)
	pricingCmd.AddCommand(pricingStreamCmd)

	pricingCmd.PersistentFlags().StringSliceVarP(&pricingInstruments, "instruments", "i", []string{"EUR_USD"}, "instruments to price")
	pricingStreamCmd.Flags().IntVar(&pricingStreamMax, "max", 0, "stop after this many prices (0 = run forever)")
}
