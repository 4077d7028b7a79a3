package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/oandacl/config"
	"github.com/rustyeddy/oandacl/oanda"
)

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "Trade operations",
}

var tradesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades for the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.ListTrades(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var tradesOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "List open trades for the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.ListOpenTrades(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var tradesGetCmd = &cobra.Command{
	Use:   "get SPECIFIER",
	Short: "Show a single trade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.GetTrade(cmd.Context(), id, args[0], nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var tradesCloseUnits string

var tradesCloseCmd = &cobra.Command{
	Use:   "close SPECIFIER",
	Short: "Close (fully or partially) an open trade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			resp, err := c.CloseTrade(cmd.Context(), id, args[0], map[string]string{"units": tradesCloseUnits})
			if err != nil {
				return err
			}
			return printResponse(resp)
		})
	},
}

func init() {
	rootCmd.AddCommand(tradesCmd)
	tradesCmd.AddCommand(
		tradesListCmd,
		tradesOpenCmd,
		tradesGetCmd,
		tradesCloseCmd,
	)

	tradesCloseCmd.Flags().StringVar(&tradesCloseUnits, "units", "ALL", "units to close (number or ALL)")
}
