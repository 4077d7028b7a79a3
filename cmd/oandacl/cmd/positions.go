package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/oandacl/config"
	"github.com/rustyeddy/oandacl/oanda"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Position operations",
}

var positionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all positions for the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.ListPositions(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var positionsOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "List open positions for the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.ListOpenPositions(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var positionsGetCmd = &cobra.Command{
	Use:   "get INSTRUMENT",
	Short: "Show the position for an instrument",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.GetPosition(cmd.Context(), id, args[0], nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var (
	positionsCloseLong  string
	positionsCloseShort string
)

var positionsCloseCmd = &cobra.Command{
	Use:   "close INSTRUMENT",
	Short: "Close (fully or partially) the position for an instrument",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}

			data := map[string]string{}
			if positionsCloseLong != "" {
				data["longUnits"] = positionsCloseLong
			}
			if positionsCloseShort != "" {
				data["shortUnits"] = positionsCloseShort
			}

			resp, err := c.ClosePosition(cmd.Context(), id, args[0], data)
			if err != nil {
				return err
			}
			return printResponse(resp)
		})
	},
}

func init() {
	rootCmd.AddCommand(positionsCmd)
	positionsCmd.AddCommand(
		positionsListCmd,
		positionsOpenCmd,
		positionsGetCmd,
		positionsCloseCmd,
	)

	positionsCloseCmd.Flags().StringVar(&positionsCloseLong, "long-units", "ALL", "long units to close (number, ALL or NONE)")
	positionsCloseCmd.Flags().StringVar(&positionsCloseShort, "short-units", "", "short units to close (number, ALL or NONE)")
}
