package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/oandacl/config"
	"github.com/rustyeddy/oandacl/oanda"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Order operations",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders for the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.ListOrders(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var ordersPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List pending orders for the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.ListPendingOrders(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var ordersGetCmd = &cobra.Command{
	Use:   "get SPECIFIER",
	Short: "Show a single order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.GetOrder(cmd.Context(), id, args[0], nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var ordersCreateData string

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit an order from inline JSON or @file",
	Long: `Submit a v20 order request.

Examples:
  oandacl orders create --data '{"order":{"type":"MARKET","instrument":"EUR_USD","units":"100"}}'
  oandacl orders create --data @order.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			data, err := readData(ordersCreateData)
			if err != nil {
				return err
			}
			resp, err := c.CreateOrder(cmd.Context(), id, data)
			if err != nil {
				return err
			}
			return printResponse(resp)
		})
	},
}

var ordersCancelCmd = &cobra.Command{
	Use:   "cancel SPECIFIER",
	Short: "Cancel a pending order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			resp, err := c.CancelPendingOrder(cmd.Context(), id, args[0], nil)
			if err != nil {
				return err
			}
			return printResponse(resp)
		})
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(
		ordersListCmd,
		ordersPendingCmd,
		ordersGetCmd,
		ordersCreateCmd,
		ordersCancelCmd,
	)

	ordersCreateCmd.Flags().StringVarP(&ordersCreateData, "data", "d", "", "order JSON (inline or @file, required)")
	ordersCreateCmd.MarkFlagRequired("data")
}
