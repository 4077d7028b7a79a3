package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/oandacl/config"
	"github.com/rustyeddy/oandacl/oanda"
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "Transaction history operations",
}

var transactionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transaction history pages for the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.ListTransactions(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var transactionsGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a single transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.GetTransaction(cmd.Context(), id, args[0], nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var (
	transactionsFrom string
	transactionsTo   string
)

var transactionsRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "List transactions between two ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			params := map[string]string{
				"from": transactionsFrom,
				"to":   transactionsTo,
			}
			out, err := c.GetTransactionRange(cmd.Context(), id, params)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var transactionsSinceID string

var transactionsSinceCmd = &cobra.Command{
	Use:   "since",
	Short: "List transactions after a given id",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.GetTransactionsSince(cmd.Context(), id, map[string]string{"id": transactionsSinceID})
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
	transactionsCmd.AddCommand(
		transactionsListCmd,
		transactionsGetCmd,
		transactionsRangeCmd,
		transactionsSinceCmd,
	)

	transactionsRangeCmd.Flags().StringVar(&transactionsFrom, "from", "", "first transaction id (required)")
	transactionsRangeCmd.Flags().StringVar(&transactionsTo, "to", "", "last transaction id (required)")
	transactionsRangeCmd.MarkFlagRequired("from")
	transactionsRangeCmd.MarkFlagRequired("to")

	transactionsSinceCmd.Flags().StringVar(&transactionsSinceID, "id", "", "transaction id to list from (required)")
	transactionsSinceCmd.MarkFlagRequired("id")
}
