package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/oandacl/config"
	"github.com/rustyeddy/oandacl/oanda"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Account operations",
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the accounts authorized for the current token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			out, err := c.ListAccounts(cmd.Context(), nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var accountsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the full details of the configured account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.GetAccount(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var accountsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the account summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.GetAccountSummary(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

var accountsInstrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "List the instruments tradeable by the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(cfg *config.Config, c *oanda.Client) error {
			id, err := accountID(cfg)
			if err != nil {
				return err
			}
			out, err := c.GetAccountInstruments(cmd.Context(), id, nil)
			if err != nil {
				return err
			}
			return printJSON(out)
		})
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
	accountsCmd.AddCommand(
		accountsListCmd,
		accountsGetCmd,
		accountsSummaryCmd,
		accountsInstrumentsCmd,
	)
}
