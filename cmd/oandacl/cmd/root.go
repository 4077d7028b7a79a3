package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/oandacl/config"
	"github.com/rustyeddy/oandacl/journal"
	"github.com/rustyeddy/oandacl/oanda"
)

var (
	cfgFile     string
	flagEnv     string
	flagToken   string
	flagAccount string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "oandacl",
	Short: "Command line client for the OANDA v20 REST API",
	Long: `oandacl wraps the OANDA v20 REST API: accounts, orders, trades,
positions, transactions, pricing and instrument candles.

Credentials come from a config file (--config), OANDA_* environment
variables, or flags; flags win. Practice accounts are the default
environment.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if flagDebug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "OANDA environment (practice|live)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "OANDA API token")
	rootCmd.PersistentFlags().StringVar(&flagAccount, "account", "", "OANDA account id")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log full HTTP requests and responses")
}

// loadConfig resolves configuration from file, environment and flags, with
// flags taking precedence.
func loadConfig() (*config.Config, error) {
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

	if flagEnv != "" {
		cfg.Environment = flagEnv
	}
	if flagToken != "" {
		cfg.APIKey = flagToken
	}
	if flagAccount != "" {
		cfg.AccountID = flagAccount
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newClient builds an oanda.Client from the resolved config. The returned
// cleanup closes the call journal if one was opened.
func newClient(cfg *config.Config) (*oanda.Client, func(), error) {
	env, err := oanda.ParseEnvironment(cfg.Environment)
	if err != nil {
		return nil, nil, err
	}

	var opts []oanda.Option
	if flagDebug {
		opts = append(opts, oanda.WithDebugLogging(true))
	}

	cleanup := func() {}
	if cfg.Journal.Enabled {
		j, err := journal.NewSQLite(cfg.Journal.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open call journal: %w", err)
		}
		opts = append(opts, oanda.WithJournal(j))
		cleanup = func() { _ = j.Close() }
	}

	return oanda.NewClient(env, cfg.APIKey, opts...), cleanup, nil
}

// accountID returns the account to operate on, failing if none is set.
func accountID(cfg *config.Config) (string, error) {
	if cfg.AccountID == "" {
		return "", fmt.Errorf("no account id (use --account or OANDA_ACCOUNT_ID)")
	}
	return cfg.AccountID, nil
}

// withClient runs fn with a configured client, closing the journal after.
func withClient(fn func(cfg *config.Config, c *oanda.Client) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, cleanup, err := newClient(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(cfg, c)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// printResponse prints the status and (pretty-printed when possible) body of
// a raw POST/PATCH response.
func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	fmt.Printf("HTTP %d\n", resp.StatusCode)
	var buf bytes.Buffer
	if json.Indent(&buf, b, "", "  ") == nil {
		fmt.Println(buf.String())
	} else {
		fmt.Println(string(b))
	}
	return nil
}

// readData parses inline JSON or, with a leading @, a JSON file.
func readData(arg string) (any, error) {
	if arg == "" {
		return nil, nil
	}

	raw := []byte(arg)
	if arg[0] == '@' {
		b, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("read data file: %w", err)
		}
		raw = b
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parse data JSON: %w", err)
	}
	return v, nil
}
