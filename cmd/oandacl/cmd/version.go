package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the oandacl CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("oandacl version %s\n", version)
		fmt.Println("A command line client for the OANDA v20 REST API")
		fmt.Println("https://github.com/rustyeddy/oandacl")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
