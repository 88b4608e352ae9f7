package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Config prints the settings every tool will run with after defaults, the
config file and MDTOOLS_* environment variables are applied. The auth token
is masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		if c.Remote.AuthToken != "" {
			c.Remote.AuthToken = "********"
		}
		return emit(cmd, c)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
