// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdtools CLI.
// Each subcommand runs one authoring tool once and prints its result.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdtools/internal/config"
	"github.com/pdiddy/mdtools/internal/secrets"
	"github.com/pdiddy/mdtools/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds one file per credential.
const secretsDir = ".secrets/"

// cfg is resolved once in PersistentPreRunE and read by every subcommand.
var cfg types.Config

// rootCmd is the base command for the mdtools CLI.
var rootCmd = &cobra.Command{
	Use:   "mdtools",
	Short: "Authoring tools for collecting sources and producing markdown and docx",
	Long: `mdtools bundles a handful of standalone authoring tools: collect source
files from a directory, save generated text as markdown, convert a PDF to
markdown through a remote service, and turn markdown into a styled docx with
pandoc.

Settings come from mdtools.yaml (working directory or ~/.config/mdtools/),
MDTOOLS_* environment variables and per-command flags. The conversion
service token is read from .secrets/convert-auth-token.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := secrets.Load(secretsDir, os.Stderr)
		if err != nil {
			return err
		}
		if len(loaded) > 0 {
			keys := make([]string, 0, len(loaded))
			for k := range loaded {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}

		cfgFile, _ := cmd.Flags().GetString("config")
		v, err := config.New(cfgFile)
		if err != nil {
			return err
		}
		if used := v.ConfigFileUsed(); used != "" {
			fmt.Fprintln(os.Stderr, "Using config file:", used)
		}

		c, err := config.Load(v)
		if err != nil {
			return err
		}
		c.Remote.AuthToken = secrets.Default(loaded, secrets.KeyConvertAuthToken, c.Remote.AuthToken)
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mdtools.yaml or ~/.config/mdtools/mdtools.yaml)")
	rootCmd.PersistentFlags().String("format", "json", "output format for structured results: json or yaml")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
