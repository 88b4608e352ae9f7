package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdtools/internal/collect"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Read every source file under the configured directory",
	Long: `Collect walks the configured root recursively and prints a map from file
path to file content for every file ending in the configured suffix
(".cpp" by default). Files that cannot be read map to an error message;
a missing root yields a single "error" entry. Progress goes to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg.Collector
		if root, _ := cmd.Flags().GetString("root"); root != "" {
			c.Root = root
		}
		if suffix, _ := cmd.Flags().GetString("suffix"); suffix != "" {
			c.Suffix = suffix
		}
		return emit(cmd, collect.Collect(c, os.Stderr))
	},
}

func init() {
	collectCmd.Flags().String("root", "", "directory to scan (overrides collector.root)")
	collectCmd.Flags().String("suffix", "", "file name suffix to match (overrides collector.suffix)")

	rootCmd.AddCommand(collectCmd)
}
