package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/mdtools/internal/httputil"
	"github.com/pdiddy/mdtools/internal/remote"
)

var convertPDFCmd = &cobra.Command{
	Use:   "convert-pdf",
	Short: "Convert input.pdf to markdown through the remote conversion service",
	Long: `Convert-pdf uploads input.pdf from the work directory to the configured
conversion endpoint and writes the returned markdown to output.md. When the
service returns several documents each overwrites output.md in turn; the
printed message contains all of them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg.Remote
		if url, _ := cmd.Flags().GetString("url"); url != "" {
			c.URL = url
		}
		if dir, _ := cmd.Flags().GetString("work-dir"); dir != "" {
			c.WorkDir = dir
		}

		client := remote.NewClient(httputil.NewClient(c.Timeout), c)
		return emit(cmd, client.ConvertPDF(cmd.Context()))
	},
}

func init() {
	convertPDFCmd.Flags().String("url", "", "conversion endpoint (overrides remote.url)")
	convertPDFCmd.Flags().String("work-dir", "", "directory holding input.pdf (overrides remote.work_dir)")

	rootCmd.AddCommand(convertPDFCmd)
}
