package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdtools/internal/docx"
)

var docxCmd = &cobra.Command{
	Use:   "docx",
	Short: "Convert a markdown file to docx with pandoc",
	Long: `Docx runs pandoc to turn the input markdown into a Word document styled
after the reference template. The template must exist; without it the
command prints a warning and does not convert.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		template, _ := cmd.Flags().GetString("template")

		conv := docx.NewPandocConverter(cfg.Docx.Binary)
		if !conv.Available() {
			fmt.Fprintf(os.Stderr, "warning: %s not found on PATH\n", conv.Name())
		}
		return emit(cmd, docx.ConvertWithDefaults(cmd.Context(), conv, cfg.Docx, input, output, template))
	},
}

func init() {
	docxCmd.Flags().String("input", "", "markdown input (default docx.input_file, result.md)")
	docxCmd.Flags().String("output", "", "docx output (default docx.output_file, result.docx)")
	docxCmd.Flags().String("template", "", "reference document for styling (default docx.template_file, template.docx)")

	rootCmd.AddCommand(docxCmd)
}
