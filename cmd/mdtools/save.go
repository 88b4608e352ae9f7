package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdtools/internal/save"
)

var saveCmd = &cobra.Command{
	Use:   "save [content...]",
	Short: "Save generated text as a markdown file with a metadata block",
	Long: `Save writes content to the configured output directory, preceded by a
metadata block recording the creation time, the user and, when given, the
prompt. Without --filename the file is named llm-output-YYYYMMDD-HHMMSS.md.
Content is taken from the arguments, or from stdin when there are none.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContent(os.Stdin, args)
		if err != nil {
			return err
		}
		prompt, _ := cmd.Flags().GetString("prompt")
		filename, _ := cmd.Flags().GetString("filename")

		w := save.NewMarkdownWriter(cfg.Writer)
		return emit(cmd, w.Save(content, prompt, filename))
	},
}

var saveLocalCmd = &cobra.Command{
	Use:   "save-local [content...]",
	Short: "Save generated text verbatim to result.md",
	Long: `Save-local overwrites the configured local file (result.md by default)
with content, optionally preceded by an HTML comment holding the prompt.
Content is taken from the arguments, or from stdin when there are none.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readContent(os.Stdin, args)
		if err != nil {
			return err
		}
		prompt, _ := cmd.Flags().GetString("prompt")

		l := save.NewLocalWriter(cfg.LocalSave)
		return emit(cmd, l.Save(content, prompt))
	},
}

func init() {
	saveCmd.Flags().String("prompt", "", "prompt that produced the content")
	saveCmd.Flags().String("filename", "", "file name inside the output directory (.md is appended when missing)")
	saveLocalCmd.Flags().String("prompt", "", "prompt that produced the content")

	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(saveLocalCmd)
}
