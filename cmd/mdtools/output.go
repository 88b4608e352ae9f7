// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// printResult writes a tool result to w. Plain strings are printed as-is;
// anything else is encoded as JSON or YAML.
func printResult(w io.Writer, format string, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}

	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// emit prints v to stdout in the format chosen by --format.
func emit(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("format")
	return printResult(os.Stdout, format, v)
}

// readContent returns the positional arguments joined by spaces, or stdin
// when there are none or the only argument is "-".
func readContent(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading content from stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
