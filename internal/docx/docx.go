// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx turns a markdown file into a styled word-processor document
// by delegating to an external converter.
package docx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pdiddy/mdtools/pkg/types"
)

// DocumentConverter runs one conversion of input to output, styled after
// template when it is non-empty.
type DocumentConverter interface {
	Convert(ctx context.Context, input, output, template string) (types.ProcessOutcome, error)
}

// Convert checks the input and template, runs conv and describes the
// outcome. A missing template stops before conversion with a warning; the
// converter is only invoked when both files exist.
func Convert(ctx context.Context, conv DocumentConverter, input, output, template string) string {
	if !exists(input) {
		return fmt.Sprintf("Error: input file '%s' does not exist", input)
	}
	if !exists(template) {
		return fmt.Sprintf("Warning: template file '%s' does not exist, default styling would be used", template)
	}

	outcome, err := conv.Convert(ctx, input, output, template)
	if err != nil {
		return fmt.Sprintf("Error during execution: %v", err)
	}

	switch {
	case outcome.ExitStatus != 0:
		return fmt.Sprintf("Command failed: %s", outcome.Stderr)
	case !outcome.OutputExists:
		return fmt.Sprintf("Command succeeded, but output file %s was not found", output)
	default:
		return fmt.Sprintf("Converted %s to %s", input, output)
	}
}

// ConvertWithDefaults fills empty paths from cfg before calling Convert.
func ConvertWithDefaults(ctx context.Context, conv DocumentConverter, cfg types.DocxConfig, input, output, template string) string {
	if input == "" {
		input = cfg.InputFile
	}
	if output == "" {
		output = cfg.OutputFile
	}
	if template == "" {
		template = cfg.TemplateFile
	}
	return Convert(ctx, conv, input, output, template)
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
