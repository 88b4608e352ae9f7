// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/pdiddy/mdtools/pkg/types"
)

// DefaultBinary is the converter executable used when none is configured.
const DefaultBinary = "pandoc"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	// Run executes name with args and returns the captured standard error
	// and exit status. err is set only when the process could not be run.
	Run(ctx context.Context, name string, args []string) (stderr string, exitStatus int, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string) (string, int, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return stderr.String(), exitErr.ExitCode(), nil
	}
	if err != nil {
		return stderr.String(), -1, err
	}
	return stderr.String(), 0, nil
}

// PandocConverter implements DocumentConverter by running the pandoc
// command line: <bin> <input> -o <output> [--reference-doc=<template>].
// The binary is executed directly with an argument list, not through a
// shell, so paths are passed literally: no ~ expansion, globbing or
// variable substitution.
type PandocConverter struct {
	bin  string
	exec executor
}

var defaultExec = &osExecutor{}

// NewPandocConverter returns a converter running bin, or DefaultBinary when
// bin is empty. The binary is resolved on each run, so construction never
// fails.
func NewPandocConverter(bin string) *PandocConverter {
	return newPandocConverter(bin, defaultExec)
}

func newPandocConverter(bin string, exec executor) *PandocConverter {
	if bin == "" {
		bin = DefaultBinary
	}
	return &PandocConverter{bin: bin, exec: exec}
}

// Name returns the converter binary.
func (p *PandocConverter) Name() string { return p.bin }

// Available reports whether the converter binary is on PATH.
func (p *PandocConverter) Available() bool {
	_, err := p.exec.LookPath(p.bin)
	return err == nil
}

// Convert runs the converter synchronously. A nonzero exit status is not an
// error; it is reported in the outcome along with standard error.
func (p *PandocConverter) Convert(ctx context.Context, input, output, template string) (types.ProcessOutcome, error) {
	stderr, status, err := p.exec.Run(ctx, p.bin, Args(input, output, template))
	if err != nil {
		return types.ProcessOutcome{}, fmt.Errorf("running %s: %w", p.bin, err)
	}

	outcome := types.ProcessOutcome{ExitStatus: status, Stderr: stderr}
	if _, err := os.Stat(output); err == nil {
		outcome.OutputExists = true
	}
	return outcome, nil
}

// Args builds the converter argument list. The template flag is omitted
// when template is empty.
func Args(input, output, template string) []string {
	args := []string{input, "-o", output}
	if template != "" {
		args = append(args, "--reference-doc="+template)
	}
	return args
}
