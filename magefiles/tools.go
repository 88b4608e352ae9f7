//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Docx converts result.md to result.docx through the built CLI.
func Docx() error {
	if err := Build(); err != nil {
		return err
	}
	out, err := sh.Output("bin/mdtools", "docx")
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// ConvertPDF sends input.pdf to the configured conversion service through
// the built CLI.
func ConvertPDF() error {
	if err := Build(); err != nil {
		return err
	}
	return sh.RunV("bin/mdtools", "convert-pdf")
}
