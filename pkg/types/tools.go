// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ScannedFile is one entry produced by the source file collector.
type ScannedFile struct {
	// Path is the file path as found during the walk.
	Path string `json:"path" yaml:"path"`

	// Content is the decoded file text. Empty when Err is set.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// Err describes why the file could not be read.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

// MarkdownDocument is a saved markdown file: a metadata block followed by
// the body.
type MarkdownDocument struct {
	Created time.Time `json:"created" yaml:"created"`
	User    string    `json:"user" yaml:"user"`
	Prompt  string    `json:"prompt,omitempty" yaml:"prompt,omitempty"`
	Body    string    `json:"body" yaml:"body"`
}

// Fragment is one named markdown result returned by the conversion service.
type Fragment struct {
	Name     string `json:"name" yaml:"name"`
	Markdown string `json:"markdown" yaml:"markdown"`
}

// ConversionResult is the JSON body returned by the conversion service.
// Markdowns is nil when the field is absent from the response.
type ConversionResult struct {
	Markdowns []Fragment `json:"markdowns" yaml:"markdowns"`
}

// ProcessOutcome records one run of the external document converter.
type ProcessOutcome struct {
	ExitStatus   int    `json:"exit_status" yaml:"exit_status"`
	Stderr       string `json:"stderr" yaml:"stderr"`
	OutputExists bool   `json:"output_exists" yaml:"output_exists"`
}

// SaveResult is the descriptor returned by the save tools. On failure
// Success is false and Error carries the underlying message.
type SaveResult struct {
	Success  bool   `json:"success" yaml:"success"`
	FilePath string `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	FileSize int64  `json:"file_size,omitempty" yaml:"file_size,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Message  string `json:"message" yaml:"message"`
}
