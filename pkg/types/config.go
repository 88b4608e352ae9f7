// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"time"
)

// HTTPConfig holds HTTP settings for the remote conversion client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "mdtools/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CollectorConfig holds settings for the source file collector.
type CollectorConfig struct {
	// Root is the directory scanned recursively.
	Root string `json:"root" yaml:"root" mapstructure:"root"`

	// Suffix filters file names (e.g. ".cpp").
	Suffix string `json:"suffix" yaml:"suffix" mapstructure:"suffix"`
}

// WriterConfig holds settings for the markdown writer.
type WriterConfig struct {
	// OutputDir is the directory saved markdown files are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// FilenamePrefix prefixes generated file names (default "llm-output").
	FilenamePrefix string `json:"filename_prefix" yaml:"filename_prefix" mapstructure:"filename_prefix"`

	// User is recorded in the metadata block. Resolved once at startup from
	// the environment when left empty.
	User string `json:"user" yaml:"user" mapstructure:"user"`
}

// RemoteConfig holds settings for the remote PDF conversion client.
type RemoteConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// URL is the conversion endpoint that receives the multipart upload.
	URL string `json:"url" yaml:"url" mapstructure:"url"`

	// AuthToken is sent as the "auth" cookie. Usually loaded from
	// .secrets/convert-auth-token rather than the config file.
	AuthToken string `json:"auth_token,omitempty" yaml:"auth_token,omitempty" mapstructure:"auth_token"`

	// WorkDir is the directory holding InputFile and receiving OutputFile.
	WorkDir string `json:"work_dir" yaml:"work_dir" mapstructure:"work_dir"`

	// InputFile is the PDF uploaded for conversion (default "input.pdf").
	InputFile string `json:"input_file" yaml:"input_file" mapstructure:"input_file"`

	// OutputFile receives the converted markdown (default "output.md").
	OutputFile string `json:"output_file" yaml:"output_file" mapstructure:"output_file"`
}

// LocalSaveConfig holds settings for the local save tool.
type LocalSaveConfig struct {
	// Path is the file written by every save (default "result.md").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// DocxConfig holds settings for markdown-to-docx conversion.
type DocxConfig struct {
	// Binary is the external converter executable (default "pandoc").
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`

	// InputFile is the default markdown input (default "result.md").
	InputFile string `json:"input_file" yaml:"input_file" mapstructure:"input_file"`

	// OutputFile is the default document output (default "result.docx").
	OutputFile string `json:"output_file" yaml:"output_file" mapstructure:"output_file"`

	// TemplateFile is the reference document used for styling
	// (default "template.docx").
	TemplateFile string `json:"template_file" yaml:"template_file" mapstructure:"template_file"`
}

// Config groups the settings of every tool. It is resolved once at process
// start and handed to each tool constructor.
type Config struct {
	Collector CollectorConfig `json:"collector" yaml:"collector" mapstructure:"collector"`
	Writer    WriterConfig    `json:"writer" yaml:"writer" mapstructure:"writer"`
	Remote    RemoteConfig    `json:"remote" yaml:"remote" mapstructure:"remote"`
	LocalSave LocalSaveConfig `json:"local_save" yaml:"local_save" mapstructure:"local_save"`
	Docx      DocxConfig      `json:"docx" yaml:"docx" mapstructure:"docx"`
}

// Validate reports every missing required setting in one error.
// The remote URL and auth token are not required here; the client reports
// them when convert-pdf actually runs.
func (c Config) Validate() error {
	var errs []error
	required := []struct {
		name, value string
	}{
		{"collector.root", c.Collector.Root},
		{"collector.suffix", c.Collector.Suffix},
		{"writer.output_dir", c.Writer.OutputDir},
		{"writer.filename_prefix", c.Writer.FilenamePrefix},
		{"writer.user", c.Writer.User},
		{"remote.input_file", c.Remote.InputFile},
		{"remote.output_file", c.Remote.OutputFile},
		{"local_save.path", c.LocalSave.Path},
		{"docx.binary", c.Docx.Binary},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", r.name))
		}
	}
	if c.Remote.Timeout < 0 {
		errs = append(errs, fmt.Errorf("remote.timeout must not be negative"))
	}
	return errors.Join(errs...)
}
