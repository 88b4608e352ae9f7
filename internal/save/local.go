// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package save

import (
	"github.com/pdiddy/mdtools/pkg/types"
)

// LocalWriter saves content verbatim to one fixed file, optionally preceded
// by an HTML comment carrying the prompt. It writes no metadata block.
type LocalWriter struct {
	path string
}

// NewLocalWriter returns a writer for cfg.Path.
func NewLocalWriter(cfg types.LocalSaveConfig) *LocalWriter {
	return &LocalWriter{path: cfg.Path}
}

// Save overwrites the configured file with content.
func (l *LocalWriter) Save(content, prompt string) types.SaveResult {
	var data []byte
	if prompt != "" {
		data = append(data, "<!-- prompt: "+prompt+" -->\n\n"...)
	}
	data = append(data, content...)
	return writeResult(l.path, data)
}
