// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package save

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/mdtools/pkg/types"
)

const (
	mdExt = ".md"

	// metaDelimiter opens and closes the metadata block.
	metaDelimiter = "---"

	filenameStamp = "20060102-150405"
	createdStamp  = "2006-01-02 15:04:05"
)

// MarkdownWriter saves content under a fixed output directory with a
// metadata block recording when, by whom and from which prompt it was made.
type MarkdownWriter struct {
	cfg types.WriterConfig
	now func() time.Time
}

// NewMarkdownWriter returns a writer for cfg.OutputDir.
func NewMarkdownWriter(cfg types.WriterConfig) *MarkdownWriter {
	return &MarkdownWriter{cfg: cfg, now: time.Now}
}

// Save writes content to the output directory. When filename is empty a
// name of the form <prefix>-YYYYMMDD-HHMMSS.md is generated; a filename
// without the .md extension gets it appended. The output directory is
// created if needed.
func (m *MarkdownWriter) Save(content, prompt, filename string) types.SaveResult {
	now := m.now()

	if err := os.MkdirAll(m.cfg.OutputDir, 0o755); err != nil {
		return failure(fmt.Errorf("creating %s: %w", m.cfg.OutputDir, err))
	}

	doc := types.MarkdownDocument{
		Created: now,
		User:    m.cfg.User,
		Prompt:  prompt,
		Body:    content,
	}
	path := filepath.Join(m.cfg.OutputDir, m.resolveName(filename, now))
	return writeResult(path, []byte(Render(doc)))
}

// resolveName applies the generated-name and extension rules.
func (m *MarkdownWriter) resolveName(filename string, now time.Time) string {
	if filename == "" {
		filename = fmt.Sprintf("%s-%s", m.cfg.FilenamePrefix, now.Format(filenameStamp))
	}
	if !strings.HasSuffix(filename, mdExt) {
		filename += mdExt
	}
	return filename
}

// Render lays out doc as a metadata block, a blank line and the body.
// Prompt lines after the first are indented so the block stays a YAML
// literal scalar.
func Render(doc types.MarkdownDocument) string {
	lines := []string{
		metaDelimiter,
		"created: " + doc.Created.Format(createdStamp),
		"user: " + doc.User,
	}
	if doc.Prompt != "" {
		lines = append(lines, "prompt: |\n  "+strings.ReplaceAll(doc.Prompt, "\n", "\n  "))
	}
	lines = append(lines, metaDelimiter, "", doc.Body)
	return strings.Join(lines, "\n")
}
