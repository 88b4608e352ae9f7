// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect gathers the text of every source file under a directory
// whose name carries a given suffix.
package collect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/mdtools/pkg/types"
)

// ErrRootNotFound is returned by Scan when the root directory is absent.
var ErrRootNotFound = errors.New("root directory does not exist")

// errorKey is the single key of the result map when the root is missing.
const errorKey = "error"

// Scan walks root recursively and reads every file whose name ends in
// suffix. A file that cannot be read or is not valid UTF-8 yields an entry
// with Err set; the walk continues. Progress lines are written to w, which
// may be nil.
func Scan(root, suffix string, w io.Writer) ([]types.ScannedFile, error) {
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, fmt.Errorf("checking %s: %w", root, err)
	}
	if w == nil {
		w = io.Discard
	}

	paths, err := matchingFiles(root, suffix)
	if err != nil {
		return nil, err
	}

	files := make([]types.ScannedFile, 0, len(paths))
	for i, p := range paths {
		fmt.Fprintf(w, "Reading file (%d/%d): %s\n", i+1, len(paths), p)

		content, err := readText(p)
		if err != nil {
			files = append(files, types.ScannedFile{Path: p, Err: err.Error()})
			continue
		}
		files = append(files, types.ScannedFile{Path: p, Content: content})
	}
	return files, nil
}

// Collect scans cfg.Root and returns a map from file path to content. When
// the root does not exist the map holds a single "error" entry naming it.
// Files that could not be read map to an "Error reading file: ..." string.
func Collect(cfg types.CollectorConfig, w io.Writer) map[string]string {
	files, err := Scan(cfg.Root, cfg.Suffix, w)
	if err != nil {
		if errors.Is(err, ErrRootNotFound) {
			return map[string]string{errorKey: fmt.Sprintf("Path %s does not exist", cfg.Root)}
		}
		return map[string]string{errorKey: err.Error()}
	}

	out := make(map[string]string, len(files))
	for _, f := range files {
		if f.Err != "" {
			out[f.Path] = "Error reading file: " + f.Err
			continue
		}
		out[f.Path] = f.Content
	}
	return out
}

// matchingFiles lists the regular files under root ending in suffix, in
// walk order. Directories that cannot be read are skipped.
func matchingFiles(root, suffix string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), suffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return paths, nil
}

// readText reads a file and rejects content that is not valid UTF-8.
// CRLF and lone CR line endings are normalized to LF.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("decoding %s: invalid UTF-8", path)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n"), nil
}
