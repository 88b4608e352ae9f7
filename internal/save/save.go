// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package save writes generated text to markdown files and reports the
// outcome as a types.SaveResult. Failures never escape as errors; they are
// folded into the result.
package save

import (
	"fmt"
	"os"

	"github.com/pdiddy/mdtools/pkg/types"
)

// writeResult writes data to path and builds the descriptor for it.
func writeResult(path string, data []byte) types.SaveResult {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return failure(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return failure(err)
	}
	return types.SaveResult{
		Success:  true,
		FilePath: path,
		FileSize: info.Size(),
		Message:  fmt.Sprintf("Content successfully saved to %s", path),
	}
}

func failure(err error) types.SaveResult {
	return types.SaveResult{
		Success: false,
		Error:   err.Error(),
		Message: fmt.Sprintf("Failed to save content: %v", err),
	}
}
