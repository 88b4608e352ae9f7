// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package remote uploads a local PDF to a conversion service and saves the
// markdown it returns.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mdtools/internal/httputil"
	"github.com/pdiddy/mdtools/pkg/types"
)

const (
	formField  = "files"
	pdfMIME    = "application/pdf"
	authCookie = "auth"
)

// Client talks to the conversion endpoint configured in types.RemoteConfig.
type Client struct {
	http *http.Client
	cfg  types.RemoteConfig
}

// NewClient returns a client using httpClient for the upload.
func NewClient(httpClient *http.Client, cfg types.RemoteConfig) *Client {
	return &Client{http: httpClient, cfg: cfg}
}

// ConvertPDF uploads the configured input PDF and writes the returned
// markdown to the output file. The result is always a message: errors are
// reported in the returned text, never as a Go error.
//
// Every fragment is written to the same output file in turn, so only the
// last fragment survives on disk. The message lists all of them.
func (c *Client) ConvertPDF(ctx context.Context) string {
	inputPath := filepath.Join(c.cfg.WorkDir, c.cfg.InputFile)
	if _, err := os.Stat(inputPath); errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf("Error: '%s' not found in the current directory. Make sure the file exists.", c.cfg.InputFile)
	}

	msg, err := c.convert(ctx, inputPath)
	if err != nil {
		return fmt.Sprintf("Error during conversion: %v", err)
	}
	return msg
}

// convert performs the upload. Service-level failures (bad status, bad
// shape) come back as messages; transport and file errors as err.
func (c *Client) convert(ctx context.Context, inputPath string) (string, error) {
	if c.cfg.URL == "" {
		return "", errors.New("conversion endpoint URL is not configured")
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer f.Close()

	body, contentType, err := multipartBody(f, filepath.Base(inputPath))
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cookie", authCookie+"="+c.cfg.AuthToken)
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := httputil.Do(ctx, c.http, req)
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", filepath.Base(inputPath), err)
	}

	if !resp.OK() {
		return fmt.Sprintf("Conversion failed: HTTP status %d, response: %s", resp.StatusCode, resp.Body), nil
	}

	result, ok, err := parseResult(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if !ok {
		return fmt.Sprintf("Conversion failed: unexpected response format - %s", bytes.TrimSpace(resp.Body)), nil
	}

	outputPath := filepath.Join(c.cfg.WorkDir, c.cfg.OutputFile)
	sections := make([]string, 0, len(result.Markdowns))
	for _, frag := range result.Markdowns {
		sections = append(sections, fmt.Sprintf("## File: %s\n\n%s", frag.Name, frag.Markdown))
		if err := os.WriteFile(outputPath, []byte(frag.Markdown), 0o644); err != nil {
			return "", fmt.Errorf("writing %s: %w", outputPath, err)
		}
	}

	return fmt.Sprintf("Converted PDF and saved to %s\n\n", c.cfg.OutputFile) + strings.Join(sections, "\n\n"), nil
}

// multipartBody builds the upload form with r as the single PDF part.
func multipartBody(r io.Reader, filename string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, formField, filename))
	h.Set("Content-Type", pdfMIME)
	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("create multipart file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("copy pdf data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

// rawFragment distinguishes absent fields from empty ones.
type rawFragment struct {
	Name     *string `json:"name"`
	Markdown *string `json:"markdown"`
}

// parseResult decodes the service response. ok is false when the JSON is
// an object whose "markdowns" field is absent, null or not a list. A
// fragment lacking name or markdown is an error.
func parseResult(data []byte) (types.ConversionResult, bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return types.ConversionResult{}, false, err
	}
	list, found := raw["markdowns"]
	if !found {
		return types.ConversionResult{}, false, nil
	}
	list = bytes.TrimSpace(list)
	if len(list) == 0 || list[0] != '[' {
		return types.ConversionResult{}, false, nil
	}

	var frags []rawFragment
	if err := json.Unmarshal(list, &frags); err != nil {
		return types.ConversionResult{}, false, err
	}
	result := types.ConversionResult{Markdowns: make([]types.Fragment, 0, len(frags))}
	for i, f := range frags {
		if f.Name == nil {
			return types.ConversionResult{}, false, fmt.Errorf("fragment %d: missing \"name\"", i)
		}
		if f.Markdown == nil {
			return types.ConversionResult{}, false, fmt.Errorf("fragment %d (%s): missing \"markdown\"", i, *f.Name)
		}
		result.Markdowns = append(result.Markdowns, types.Fragment{Name: *f.Name, Markdown: *f.Markdown})
	}
	return result, true, nil
}
