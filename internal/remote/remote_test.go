// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mdtools/pkg/types"
)

const fakePDF = "%PDF-1.4 fake"

// setupWorkDir creates a work directory holding input.pdf.
func setupWorkDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input.pdf"), []byte(fakePDF), 0o644))
	return dir
}

func testCfg(url, workDir string) types.RemoteConfig {
	return types.RemoteConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "mdtools-test"},
		URL:        url,
		AuthToken:  "s3cret",
		WorkDir:    workDir,
		InputFile:  "input.pdf",
		OutputFile: "output.md",
	}
}

func jsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestConvertPDF_Success(t *testing.T) {
	dir := setupWorkDir(t)
	ts := jsonServer(t, http.StatusOK, `{"markdowns":[{"name":"a.pdf","markdown":"# Hello"}]}`)

	msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())

	data, err := os.ReadFile(filepath.Join(dir, "output.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Hello", string(data))
	assert.Contains(t, msg, "a.pdf")
	assert.Contains(t, msg, "Hello")
	assert.Contains(t, msg, "output.md")
	assert.Equal(t, "Converted PDF and saved to output.md\n\n## File: a.pdf\n\n# Hello", msg)
}

func TestConvertPDF_RequestShape(t *testing.T) {
	dir := setupWorkDir(t)

	var (
		method, cookie, agent       string
		filename, partType, content string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		cookie = r.Header.Get("Cookie")
		agent = r.Header.Get("User-Agent")

		file, header, err := r.FormFile("files")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		filename = header.Filename
		partType = header.Header.Get("Content-Type")
		data, _ := io.ReadAll(file)
		content = string(data)

		io.WriteString(w, `{"markdowns":[]}`)
	}))
	defer ts.Close()

	msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())
	require.True(t, strings.HasPrefix(msg, "Converted PDF"), msg)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "auth=s3cret", cookie)
	assert.Equal(t, "mdtools-test", agent)
	assert.Equal(t, "input.pdf", filename)
	assert.Equal(t, "application/pdf", partType)
	assert.Equal(t, fakePDF, content)
}

func TestConvertPDF_ServerError(t *testing.T) {
	dir := setupWorkDir(t)
	ts := jsonServer(t, http.StatusInternalServerError, "worker crashed")

	msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())

	assert.Contains(t, msg, "500")
	assert.Contains(t, msg, "worker crashed")
	_, err := os.Stat(filepath.Join(dir, "output.md"))
	assert.True(t, os.IsNotExist(err), "output.md must not be created on failure")
}

func TestConvertPDF_ServerErrorLeavesExistingOutput(t *testing.T) {
	dir := setupWorkDir(t)
	outPath := filepath.Join(dir, "output.md")
	require.NoError(t, os.WriteFile(outPath, []byte("previous"), 0o644))
	ts := jsonServer(t, http.StatusBadGateway, "")

	msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())

	assert.Contains(t, msg, "502")
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestConvertPDF_MissingMarkdownsField(t *testing.T) {
	dir := setupWorkDir(t)
	ts := jsonServer(t, http.StatusOK, `{"error":"quota exceeded"}`)

	msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())

	assert.True(t, strings.HasPrefix(msg, "Conversion failed: unexpected response format"), msg)
	assert.Contains(t, msg, "quota exceeded")
}

// withExistingOutput seeds output.md and returns a check that it is unchanged.
func withExistingOutput(t *testing.T, dir string) func() {
	t.Helper()
	outPath := filepath.Join(dir, "output.md")
	require.NoError(t, os.WriteFile(outPath, []byte("previous"), 0o644))
	return func() {
		data, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "previous", string(data))
	}
}

func TestConvertPDF_NullMarkdowns(t *testing.T) {
	for _, body := range []string{`{"markdowns":null}`, `{"markdowns":"a.pdf"}`, `{"markdowns":{}}`} {
		t.Run(body, func(t *testing.T) {
			dir := setupWorkDir(t)
			unchanged := withExistingOutput(t, dir)
			ts := jsonServer(t, http.StatusOK, body)

			msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())

			assert.Equal(t, "Conversion failed: unexpected response format - "+body, msg)
			unchanged()
		})
	}
}

func TestConvertPDF_FragmentMissingMarkdown(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing markdown", `{"markdowns":[{"name":"a.pdf"}]}`, `missing "markdown"`},
		{"missing name", `{"markdowns":[{"markdown":"# A"}]}`, `missing "name"`},
		{"second fragment incomplete", `{"markdowns":[{"name":"a.pdf","markdown":"# A"},{"name":"b.pdf"}]}`, `fragment 1 (b.pdf)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupWorkDir(t)
			unchanged := withExistingOutput(t, dir)
			ts := jsonServer(t, http.StatusOK, tt.body)

			msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())

			assert.True(t, strings.HasPrefix(msg, "Error during conversion: "), msg)
			assert.Contains(t, msg, tt.want)
			unchanged()
		})
	}
}

func TestConvertPDF_EmptyMarkdownIsWritten(t *testing.T) {
	dir := setupWorkDir(t)
	withExistingOutput(t, dir)
	ts := jsonServer(t, http.StatusOK, `{"markdowns":[{"name":"blank.pdf","markdown":""}]}`)

	msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())

	assert.True(t, strings.HasPrefix(msg, "Converted PDF"), msg)
	data, err := os.ReadFile(filepath.Join(dir, "output.md"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestConvertPDF_MalformedJSON(t *testing.T) {
	dir := setupWorkDir(t)
	ts := jsonServer(t, http.StatusOK, `not json`)

	msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())

	assert.True(t, strings.HasPrefix(msg, "Error during conversion: "), msg)
}

func TestConvertPDF_LastFragmentWins(t *testing.T) {
	dir := setupWorkDir(t)
	ts := jsonServer(t, http.StatusOK, `{"markdowns":[
		{"name":"one.pdf","markdown":"# One"},
		{"name":"two.pdf","markdown":"# Two"}
	]}`)

	msg := NewClient(ts.Client(), testCfg(ts.URL, dir)).ConvertPDF(context.Background())

	data, err := os.ReadFile(filepath.Join(dir, "output.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Two", string(data))
	assert.Contains(t, msg, "## File: one.pdf\n\n# One\n\n## File: two.pdf\n\n# Two")
}

func TestConvertPDF_MissingInput(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	msg := NewClient(ts.Client(), testCfg(ts.URL, t.TempDir())).ConvertPDF(context.Background())

	assert.Equal(t, "Error: 'input.pdf' not found in the current directory. Make sure the file exists.", msg)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestConvertPDF_NetworkError(t *testing.T) {
	dir := setupWorkDir(t)
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	msg := NewClient(http.DefaultClient, testCfg(url, dir)).ConvertPDF(context.Background())

	assert.True(t, strings.HasPrefix(msg, "Error during conversion: "), msg)
}

func TestConvertPDF_MissingURL(t *testing.T) {
	dir := setupWorkDir(t)

	msg := NewClient(http.DefaultClient, testCfg("", dir)).ConvertPDF(context.Background())

	assert.Contains(t, msg, "not configured")
}

func TestParseResult(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantOK  bool
		wantLen int
		wantErr bool
	}{
		{name: "fragments", body: `{"markdowns":[{"name":"a","markdown":"x"},{"name":"b","markdown":"y"}]}`, wantOK: true, wantLen: 2},
		{name: "empty list", body: `{"markdowns":[]}`, wantOK: true},
		{name: "absent field", body: `{"other":1}`},
		{name: "null list", body: `{"markdowns":null}`},
		{name: "not a list", body: `{"markdowns":"x"}`},
		{name: "fragment without markdown", body: `{"markdowns":[{"name":"a"}]}`, wantErr: true},
		{name: "not an object", body: `[1,2]`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := parseResult([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, got.Markdowns, tt.wantLen)
		})
	}
}
