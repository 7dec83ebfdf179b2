package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgecomet/webkit/pkg/bytesize"
	"github.com/edgecomet/webkit/pkg/timefmt"
)

// run executes the CLI with args and returns stdout and stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const pageYAML = `
title: Careers
description: Join a small team building tools for the open web. We hire engineers, designers and writers.
canonical: /careers
keywords: [jobs, hiring]
images:
  - url: https://acme.test/careers.png
    alt: The team
    width: 1200
    height: 630
json_ld:
  - "@type": Organization
    name: Acme
`

func TestBytesParse(t *testing.T) {
	out, _, err := run(t, "", "bytes", "parse", "1.5mb", "10 KB", "1024")
	require.NoError(t, err)
	assert.Equal(t, "1572864\n10240\n1024\n", out)
}

func TestBytesParse_Flags(t *testing.T) {
	out, _, err := run(t, "", "bytes", "parse", "--base", "1000", "1kb")
	require.NoError(t, err)
	assert.Equal(t, "1000\n", out)

	out, _, err = run(t, "", "bytes", "parse", "--no-round", "0.5b")
	require.NoError(t, err)
	assert.Equal(t, "0.5\n", out)
}

func TestBytesParse_Invalid(t *testing.T) {
	_, _, err := run(t, "", "bytes", "parse", "12xyz")
	require.Error(t, err)
	assert.ErrorIs(t, err, bytesize.ErrInvalidFormat)

	_, _, err = run(t, "", "bytes", "parse", "--base", "512", "1kb")
	require.Error(t, err)
	assert.ErrorIs(t, err, bytesize.ErrInvalidBase)
}

func TestBytesFormat(t *testing.T) {
	out, _, err := run(t, "", "bytes", "format", "1572864", "512")
	require.NoError(t, err)
	assert.Equal(t, "1.50 MB\n512.00 B\n", out)

	out, _, err = run(t, "", "bytes", "format", "--long", "--precision", "0", "512")
	require.NoError(t, err)
	assert.Equal(t, "512 bytes\n", out)

	_, _, err = run(t, "", "bytes", "format", "lots")
	assert.ErrorIs(t, err, bytesize.ErrInvalidNumber)
}

func TestBytesFormat_ConfigDefaults(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "webkit.yaml", "bytes:\n  base: 1000\n  precision: 1\n")

	out, _, err := run(t, "", "-c", cfg, "bytes", "format", "1572864")
	require.NoError(t, err)
	assert.Equal(t, "1.6 MB\n", out)

	// Flags win over the config file
	out, _, err = run(t, "", "-c", cfg, "bytes", "format", "--base", "1024", "1572864")
	require.NoError(t, err)
	assert.Equal(t, "1.5 MB\n", out)
}

func TestBytesFormat_EnvOverride(t *testing.T) {
	t.Setenv("WEBKIT_PRECISION", "0")

	out, _, err := run(t, "", "bytes", "format", "1536")
	require.NoError(t, err)
	assert.Equal(t, "2 KB\n", out)
}

func TestSeoRender_Stdout(t *testing.T) {
	page := writeFile(t, t.TempDir(), "page.yaml", pageYAML)

	out, _, err := run(t, "", "seo", "render", page)
	require.NoError(t, err)

	assert.Contains(t, out, "<title>Careers | My Site</title>\n")
	assert.Contains(t, out, `<meta name="keywords" content="jobs, hiring"/>`)
	assert.Contains(t, out, `<link rel="canonical" href="/careers"/>`)
	assert.Contains(t, out, `<meta property="og:image:width" content="1200"/>`)
	assert.Contains(t, out, `<script type="application/ld+json">`)
	assert.NotContains(t, out, "og:url", "no site url configured")
}

func TestSeoRender_Stdin(t *testing.T) {
	out, _, err := run(t, "title: Home\nnoindex: true\n", "seo", "render", "-")
	require.NoError(t, err)
	assert.Contains(t, out, `<meta name="robots" content="noindex,follow"/>`)
}

func TestSeoRender_JSON(t *testing.T) {
	out, _, err := run(t, "title: Home\n", "seo", "render", "--json", "-")
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.NotEmpty(t, records)
	assert.Equal(t, map[string]string{"name": ""}, records[0])
	assert.Equal(t, map[string]string{"title": "Home | My Site"}, records[1])
}

func TestSeoRender_ConfigAndCompressedOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "webkit.yaml", `
log:
  level: info
seo:
  site_name: Acme
  site_url: https://acme.test
output:
  compression: snappy
`)
	page := writeFile(t, dir, "page.yaml", pageYAML)
	target := filepath.Join(dir, "head.html")

	out, stderr, err := run(t, "", "-c", cfg, "seo", "render", "--out", target, page)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "Fragment written")
	assert.Contains(t, stderr, "head.html.snappy")

	_, err = os.Stat(target + ".snappy")
	require.NoError(t, err)

	out, _, err = run(t, "", "seo", "inspect", "--key", "title", "--key", "og:url", "--key", "missing", target+".snappy")
	require.NoError(t, err)

	var picked map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &picked))
	assert.Equal(t, map[string]string{
		"title":  "Careers | Acme",
		"og:url": "https://acme.test/careers",
	}, picked)
}

func TestSeoRender_MaxOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "webkit.yaml", "bytes:\n  max_output: 100b\n")
	page := writeFile(t, dir, "page.yaml", pageYAML)

	_, _, err := run(t, "", "-c", cfg, "seo", "render", page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "over the 100.00 B limit")
}

func TestSeoRender_InvalidParams(t *testing.T) {
	_, _, err := run(t, "title: T\nsubtitle: nope\n", "seo", "render", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse seo params")
}

func TestSeoInspect_AllTags(t *testing.T) {
	page := writeFile(t, t.TempDir(), "index.html",
		`<html><head><title>Hi</title><meta name="description" content="D"></head></html>`)

	out, _, err := run(t, "", "seo", "inspect", page)
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Equal(t, []map[string]string{
		{"title": "Hi"},
		{"name": "description", "content": "D"},
	}, records)
}

func TestTimeCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"digital", []string{"time", "format", "3665"}, "1:01:05\n"},
		{"short", []string{"time", "format", "--style", "short", "3930"}, "1h 5m 30s\n"},
		{"long", []string{"time", "format", "--style", "long", "61"}, "1 minute 1 second\n"},
		{"ceil", []string{"time", "format", "--rounding", "ceil", "64.2"}, "01:05\n"},
		{"always hours", []string{"time", "format", "--always-hours", "65"}, "0:01:05\n"},
		{"unpadded", []string{"time", "format", "--no-pad", "65"}, "1:05\n"},
		{"parse", []string{"time", "parse", "1:01:05"}, "3665\n"},
		{"parse separator", []string{"time", "parse", "--separator", ".", "1.05"}, "65\n"},
		{"iso", []string{"time", "iso", "2024-03-10"}, "2024-03-10T00:00:00.000Z\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestTimeCommands_Errors(t *testing.T) {
	_, _, err := run(t, "", "time", "format", "soon")
	assert.ErrorIs(t, err, timefmt.ErrInvalidSeconds)

	_, _, err = run(t, "", "time", "format", "--style", "fancy", "5")
	assert.Error(t, err)

	_, _, err = run(t, "", "time", "parse", "a:b")
	assert.ErrorIs(t, err, timefmt.ErrInvalidTime)

	_, _, err = run(t, "", "time", "iso", "someday")
	assert.Error(t, err)
}

func TestInitials(t *testing.T) {
	out, _, err := run(t, "", "initials", "émile", "zola", "junior")
	require.NoError(t, err)
	assert.Equal(t, "EZ\n", out)

	out, _, err = run(t, "", "initials", "--fallback=-")
	require.NoError(t, err)
	assert.Equal(t, "-\n", out)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := run(t, "", "-c", filepath.Join(t.TempDir(), "missing.yaml"), "initials", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "webkit v"+releaseVersion+"\n", out)
}
