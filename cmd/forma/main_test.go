package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunRendersTemplateAgainstJSON(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "tape.txt")
	writeFile(t, templatePath, "{{artist}}: {{#songs}}[{{title}}]{{/songs}}")

	configPath := filepath.Join(dir, "forma.yaml")
	writeFile(t, configPath, `
includeDir: `+dir+`
defaultExtension: .txt
schema:
  attributes: [artist]
  lists:
    songs:
      attributes: [title]
`)

	in := strings.NewReader(`{"artist":"ABBA","songs":[{"title":"SOS"},{"title":"Waterloo"}]}`)
	var out bytes.Buffer

	err := run(templatePath, configPath, in, &out)
	require.NoError(t, err)
	assert.Equal(t, "ABBA: [SOS][Waterloo]", out.String())
}

func TestRunReportsValidationErrors(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "tape.txt")
	writeFile(t, templatePath, "{{nope}}")

	configPath := filepath.Join(dir, "forma.yaml")
	writeFile(t, configPath, `
schema:
  attributes: [artist]
`)

	in := strings.NewReader(`{"artist":"ABBA"}`)
	var out bytes.Buffer

	err := run(templatePath, configPath, in, &out)
	assert.Error(t, err)
}

func TestRunMissingConfigIsAnError(t *testing.T) {
	dir := t.TempDir()
	in := strings.NewReader(`{}`)
	var out bytes.Buffer
	err := run(filepath.Join(dir, "x.txt"), filepath.Join(dir, "missing.yaml"), in, &out)
	assert.Error(t, err)
}
