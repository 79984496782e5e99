package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("WISHLIST_STORE", "file")
	t.Setenv("WISHLIST_DATA_DIR", dir)
	t.Setenv("LOG_FILE", filepath.Join(dir, "wishlist.log"))
	t.Setenv("CATALOG_DIR", "")

	return dir
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Usage: wishlist")
}

func TestRun_UnknownCommand(t *testing.T) {
	setupEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"book"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), `unknown command "book"`)
}

func TestRun_ListBundledCatalog(t *testing.T) {
	setupEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"list", "-type", "venue"}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "venue-1")
	assert.NotContains(t, stdout.String(), "exhibition-1")
}

func TestRun_ListUnknownType(t *testing.T) {
	setupEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"list", "-type", "museum"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown attraction type")
}

func TestRun_AddPersistsAcrossRuns(t *testing.T) {
	dir := setupEnv(t)
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"add", "venue-1"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "Added Van Gogh Museum to your wishlist.")

	data, err := os.ReadFile(filepath.Join(dir, "wishlist.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id": "venue-1"`)

	stdout.Reset()
	require.Equal(t, 0, run([]string{"wishlist"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "Van Gogh Museum")

	stdout.Reset()
	require.Equal(t, 0, run([]string{"toggle", "venue-1"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stdout.String(), "Removed Van Gogh Museum from your wishlist.")
}

func TestRun_MissingID(t *testing.T) {
	setupEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"show"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "show needs exactly one attraction id")
}

func TestRun_ShowUnknownID(t *testing.T) {
	setupEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"show", "venue-999"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), `No attraction with id "venue-999"`)
}
