package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	GiaType string `json:"gia_type"`
	Subject string `json:"subject"`
	Workers int    `json:"workers"`
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sdamgia.json5"), `{
		// base settings
		gia_type: "ege",
		subject: "math",
		workers: 4,
	}`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "sdamgia.json5"))
	require.NoError(t, err)
	require.Equal(t, testConfig{GiaType: "ege", Subject: "math", Workers: 4}, cfg)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sdamgia.json5"), `{gia_type: "ege", subject: "math"}`)
	writeFile(t, filepath.Join(dir, "sdamgia.local.json5"), `{subject: "phys"}`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "sdamgia.json5"))
	require.NoError(t, err)
	require.Equal(t, "ege", cfg.GiaType)
	require.Equal(t, "phys", cfg.Subject)
}

func TestReadConfigNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadConfig[testConfig](filepath.Join(dir, "missing.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
