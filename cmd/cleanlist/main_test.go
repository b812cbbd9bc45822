package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanlist/internal/app"
	"cleanlist/internal/storage"
)

func writeConfig(t *testing.T) (configPath, dbPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	dbPath = filepath.Join(dir, "cleanlist.db")
	configPath = filepath.Join(dir, "config.toml")
	data := fmt.Sprintf("db_path = %q\nexport_path = %q\n", dbPath, filepath.Join(dir, "todo-list.pdf"))
	require.NoError(t, os.WriteFile(configPath, []byte(data), 0o644))
	return configPath, dbPath, dir
}

func seed(t *testing.T, dbPath string, texts ...string) {
	t.Helper()
	s, err := storage.Open(dbPath)
	require.NoError(t, err)
	defer s.Close()
	a := app.New(s, app.Config{})
	for _, text := range texts {
		_, _, err := a.Add(text)
		require.NoError(t, err)
	}
	require.NoError(t, a.Toggle(a.Tasks()[0].ID))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListEmpty(t *testing.T) {
	configPath, _, _ := writeConfig(t)

	out, err := run(t, "--config", configPath, "list")
	require.NoError(t, err)
	assert.Equal(t, "No tasks yet.\n", out)
}

func TestList(t *testing.T) {
	configPath, dbPath, _ := writeConfig(t)
	seed(t, dbPath, "A", "B")

	out, err := run(t, "--config", configPath, "list")
	require.NoError(t, err)
	assert.Equal(t, "[x] A\n[ ] B\n", out)
}

func TestExportEmptyFails(t *testing.T) {
	configPath, _, dir := writeConfig(t)

	_, err := run(t, "--config", configPath, "export")
	assert.ErrorIs(t, err, app.ErrNothingToExport)
	_, statErr := os.Stat(filepath.Join(dir, "todo-list.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExportWritesPDF(t *testing.T) {
	configPath, dbPath, dir := writeConfig(t)
	seed(t, dbPath, "Buy milk")

	out, err := run(t, "--config", configPath, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "todo-list.pdf")
	_, err = os.Stat(filepath.Join(dir, "todo-list.pdf"))
	assert.NoError(t, err)

	custom := filepath.Join(dir, "custom.pdf")
	_, err = run(t, "--config", configPath, "export", "--out", custom)
	require.NoError(t, err)
	_, err = os.Stat(custom)
	assert.NoError(t, err)
}
