// Package testutil provides shared test helpers for config files and terminals.
package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigPath returns a config file path inside a fresh temporary directory.
// The file itself is not created.
func ConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "sregpt", "config.yaml")
}

// SetupTestConfig writes content to a new config file with owner-only permissions
// and returns its path.
func SetupTestConfig(t *testing.T, content string) string {
	t.Helper()
	return WriteConfig(t, ConfigPath(t), content, 0600)
}

// WriteConfig writes content to path, creating parent directories as needed.
func WriteConfig(t *testing.T, path string, content string, perm os.FileMode) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	// WriteFile applies perm only when creating the file
	require.NoError(t, os.Chmod(path, perm))
	return path
}

// Terminal is an in-memory controlling terminal.
// What the user types is read from Input; everything printed lands in Output.
type Terminal struct {
	Input  *strings.Reader
	Output bytes.Buffer
	Closed bool
}

func NewTerminal(input string) *Terminal {
	return &Terminal{Input: strings.NewReader(input)}
}

func (terminal *Terminal) Read(p []byte) (int, error) {
	return terminal.Input.Read(p)
}

func (terminal *Terminal) Write(p []byte) (int, error) {
	return terminal.Output.Write(p)
}

func (terminal *Terminal) Close() error {
	terminal.Closed = true
	return nil
}

// Opener returns an open function that hands out this terminal.
func (terminal *Terminal) Opener() func() (io.ReadWriteCloser, error) {
	return func() (io.ReadWriteCloser, error) {
		return terminal, nil
	}
}
