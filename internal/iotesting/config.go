// Package iotesting provides shared test utilities.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/rdftaxon/pkg/config"
)

// GetTestConfig returns a default configuration that keeps console and
// log files out of the way of a test run: messages are quiet and logs
// go to stderr.
func GetTestConfig(opts ...config.Option) *config.Config {
	cfg := config.New()
	defaults := []config.Option{
		config.OptQuiet(true),
		config.OptWithProgressBar(false),
		config.OptLogDestination("stderr"),
	}
	cfg.Update(append(defaults, opts...))
	return cfg
}

// SetupTempHome creates a temporary home directory and points the HOME
// environment variable to it for the duration of the test. It prevents
// tests from touching ~/.config/rdftaxon and ~/.local/share/rdftaxon.
//
// Returns the absolute path to the temporary home directory.
func SetupTempHome(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	return tempDir
}

// WriteTempFile writes content to a file in dir and returns its path.
//
// Usage:
//
//	dir := t.TempDir()
//	path := iotesting.WriteTempFile(t, dir, "taxonomy.rdf", `
//	<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
//	</rdf:RDF>`)
func WriteTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
