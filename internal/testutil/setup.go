package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// WriteFixture writes content to name inside a fresh temporary directory and
// returns the file path.
//
// Example:
//
//	path := testutil.WriteFixture(t, "app.ini", testutil.Scenario)
func WriteFixture(t *testing.T, name, content string) string {
	t.Helper()
	return WriteFixtureBytes(t, name, []byte(content))
}

// WriteFixtureBytes is WriteFixture for binary content.
func WriteFixtureBytes(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

// CopyFixture copies a repository fixture into a temporary directory and
// returns the copy's path. Calls t.Skip if the fixture is not found.
//
// Example:
//
//	path := testutil.CopyFixture(t, testutil.FixtureScenario)
func CopyFixture(t *testing.T, fixturePath string) string {
	t.Helper()

	src := ResolveFixture(t, fixturePath)
	dst := filepath.Join(t.TempDir(), filepath.Base(fixturePath))
	copyFile(t, src, dst)
	return dst
}

// ResolveFixture attempts to find the fixture by trying multiple path resolutions.
// This handles the fact that tests may be run from different working directories.
// Calls t.Skip if the fixture is not found.
func ResolveFixture(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../../" + relativePath,       // From package two levels deep (e.g., pkg/ini/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skipf("Fixture not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// copyFile copies src to dst.
// Calls t.Fatal if the copy fails.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Skipf("Fixture not found: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp fixture: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy fixture: %v", copyErr)
	}
}
