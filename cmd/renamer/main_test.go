package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/renamer/internal/display"
)

func setupDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(n), 0o644))
	}
	return dir
}

func names(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--no-color"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestDryRunByDefault(t *testing.T) {
	dir := setupDir(t, "test_old_file1.txt", "test_old_file2.txt", "other_file.txt")

	code, out, _ := runCLI("-p", "old", "-r", "new", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Would rename: "+filepath.Join(dir, "test_old_file1.txt")+" → test_new_file1.txt")
	assert.Contains(t, out, "Dry run complete. 2 files would be renamed.")
	assert.Equal(t, []string{"other_file.txt", "test_old_file1.txt", "test_old_file2.txt"}, names(t, dir))
}

func TestApply(t *testing.T) {
	dir := setupDir(t, "test_old_file1.txt", "test_old_file2.txt", "test_old_file.pdf", "other_file.txt")

	code, out, _ := runCLI("--pattern", "old", "--replacement", "new", "--apply", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Renamed 3 files.")
	assert.Equal(t, []string{"other_file.txt", "test_new_file.pdf", "test_new_file1.txt", "test_new_file2.txt"}, names(t, dir))

	// A second run finds nothing left to do.
	code, out, _ = runCLI("--pattern", "old", "--replacement", "new", "--apply", dir)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Renamed 0 files.")
}

func TestDryRunWinsOverApply(t *testing.T) {
	dir := setupDir(t, "a_old.txt")
	code, _, _ := runCLI("-p", "old", "-r", "new", "--apply", "--dry-run", dir)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"a_old.txt"}, names(t, dir))
}

func TestRegexExtension(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt", "c.log")

	code, _, _ := runCLI("-x", "-p", `\.txt$`, "-r", ".md", "-a", dir)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"a.md", "b.md", "c.log"}, names(t, dir))
}

func TestCaseAndNumber(t *testing.T) {
	dir := setupDir(t, "My Holiday.JPG", "Another Trip.JPG")

	code, _, _ := runCLI("--case", "snake", "-a", dir)
	require.Equal(t, 0, code)
	assert.Equal(t, []string{"another_trip.JPG", "my_holiday.JPG"}, names(t, dir))

	code, _, _ = runCLI("--number", "photo_{n:3}", "-a", dir)
	require.Equal(t, 0, code)
	assert.Equal(t, []string{"photo_001.JPG", "photo_002.JPG"}, names(t, dir))
}

func TestInputNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nonexistent_directory_12345")

	code, _, errOut := runCLI("-p", "old", "-r", "new", "-a", missing)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "input not found")
}

func TestConflictLeavesFilesUntouched(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")

	code, out, errOut := runCLI("-x", "-p", "^[ab]", "-r", "c", "-a", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Conflict: "+filepath.Join(dir, "a.txt")+" → c.txt")
	assert.Contains(t, errOut, "Plan rejected")
	assert.Equal(t, []string{"a.txt", "b.txt"}, names(t, dir))
}

func TestDedupe(t *testing.T) {
	dir := setupDir(t, "a.txt", "b.txt")

	code, _, _ := runCLI("-x", "-p", "^[ab]", "-r", "c", "--dedupe", "-a", dir)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"c.txt", "c_1.txt"}, names(t, dir))
}

func TestSwap(t *testing.T) {
	dir := setupDir(t, "1.txt", "2.txt")

	code, _, _ := runCLI("--number", "{n}", "--start", "2", "--step=-1", "-a", dir)
	require.Equal(t, 0, code)
	b, err := os.ReadFile(filepath.Join(dir, "1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "2.txt", string(b))
	assert.Equal(t, []string{"1.txt", "2.txt"}, names(t, dir))
}

func TestJSONOutput(t *testing.T) {
	dir := setupDir(t, "IMG_001.jpg", "IMG_002.jpg")

	code, out, _ := runCLI("-p", "IMG_", "-r", "photo_", "-o", "json", "-v", dir)
	require.Equal(t, 0, code)

	var rep display.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "validated", rep.Stage)
	assert.True(t, rep.DryRun)
	assert.Equal(t, 2, rep.Summary.Planned)
	require.Len(t, rep.Entries, 2)
	assert.Equal(t, "photo_001.jpg", rep.Entries[0].NewName)
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no rule", []string{"."}},
		{"two rules", []string{"-p", "a", "--case", "lower", "."}},
		{"bad regex", []string{"-x", "-p", "(", "."}},
		{"bad case", []string{"--case", "shouting", "."}},
		{"template without counter", []string{"--number", "photo", "."}},
		{"unknown flag", []string{"--frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, "renamer:")
		})
	}
}

func TestVersionAndHelp(t *testing.T) {
	code, out, _ := runCLI("-V")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "renamer "+version)

	code, out, _ = runCLI("--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "--pattern")
}

func TestRegexCaptureExample(t *testing.T) {
	dir := setupDir(t, "IMG_1.jpg", "IMG_2.jpg")

	code, out, _ := runCLI("--regex", "--pattern", `IMG_(\d+)`, "--replacement", "photo_$1", dir)
	require.Equal(t, 0, code)
	assert.Contains(t, out, filepath.Join(dir, "IMG_1.jpg")+" → photo_1.jpg")
	assert.Contains(t, out, filepath.Join(dir, "IMG_2.jpg")+" → photo_2.jpg")

	code, _, _ = runCLI("--regex", "--pattern", `IMG_(\d+)`, "--replacement", "photo_$1", "--apply", dir)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"photo_1.jpg", "photo_2.jpg"}, names(t, dir))
}

func TestSymlinks(t *testing.T) {
	t.Run("onto its own target", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "real.txt")
		require.NoError(t, os.WriteFile(target, []byte("precious"), 0o644))
		require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

		code, _, _ := runCLI("-p", "link", "-r", "real.txt", "--apply", dir)
		assert.Equal(t, 1, code)
		b, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "precious", string(b))
		assert.Equal(t, []string{"link", "real.txt"}, names(t, dir))
	})

	t.Run("dangling target", func(t *testing.T) {
		dir := setupDir(t, "a.txt")
		link := filepath.Join(dir, "b.txt")
		require.NoError(t, os.Symlink(filepath.Join(dir, "nowhere"), link))

		code, _, _ := runCLI("-p", "a.txt", "-r", "b.txt", "--apply", dir)
		assert.Equal(t, 1, code)
		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink)
		assert.Equal(t, []string{"a.txt", "b.txt"}, names(t, dir))
	})
}
