package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurifex/uepyside/pkg/applog"
)

// newEngineLayout creates <root>/Engine/Binaries/<platform> and returns the
// fake editor executable path inside it
func newEngineLayout(t *testing.T, platform, editorName string) string {
	t.Helper()
	root := t.TempDir()
	binDir := filepath.Join(root, "Engine", "Binaries", platform)
	require.NoError(t, os.MkdirAll(binDir, 0o750))
	editorExe := filepath.Join(binDir, editorName)
	require.NoError(t, os.WriteFile(editorExe, []byte("editor"), 0o600))
	return editorExe
}

func writeInterpreter(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755)) // #nosec G306 -- fake interpreter must be executable
}

func TestFindInterpreter_WindowsLayout(t *testing.T) {
	editorExe := newEngineLayout(t, "Win64", "UnrealEditor.exe")
	engineDir := filepath.Dir(filepath.Dir(filepath.Dir(editorExe)))
	expected := filepath.Join(engineDir, "Binaries", "ThirdParty", "Python3", "Win64", "python.exe")
	writeInterpreter(t, expected)

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "windows"}
	found, err := loc.FindInterpreter(editorExe)
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestFindInterpreter_WindowsSecondCandidate(t *testing.T) {
	editorExe := newEngineLayout(t, "Win64", "UnrealEditor.exe")
	engineDir := filepath.Dir(filepath.Dir(filepath.Dir(editorExe)))
	expected := filepath.Join(engineDir, "Binaries", "ThirdParty", "Python3", "Win64", "python3.exe")
	writeInterpreter(t, expected)

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "windows"}
	found, err := loc.FindInterpreter(editorExe)
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestFindInterpreter_LinuxLayout(t *testing.T) {
	editorExe := newEngineLayout(t, "Linux", "UnrealEditor")
	engineDir := filepath.Dir(filepath.Dir(filepath.Dir(editorExe)))
	expected := filepath.Join(engineDir, "Binaries", "ThirdParty", "Python3", "Linux", "bin", "python3")
	writeInterpreter(t, expected)

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "linux"}
	found, err := loc.FindInterpreter(editorExe)
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestFindInterpreter_MacLayout(t *testing.T) {
	editorExe := newEngineLayout(t, "Mac", "UnrealEditor")
	engineDir := filepath.Dir(filepath.Dir(filepath.Dir(editorExe)))
	expected := filepath.Join(engineDir, "Binaries", "ThirdParty", "Python3", "Mac", "bin", "python3")
	writeInterpreter(t, expected)

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "darwin"}
	found, err := loc.FindInterpreter(editorExe)
	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestFindInterpreter_WildcardFallback(t *testing.T) {
	editorExe := newEngineLayout(t, "Linux", "UnrealEditor")
	engineDir := filepath.Dir(filepath.Dir(filepath.Dir(editorExe)))

	// Non-standard version directory the fixed candidates never check
	fallback := filepath.Join(engineDir, "Binaries", "ThirdParty", "Python311", "Linux", "bin", "python3.11")
	writeInterpreter(t, fallback)

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "linux"}
	found, err := loc.FindInterpreter(editorExe)
	require.NoError(t, err)
	assert.Equal(t, fallback, found)
}

func TestFindInterpreter_FallbackSkipsNonExecutable(t *testing.T) {
	editorExe := newEngineLayout(t, "Linux", "UnrealEditor")
	engineDir := filepath.Dir(filepath.Dir(filepath.Dir(editorExe)))
	pyDir := filepath.Join(engineDir, "Binaries", "ThirdParty", "Python3", "Linux", "lib")

	// Plain data file matching the name pattern but not executable
	require.NoError(t, os.MkdirAll(pyDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(pyDir, "python3.cfg"), []byte("data"), 0o600))

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "linux"}
	_, err := loc.FindInterpreter(editorExe)
	assert.ErrorIs(t, err, ErrInterpreterNotFound)
}

func TestFindInterpreter_WarnsBeforeWildcardSearch(t *testing.T) {
	editorExe := newEngineLayout(t, "Linux", "UnrealEditor")
	engineDir := filepath.Dir(filepath.Dir(filepath.Dir(editorExe)))
	writeInterpreter(t, filepath.Join(engineDir, "Binaries", "ThirdParty", "Python311", "Linux", "bin", "python3.11"))

	rec := &applog.Recorder{}
	loc := &Locator{Log: rec, GOOS: "linux"}
	_, err := loc.FindInterpreter(editorExe)
	require.NoError(t, err)

	require.Len(t, rec.Warnings, 1)
	assert.Contains(t, rec.Warnings[0], "wildcard search")
}

func TestFindInterpreter_NotFound(t *testing.T) {
	editorExe := newEngineLayout(t, "Linux", "UnrealEditor")

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "linux"}
	found, err := loc.FindInterpreter(editorExe)
	assert.Empty(t, found)
	assert.ErrorIs(t, err, ErrInterpreterNotFound)
}

func TestFindInterpreter_MissingThirdPartyTree(t *testing.T) {
	loc := &Locator{Log: &applog.Recorder{}, GOOS: "linux"}
	_, err := loc.FindInterpreter(filepath.Join(t.TempDir(), "nowhere", "Binaries", "Linux", "UnrealEditor"))
	assert.ErrorIs(t, err, ErrInterpreterNotFound)
}

func TestEditorExecutable_OverrideWins(t *testing.T) {
	loc := NewLocator(&applog.Recorder{})
	got := loc.EditorExecutable("/opt/ue/Engine/Binaries/Linux/UnrealEditor")
	assert.Equal(t, "/opt/ue/Engine/Binaries/Linux/UnrealEditor", got)
}

func TestEditorExecutable_RelativeOverrideIsResolved(t *testing.T) {
	loc := NewLocator(&applog.Recorder{})
	got := loc.EditorExecutable("UnrealEditor")
	assert.True(t, filepath.IsAbs(got))
}

func TestEditorExecutable_FallsBackToInvocationPath(t *testing.T) {
	// The test binary is not named UnrealEditor*, so the locator should fall
	// back to the invocation path, resolved to an absolute path
	loc := NewLocator(&applog.Recorder{})
	got := loc.EditorExecutable("")
	assert.True(t, filepath.IsAbs(got))
}

func TestSitePackages_Windows(t *testing.T) {
	dir := t.TempDir()
	python := filepath.Join(dir, "Win64", "python.exe")
	writeInterpreter(t, python)
	sp := filepath.Join(dir, "Win64", "Lib", "site-packages")
	require.NoError(t, os.MkdirAll(sp, 0o750))

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "windows"}
	got, err := loc.SitePackages(python)
	require.NoError(t, err)
	assert.Equal(t, sp, got)
}

func TestSitePackages_Unix(t *testing.T) {
	dir := t.TempDir()
	python := filepath.Join(dir, "Linux", "bin", "python3")
	writeInterpreter(t, python)
	sp := filepath.Join(dir, "Linux", "lib", "python3.11", "site-packages")
	require.NoError(t, os.MkdirAll(sp, 0o750))

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "linux"}
	got, err := loc.SitePackages(python)
	require.NoError(t, err)
	assert.Equal(t, sp, got)
}

func TestSitePackages_NotFound(t *testing.T) {
	dir := t.TempDir()
	python := filepath.Join(dir, "Linux", "bin", "python3")
	writeInterpreter(t, python)

	loc := &Locator{Log: &applog.Recorder{}, GOOS: "linux"}
	_, err := loc.SitePackages(python)
	assert.ErrorIs(t, err, ErrSitePackagesNotFound)
}
