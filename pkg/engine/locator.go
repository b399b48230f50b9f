// Package engine locates the Python interpreter bundled inside an Unreal
// Engine installation, starting from the editor executable path.
//
// The expected layout is:
//
//	<engine-root>/Engine/Binaries/<Platform>/UnrealEditor(.exe)
//	<engine-root>/Engine/Binaries/ThirdParty/Python3/<Platform>/<python>
package engine

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/aurifex/uepyside/pkg/applog"
)

// ErrInterpreterNotFound indicates no embedded interpreter exists under the
// expected layout or the wildcard fallback search
var ErrInterpreterNotFound = errors.New("embedded Python interpreter not found")

// editorExePrefix is the naming convention for the editor binary
const editorExePrefix = "unrealeditor"

// Locator resolves the embedded interpreter path. GOOS is overridable so the
// platform branching is testable on any host.
type Locator struct {
	Log  applog.Logger
	GOOS string
}

// NewLocator creates a locator for the current platform
func NewLocator(log applog.Logger) *Locator {
	return &Locator{Log: log, GOOS: runtime.GOOS}
}

// EditorExecutable picks the reference point for interpreter discovery.
// An explicit override wins. Otherwise the running process executable is used
// when it follows the editor naming convention; some embeddings report the
// editor binary as the process executable, others do not, in which case the
// invocation path is the reference point instead.
func (l *Locator) EditorExecutable(override string) string {
	if override != "" {
		if abs, err := filepath.Abs(override); err == nil {
			return abs
		}
		return override
	}

	if exe, err := os.Executable(); err == nil {
		if strings.HasPrefix(strings.ToLower(filepath.Base(exe)), editorExePrefix) {
			return exe
		}
	}

	if abs, err := filepath.Abs(os.Args[0]); err == nil {
		return abs
	}
	return os.Args[0]
}

// FindInterpreter returns the path to the embedded Python interpreter derived
// from the editor executable path. Fixed platform candidates are checked
// first; when none exist, a recursive wildcard search under the ThirdParty
// tree is attempted. Returns ErrInterpreterNotFound when nothing matches.
func (l *Locator) FindInterpreter(editorExe string) (string, error) {
	// <Platform> -> Binaries -> Engine
	engineDir := filepath.Dir(filepath.Dir(filepath.Dir(editorExe)))
	thirdParty := filepath.Join(engineDir, "Binaries", "ThirdParty")

	for _, candidate := range l.candidates(thirdParty) {
		if isRegularFile(candidate) {
			return candidate, nil
		}
	}

	l.Log.Warnf("No interpreter at the known locations under %s, trying a wildcard search", thirdParty)
	if found := l.wildcardSearch(thirdParty); found != "" {
		return found, nil
	}

	return "", ErrInterpreterNotFound
}

// candidates returns the fixed, known-good interpreter locations for the
// locator's platform
func (l *Locator) candidates(thirdParty string) []string {
	switch l.GOOS {
	case "windows":
		return []string{
			filepath.Join(thirdParty, "Python3", "Win64", "python.exe"),
			filepath.Join(thirdParty, "Python3", "Win64", "python3.exe"),
		}
	case "darwin":
		return []string{
			filepath.Join(thirdParty, "Python3", "Mac", "bin", "python3"),
		}
	default:
		return []string{
			filepath.Join(thirdParty, "Python3", "Linux", "bin", "python3"),
		}
	}
}

// wildcardSearch looks for any executable named python* under any Python*
// directory in the ThirdParty tree, returning the first match in lexical
// order, or "" when there is none
func (l *Locator) wildcardSearch(thirdParty string) string {
	entries, err := os.ReadDir(thirdParty)
	if err != nil {
		return ""
	}

	var roots []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(strings.ToLower(entry.Name()), "python") {
			roots = append(roots, filepath.Join(thirdParty, entry.Name()))
		}
	}
	sort.Strings(roots)

	for _, root := range roots {
		var found string
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtrees are skipped, not fatal
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if !strings.HasPrefix(strings.ToLower(d.Name()), "python") {
				return nil
			}
			if l.isExecutableFile(path) {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if walkErr == nil && found != "" {
			return found
		}
	}

	return ""
}

// isExecutableFile reports whether path is a regular file the platform would
// run as an executable
func (l *Locator) isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if l.GOOS == "windows" {
		ext := strings.ToLower(filepath.Ext(path))
		return ext == ".exe" || ext == ".bat" || ext == ".cmd"
	}
	return info.Mode().Perm()&0o111 != 0
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
