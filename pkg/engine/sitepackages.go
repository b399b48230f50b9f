package engine

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
)

// ErrSitePackagesNotFound indicates the site-packages directory could not be
// derived from the interpreter's location
var ErrSitePackagesNotFound = errors.New("site-packages directory not found")

// SitePackages derives the interpreter's site-packages directory from the
// on-disk layout without spawning the interpreter. Callers that need the
// authoritative answer can fall back to asking the interpreter itself.
func (l *Locator) SitePackages(pythonExe string) (string, error) {
	if l.GOOS == "windows" {
		// <Python3>/Win64/python.exe -> <Python3>/Win64/Lib/site-packages
		candidate := filepath.Join(filepath.Dir(pythonExe), "Lib", "site-packages")
		if isDir(candidate) {
			return candidate, nil
		}
		return "", ErrSitePackagesNotFound
	}

	// <platform>/bin/python3 -> <platform>/lib/python3.*/site-packages
	prefix := filepath.Dir(filepath.Dir(pythonExe))
	matches, err := filepath.Glob(filepath.Join(prefix, "lib", "python3*", "site-packages"))
	if err != nil || len(matches) == 0 {
		return "", ErrSitePackagesNotFound
	}

	sort.Strings(matches)
	for _, match := range matches {
		if isDir(match) {
			return match, nil
		}
	}
	return "", ErrSitePackagesNotFound
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
