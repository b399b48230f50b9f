package pip

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/aurifex/uepyside/pkg/applog"
)

// removeAll is swapped in tests to exercise per-item failure handling
var removeAll = os.RemoveAll

// Cleanup removes leftover files and directories in sitePackages whose names
// match any of the given glob patterns, case-insensitively. Individual
// removal failures are logged as warnings and do not stop the sweep; the
// returned slice lists what was actually removed.
func Cleanup(sitePackages string, patterns []string, log applog.Logger) ([]string, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid remnant pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}

	entries, err := os.ReadDir(sitePackages)
	if err != nil {
		return nil, fmt.Errorf("failed to read site-packages %s: %w", sitePackages, err)
	}

	var removed []string
	for _, entry := range entries {
		if !matchesAny(globs, entry.Name()) {
			continue
		}
		path := filepath.Join(sitePackages, entry.Name())
		if err := removeAll(path); err != nil {
			log.Warnf("could not remove %s: %v", path, err)
			continue
		}
		log.Infof("Removed %s", path)
		removed = append(removed, path)
	}

	return removed, nil
}

func matchesAny(globs []glob.Glob, name string) bool {
	lower := strings.ToLower(name)
	for _, g := range globs {
		if g.Match(lower) {
			return true
		}
	}
	return false
}
