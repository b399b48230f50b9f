package pip

import (
	"os"
	"strings"
)

// Probe reports whether pkg is importable from sitePackages. It inspects the
// on-disk module layout and never spawns the interpreter: a top-level package
// directory, a single-file module, or a dist-info record all count.
func Probe(sitePackages, pkg string) bool {
	entries, err := os.ReadDir(sitePackages)
	if err != nil {
		return false
	}

	lowerPkg := strings.ToLower(pkg)
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		switch {
		case entry.IsDir() && name == lowerPkg:
			return true
		case !entry.IsDir() && name == lowerPkg+".py":
			return true
		case entry.IsDir() && distInfoMatches(name, pkg):
			return true
		}
	}
	return false
}

// distInfoMatches reports whether entryName is a `<pkg>-<version>.dist-info`
// record for pkg, comparing canonicalized distribution names
func distInfoMatches(entryName, pkg string) bool {
	base, ok := strings.CutSuffix(strings.ToLower(entryName), ".dist-info")
	if !ok {
		return false
	}
	idx := strings.LastIndex(base, "-")
	if idx <= 0 {
		return false
	}
	return canonicalName(base[:idx]) == canonicalName(pkg)
}

// canonicalName normalizes a distribution name the way pip records it
func canonicalName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, ".", "_")
	return name
}
