package pip

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// PackageInfo holds the fields of interest from pip show output
type PackageInfo struct {
	Name     string
	Version  string
	Summary  string
	Location string
	Requires []string
}

// ParseShow extracts structured metadata from pip show output. Missing fields
// stay empty; pip's field names are matched case-insensitively.
func ParseShow(output string) PackageInfo {
	info := PackageInfo{
		Name:     showField(output, "Name"),
		Version:  showField(output, "Version"),
		Summary:  showField(output, "Summary"),
		Location: showField(output, "Location"),
	}

	if requires := showField(output, "Requires"); requires != "" {
		for _, dep := range strings.Split(requires, ",") {
			if dep = strings.TrimSpace(dep); dep != "" {
				info.Requires = append(info.Requires, dep)
			}
		}
	}

	return info
}

// showField pulls a single `Field: value` line out of pip show output
func showField(output, field string) string {
	re := regexp2.MustCompile(`^`+field+`:[ \t]*(.*)$`, regexp2.IgnoreCase|regexp2.Multiline)
	m, err := re.FindStringMatch(output)
	if err != nil || m == nil {
		return ""
	}
	return strings.TrimSpace(m.GroupByNumber(1).String())
}
