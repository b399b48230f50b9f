package applog

import "fmt"

// Recorder captures log messages in memory. It is intended for tests that
// assert on what the locator or runner reported.
type Recorder struct {
	Infos    []string
	Warnings []string
	Errors   []string
}

// Infof records an informational message
func (r *Recorder) Infof(format string, args ...any) {
	r.Infos = append(r.Infos, fmt.Sprintf(format, args...))
}

// Warnf records a warning message
func (r *Recorder) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Errorf records an error message
func (r *Recorder) Errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}
