// Package pip drives the embedded interpreter's pip as a synchronous child
// process and inspects the interpreter's site-packages directly.
package pip

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/aurifex/uepyside/pkg/applog"
)

// sitePackagesProbe is the one-liner used to ask the interpreter for its
// primary site-packages directory
const sitePackagesProbe = "import site; print(site.getsitepackages()[0])"

// Runner executes pip subcommands against a resolved interpreter. One
// subprocess runs at a time; every call blocks until the child exits.
type Runner struct {
	Log    applog.Logger
	Python string
}

// NewRunner creates a runner bound to the given interpreter path
func NewRunner(python string, log applog.Logger) *Runner {
	return &Runner{Python: python, Log: log}
}

// pipCommand builds a `<python> -m pip ...` invocation with the pip
// environment the embedded interpreter expects
func (r *Runner) pipCommand(args ...string) *exec.Cmd {
	cmd := exec.Command(r.Python, append([]string{"-m", "pip"}, args...)...) // #nosec G204 -- interpreter path is locator-resolved
	cmd.Env = append(os.Environ(),
		"PIP_DISABLE_PIP_VERSION_CHECK=1",
		"PIP_NO_WARN_SCRIPT_LOCATION=1",
	)
	return cmd
}

// Install installs pkg into the interpreter's site-packages. A non-zero exit
// is reported as an error carrying the captured output; nothing panics.
func (r *Runner) Install(pkg string, extraArgs ...string) error {
	args := []string{"install", "--no-warn-script-location"}
	args = append(args, extraArgs...)
	args = append(args, pkg)

	cmd := r.pipCommand(args...)
	r.Log.Infof("Running: %s", strings.Join(cmd.Args, " "))

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pip install %s failed: %w\nOutput: %s", pkg, err, output)
	}
	return nil
}

// Uninstall removes pkg from the interpreter's site-packages. Uninstalling a
// package that is not installed is a failure result, not a crash.
func (r *Runner) Uninstall(pkg string, extraArgs ...string) error {
	args := []string{"uninstall", "--yes"}
	args = append(args, extraArgs...)
	args = append(args, pkg)

	cmd := r.pipCommand(args...)
	r.Log.Infof("Running: %s", strings.Join(cmd.Args, " "))

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pip uninstall %s failed: %w\nOutput: %s", pkg, err, output)
	}
	return nil
}

// Show returns pip's metadata text for pkg, or an error when the package is
// not installed
func (r *Runner) Show(pkg string) (string, error) {
	output, err := r.pipCommand("show", pkg).Output()
	if err != nil {
		return "", fmt.Errorf("pip show %s failed: %w", pkg, err)
	}
	return string(output), nil
}

// List returns pip's listing of every package installed in the interpreter
func (r *Runner) List() (string, error) {
	output, err := r.pipCommand("list").Output()
	if err != nil {
		return "", fmt.Errorf("pip list failed: %w", err)
	}
	return string(output), nil
}

// SitePackages asks the interpreter for its primary site-packages directory
func (r *Runner) SitePackages() (string, error) {
	cmd := exec.Command(r.Python, "-c", sitePackagesProbe) // #nosec G204 -- interpreter path is locator-resolved
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to query site-packages: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
