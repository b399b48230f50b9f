package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/aurifex/uepyside/pkg/pip"
)

// UninstallCommand handles the uninstall command functionality
type UninstallCommand struct{}

// UninstallOptions holds command-line options for the uninstall command
type UninstallOptions struct {
	CommonOptions
	NoClean bool `long:"no-clean" description:"Skip the site-packages remnant cleanup after uninstalling"`
}

// Help returns the help text for the uninstall command
func (c *UninstallCommand) Help() string {
	var opts UninstallOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "uninstall",
		Description: "Uninstall the configured package from the engine's embedded Python.",
		Examples: []Example{
			{Command: BinaryName + " uninstall", Description: "Uninstall PySide6 and sweep remnants"},
			{Command: BinaryName + " uninstall --no-clean", Description: "Uninstall without the remnant sweep"},
		},
		Notes: []string{
			"The uninstall is verified afterwards by probing site-packages.",
			"Remnant cleanup is best-effort: individual removal failures are",
			"logged as warnings and do not fail the command.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the uninstall command
func (c *UninstallCommand) Synopsis() string {
	return "Uninstall the package from the engine's embedded Python"
}

// Run executes the uninstall command
func (c *UninstallCommand) Run(args []string) int {
	var opts UninstallOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	_, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		fmt.Printf("Error parsing arguments: %v\n", err)
		return 2
	}

	env, err := setupEnvironment(opts.CommonOptions)
	if err != nil {
		return 1
	}
	pkg := env.cfg.Package

	sp, spErr := env.sitePackages()
	if spErr == nil && !pip.Probe(sp, pkg) {
		env.log.Infof("%s is not installed in the engine's Python environment.", pkg)
		return 1
	}

	// Show what is about to be removed, best effort
	if output, showErr := env.runner().Show(pkg); showErr == nil {
		info := pip.ParseShow(output)
		env.log.Infof("Currently installed: %s %s", info.Name, info.Version)
	}

	env.log.Warnf("Attempting to uninstall %s...", pkg)
	if err := env.runner().Uninstall(pkg); err != nil {
		env.log.Errorf("Failed to uninstall %s: %v", pkg, err)
		return 1
	}

	if spErr == nil && pip.Probe(sp, pkg) {
		env.log.Warnf("Uninstall command completed but %s still appears to be available.", pkg)
		return 1
	}
	env.log.Infof("%s successfully uninstalled and verified.", pkg)

	if !opts.NoClean {
		c.cleanupRemnants(env, sp, spErr)
	}

	return 0
}

// cleanupRemnants sweeps site-packages for leftover files after a successful
// uninstall. Failures here never fail the uninstall itself.
func (c *UninstallCommand) cleanupRemnants(env *toolEnv, sp string, spErr error) {
	if spErr != nil {
		env.log.Warnf("Skipping remnant cleanup: %v", spErr)
		return
	}

	removed, err := pip.Cleanup(sp, env.cfg.RemnantPatterns, env.log)
	if err != nil {
		env.log.Warnf("Remnant cleanup failed: %v", err)
		return
	}
	if len(removed) == 0 {
		env.log.Infof("No remnants found.")
	}
}

// UninstallCommandFactory creates a new uninstall command instance
func UninstallCommandFactory() (cli.Command, error) {
	return &UninstallCommand{}, nil
}
