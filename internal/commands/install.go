package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/aurifex/uepyside/pkg/pip"
)

// InstallCommand handles the install command functionality
type InstallCommand struct{}

// InstallOptions holds command-line options for the install command
type InstallOptions struct {
	CommonOptions
	Force bool `short:"f" long:"force" description:"Reinstall even if the package is already available"`
}

// Help returns the help text for the install command
func (c *InstallCommand) Help() string {
	var opts InstallOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "install",
		Description: "Install the configured package into the engine's embedded Python.",
		Examples: []Example{
			{Command: BinaryName + " install", Description: "Install PySide6 if not already present"},
			{Command: BinaryName + " install --force", Description: "Reinstall even when already present"},
			{Command: BinaryName + " install -p PySide2", Description: "Install a different package"},
		},
		Notes: []string{
			"Installs into the Engine's embedded Python site-packages, which",
			"requires write permission to the Engine install directory.",
			"Already-installed packages are accepted as-is; no version is pinned.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the install command
func (c *InstallCommand) Synopsis() string {
	return "Install the package into the engine's embedded Python"
}

// Run executes the install command
func (c *InstallCommand) Run(args []string) int {
	var opts InstallOptions
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

	if !opts.Force {
		if sp, spErr := env.sitePackages(); spErr == nil && pip.Probe(sp, pkg) {
			env.log.Infof("%s already available.", pkg)
			return 0
		}
		env.log.Warnf("%s not found. Attempting installation...", pkg)
	}

	extraArgs := append([]string{}, env.cfg.PipArgs...)
	if opts.Force {
		// pip treats a plain install of a present package as satisfied
		extraArgs = append(extraArgs, "--force-reinstall")
	}

	if err := env.runner().Install(pkg, extraArgs...); err != nil {
		env.log.Errorf("pip failed: %v", err)
		return 1
	}

	env.log.Infof("Installed %s into the engine Python site-packages.", pkg)
	return 0
}

// InstallCommandFactory creates a new install command instance
func InstallCommandFactory() (cli.Command, error) {
	return &InstallCommand{}, nil
}
