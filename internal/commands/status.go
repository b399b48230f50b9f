package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/aurifex/uepyside/pkg/pip"
)

// StatusCommand handles the status command functionality
type StatusCommand struct{}

// StatusOptions holds command-line options for the status command
type StatusOptions struct {
	CommonOptions
}

// Help returns the help text for the status command
func (c *StatusCommand) Help() string {
	var opts StatusOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "status",
		Description: "Report whether the package is installed and show its metadata.",
		Examples: []Example{
			{Command: BinaryName + " status", Description: "Check if PySide6 is installed"},
			{Command: BinaryName + " status -p shiboken6", Description: "Check a different package"},
		},
		Notes: []string{
			"Availability is determined from site-packages without running pip;",
			"the metadata shown below it comes from pip show.",
			"Exit code 0 when installed, 1 when not.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the status command
func (c *StatusCommand) Synopsis() string {
	return "Show the package's installation status and metadata"
}

// Run executes the status command
func (c *StatusCommand) Run(args []string) int {
	var opts StatusOptions
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
	if spErr != nil || !pip.Probe(sp, pkg) {
		env.log.Infof("%s is not installed in the engine's Python environment.", pkg)
		return 1
	}

	env.log.Infof("%s is installed.", pkg)

	output, err := env.runner().Show(pkg)
	if err != nil {
		env.log.Warnf("Could not retrieve package metadata: %v", err)
		return 0
	}

	info := pip.ParseShow(output)
	fmt.Printf("  Name:     %s\n", info.Name)
	fmt.Printf("  Version:  %s\n", info.Version)
	fmt.Printf("  Location: %s\n", info.Location)
	if info.Summary != "" {
		fmt.Printf("  Summary:  %s\n", info.Summary)
	}
	for _, dep := range info.Requires {
		fmt.Printf("  Requires: %s\n", dep)
	}

	return 0
}

// StatusCommandFactory creates a new status command instance
func StatusCommandFactory() (cli.Command, error) {
	return &StatusCommand{}, nil
}
