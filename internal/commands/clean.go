package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/aurifex/uepyside/pkg/pip"
)

// CleanCommand handles the clean command functionality
type CleanCommand struct{}

// CleanOptions holds command-line options for the clean command
type CleanOptions struct {
	CommonOptions
}

// Help returns the help text for the clean command
func (c *CleanCommand) Help() string {
	var opts CleanOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "clean",
		Description: "Remove leftover package files from the engine's site-packages.",
		Examples: []Example{
			{Command: BinaryName + " clean", Description: "Sweep PySide6/shiboken6 remnants"},
			{Command: BinaryName + " clean --verbose", Description: "Show what is being swept"},
		},
		Notes: []string{
			"Only entries matching the configured remnant patterns are removed.",
			"Each removal failure is a warning; the sweep always continues.",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the clean command
func (c *CleanCommand) Synopsis() string {
	return "Remove leftover package files from site-packages"
}

// Run executes the clean command
func (c *CleanCommand) Run(args []string) int {
	var opts CleanOptions
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

	sp, err := env.sitePackages()
	if err != nil {
		env.log.Errorf("Failed to resolve site-packages: %v", err)
		return 1
	}
	if opts.Verbose {
		env.log.Infof("Sweeping %s", sp)
	}

	removed, err := pip.Cleanup(sp, env.cfg.RemnantPatterns, env.log)
	if err != nil {
		env.log.Errorf("Cleanup failed: %v", err)
		return 1
	}

	if len(removed) == 0 {
		env.log.Infof("No remnants found.")
	} else {
		env.log.Infof("Removed %d leftover entries.", len(removed))
	}
	return 0
}

// CleanCommandFactory creates a new clean command instance
func CleanCommandFactory() (cli.Command, error) {
	return &CleanCommand{}, nil
}
