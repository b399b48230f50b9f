package commands

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"
)

// ListCommand handles the list command functionality
type ListCommand struct{}

// ListOptions holds command-line options for the list command
type ListOptions struct {
	CommonOptions
}

// Help returns the help text for the list command
func (c *ListCommand) Help() string {
	var opts ListOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "list",
		Description: "List every package installed in the engine's embedded Python.",
		Examples: []Example{
			{Command: BinaryName + " list", Description: "Show all installed packages"},
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the list command
func (c *ListCommand) Synopsis() string {
	return "List packages installed in the engine's embedded Python"
}

// Run executes the list command
func (c *ListCommand) Run(args []string) int {
	var opts ListOptions
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

	output, err := env.runner().List()
	if err != nil {
		env.log.Errorf("Failed to list packages: %v", err)
		return 1
	}

	env.log.Infof("Packages installed in engine Python:")
	fmt.Print(output)
	return 0
}

// ListCommandFactory creates a new list command instance
func ListCommandFactory() (cli.Command, error) {
	return &ListCommand{}, nil
}
