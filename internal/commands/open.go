package commands

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/aurifex/uepyside/pkg/sysopen"
)

// OpenCommand handles the open command functionality
type OpenCommand struct{}

// OpenOptions holds command-line options for the open command
type OpenOptions struct {
	CommonOptions
	Terminal bool `short:"t" long:"terminal" description:"Open a terminal instead of the file browser (Windows only)"`
}

// Help returns the help text for the open command
func (c *OpenCommand) Help() string {
	var opts OpenOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "open",
		Description: "Open the embedded Python's folder for manual inspection.",
		Examples: []Example{
			{Command: BinaryName + " open", Description: "Open the folder in the file browser"},
			{Command: BinaryName + " open --terminal", Description: "Open a command prompt there (Windows)"},
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the open command
func (c *OpenCommand) Synopsis() string {
	return "Open the embedded Python's folder"
}

// Run executes the open command
func (c *OpenCommand) Run(args []string) int {
	var opts OpenOptions
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

	folder := env.pythonDir()
	env.log.Infof("Python folder: %s", folder)

	if opts.Terminal {
		if err := sysopen.Terminal(runtime.GOOS, folder); err != nil {
			if errors.Is(err, sysopen.ErrTerminalUnsupported) {
				env.log.Warnf("The terminal helper is Windows-only.")
			} else {
				env.log.Errorf("%v", err)
			}
			return 1
		}
		env.log.Infof("Opening terminal at: %s", folder)
		return 0
	}

	if err := sysopen.Folder(runtime.GOOS, folder); err != nil {
		env.log.Errorf("%v", err)
		return 1
	}
	env.log.Infof("Opening: %s", folder)
	return 0
}

// OpenCommandFactory creates a new open command instance
func OpenCommandFactory() (cli.Command, error) {
	return &OpenCommand{}, nil
}
