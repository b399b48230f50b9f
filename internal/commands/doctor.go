package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mitchellh/cli"

	"github.com/aurifex/uepyside/pkg/applog"
	"github.com/aurifex/uepyside/pkg/config"
	"github.com/aurifex/uepyside/pkg/engine"
	"github.com/aurifex/uepyside/pkg/pip"
)

// DoctorCommand handles the doctor command functionality
type DoctorCommand struct{}

// DoctorOptions holds command-line options for the doctor command
type DoctorOptions struct {
	CommonOptions
}

// Help returns the help text for the doctor command
func (c *DoctorCommand) Help() string {
	var opts DoctorOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = OptionsUsage

	formatter := &HelpFormatter{
		Command:     "doctor",
		Description: "Show what the locator resolves without changing anything.",
		Examples: []Example{
			{Command: BinaryName + " doctor", Description: "Check interpreter discovery"},
			{
				Command:     BinaryName + " doctor --editor-exe /opt/ue/Engine/Binaries/Linux/UnrealEditor",
				Description: "Check discovery from an explicit editor path",
			},
		},
		Notes: []string{
			"Exit codes:",
			"  0: Interpreter and site-packages resolved",
			"  1: Something could not be resolved",
			"  2: Error running doctor command",
		},
	}

	return formatter.FormatHelp(parser)
}

// Synopsis returns a short description of the doctor command
func (c *DoctorCommand) Synopsis() string {
	return "Diagnose embedded interpreter discovery"
}

// Run executes the doctor command
func (c *DoctorCommand) Run(args []string) int {
	var opts DoctorOptions
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

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 2
	}
	if opts.Package != "" {
		cfg.Package = opts.Package
	}
	if opts.EditorExe != "" {
		cfg.EditorExecutable = opts.EditorExe
	}

	log := applog.NewTermLogger(os.Stdout)
	locator := engine.NewLocator(log)

	fmt.Printf("🔍 Checking embedded Python discovery...\n\n")

	editorExe := locator.EditorExecutable(cfg.EditorExecutable)
	fmt.Printf("  Editor executable: %s\n", editorExe)

	python, err := locator.FindInterpreter(editorExe)
	if err != nil {
		fmt.Printf("  Embedded Python:   not found\n")
		log.Errorf("Could not resolve the embedded Python automatically.")
		return 1
	}
	fmt.Printf("  Embedded Python:   %s\n", python)

	sp, err := locator.SitePackages(python)
	if err != nil {
		// Layout derivation failed; the interpreter itself is the fallback
		sp, err = pip.NewRunner(python, log).SitePackages()
	}
	if err != nil {
		fmt.Printf("  Site-packages:     not found\n")
		log.Warnf("Could not resolve site-packages: %v", err)
		return 1
	}
	fmt.Printf("  Site-packages:     %s\n", sp)

	if pip.Probe(sp, cfg.Package) {
		fmt.Printf("  %-18s installed\n", cfg.Package+":")
	} else {
		fmt.Printf("  %-18s not installed\n", cfg.Package+":")
	}

	return 0
}

// DoctorCommandFactory creates a new doctor command instance
func DoctorCommandFactory() (cli.Command, error) {
	return &DoctorCommand{}, nil
}
