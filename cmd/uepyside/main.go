// Package main provides the uepyside command-line tool, which manages the
// PySide6 package inside Unreal Engine's embedded Python environment.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/aurifex/uepyside/internal/commands"
)

// Version information set by GoReleaser
var (
	version = "dev"
	commit  = "none"    //nolint:unused // Set by GoReleaser
	date    = "unknown" //nolint:unused // Set by GoReleaser
)

func main() {
	c := cli.NewCLI("uepyside", version)
	c.Args = os.Args[1:]
	c.HelpFunc = customHelpFunc
	c.Commands = map[string]cli.CommandFactory{
		"clean":     commands.CleanCommandFactory,
		"doctor":    commands.DoctorCommandFactory,
		"install":   commands.InstallCommandFactory,
		"list":      commands.ListCommandFactory,
		"open":      commands.OpenCommandFactory,
		"status":    commands.StatusCommandFactory,
		"uninstall": commands.UninstallCommandFactory,
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitStatus)
}

// customHelpFunc renders the top-level help with every command listed
func customHelpFunc(cmdFactories map[string]cli.CommandFactory) string {
	var commandNames []string
	for name := range cmdFactories {
		commandNames = append(commandNames, name)
	}
	sort.Strings(commandNames)

	usageLine := "usage: uepyside [-h] [--version]\n"
	usageLine += "                {"
	usageLine += strings.Join(commandNames, ",")
	usageLine += "}\n                ...\n"

	helpText := usageLine + `
Manage the PySide6 package inside Unreal Engine's embedded Python.

positional arguments:
  {` + strings.Join(commandNames, ",") + `}
    clean               Remove leftover package files from site-packages
    doctor              Diagnose embedded interpreter discovery
    install             Install the package into the engine's embedded Python
    list                List packages installed in the engine's embedded Python
    open                Open the embedded Python's folder
    status              Show the package's installation status and metadata
    uninstall           Uninstall the package from the engine's embedded Python

optional arguments:
  -h, --help            show this help message and exit
  --version             show program's version number and exit
`

	return helpText
}
