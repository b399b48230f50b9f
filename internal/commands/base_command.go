package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aurifex/uepyside/pkg/applog"
	"github.com/aurifex/uepyside/pkg/config"
	"github.com/aurifex/uepyside/pkg/engine"
	"github.com/aurifex/uepyside/pkg/pip"
)

// CommonOptions defines options shared across all commands
type CommonOptions struct {
	Config    string `short:"c" long:"config"     description:"Path to config file"                        default:".uepyside.yaml"`
	Package   string `short:"p" long:"package"    description:"Package to manage (overrides config)"`
	EditorExe string `          long:"editor-exe" description:"Path to the UnrealEditor executable"`
	Verbose   bool   `short:"v" long:"verbose"    description:"Enable verbose output"`
	Help      bool   `short:"h" long:"help"       description:"Show this help message"`
}

// toolEnv bundles everything a command needs to act on the embedded
// interpreter: merged configuration, logger, locator, and the resolved
// interpreter path.
type toolEnv struct {
	cfg     *config.Config
	log     applog.Logger
	locator *engine.Locator
	python  string
}

// setupEnvironment loads configuration, applies flag overrides, and resolves
// the embedded interpreter. The interpreter-not-found case is logged here and
// returned as an error so every command aborts the same way.
func setupEnvironment(opts CommonOptions) (*toolEnv, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.Package != "" {
		cfg.Package = opts.Package
	}
	if opts.EditorExe != "" {
		cfg.EditorExecutable = opts.EditorExe
	}

	log := applog.NewTermLogger(os.Stdout)
	locator := engine.NewLocator(log)

	editorExe := locator.EditorExecutable(cfg.EditorExecutable)
	if opts.Verbose {
		log.Infof("Editor executable: %s", editorExe)
	}

	python, err := locator.FindInterpreter(editorExe)
	if err != nil {
		log.Errorf("No embedded Python found.")
		return nil, err
	}
	if opts.Verbose {
		log.Infof("Embedded Python: %s", python)
	}

	return &toolEnv{cfg: cfg, log: log, locator: locator, python: python}, nil
}

// runner creates a pip runner bound to the resolved interpreter
func (te *toolEnv) runner() *pip.Runner {
	return pip.NewRunner(te.python, te.log)
}

// pythonDir returns the directory holding the resolved interpreter
func (te *toolEnv) pythonDir() string {
	return filepath.Dir(te.python)
}

// sitePackages resolves the interpreter's site-packages directory, deriving
// it from the on-disk layout first and asking the interpreter as a fallback
func (te *toolEnv) sitePackages() (string, error) {
	if sp, err := te.locator.SitePackages(te.python); err == nil {
		return sp, nil
	}
	return te.runner().SitePackages()
}
