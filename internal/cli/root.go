// Package cli wires the todo command tree: it resolves configuration, opens
// the task store and prints results.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/exitcode"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/todo"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Version is reported by `todo --version`.
var Version = "0.1.0"

// Options tune where the CLI reads and writes.
type Options struct {
	Stdout, Stderr io.Writer
	// WorkDir locates todo.toml and relative store paths. Empty means the process working directory.
	WorkDir string
	// Interactive runs the task browser; defaults to tui.Run.
	Interactive func(*todo.Store, ui.Theme) (int, error)
}

// rootFlags mirror the config keys; only flags set on the command line override the file.
type rootFlags struct {
	config    string
	file      string
	theme     string
	noColor   bool
	logLevel  string
	logFormat string
}

// app is the per-invocation state shared by every subcommand.
type app struct {
	opt     Options
	flags   rootFlags
	cfg     config.Config
	logger  *log.Logger
	printer *ui.Printer
}

// configError marks failures that happen before a command can run.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error  { return e.err }

// Run executes one command and returns its exit code.
func Run(args []string, opt Options) int {
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Interactive == nil {
		opt.Interactive = func(s *todo.Store, t ui.Theme) (int, error) { return tui.Run(s, t) }
	}

	a := &app{opt: opt}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(opt.Stdout)
	root.SetErr(opt.Stderr)

	err := root.Execute()
	if err == nil {
		return exitcode.Success
	}
	return a.report(err)
}

// report prints err and maps it to an exit code.
func (a *app) report(err error) int {
	p := a.printer
	if p == nil {
		p = ui.NewPrinter(a.opt.Stdout, a.opt.Stderr, ui.ThemeByName(""))
	}
	p.Fail(err.Error())

	var cfgErr *configError
	switch kind := todo.KindOf(err); {
	case kind == todo.KindParse:
		p.Hint("Usage: todo complete <INDEX>")
		return exitcode.Usage
	case kind == todo.KindOutOfBounds:
		p.Hint("Hint: run `todo list` to see valid indexes")
		return exitcode.Failure
	case kind != 0:
		return exitcode.Failure
	case errors.As(err, &cfgErr):
		return exitcode.Failure
	default:
		p.Hint("Run 'todo --help' for usage.")
		return exitcode.Usage
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "todo",
		Short:         "A command-line interface for managing a todo list",
		Long:          "todo keeps an ordered list of tasks in a JSON file in the current directory.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			a.printer.Info("No subcommand was used, use -h, --help to see available subcommands")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.config, "config", "", "config file (default ./"+config.DefaultConfigFile+" when present)")
	pf.StringVarP(&a.flags.file, "file", "f", jsonstore.DefaultFileName, "task store file")
	pf.StringVar(&a.flags.theme, "theme", "classic", "output theme: classic, neon or mono")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&a.flags.logFormat, "log-format", "text", "log format: text, json or logfmt")

	root.AddCommand(
		newAddCommand(a),
		newCompleteCommand(a),
		newDeleteCompletedCommand(a),
		newListCommand(a),
	)
	return root
}

// setup resolves configuration (defaults, file, flags) and builds the logger and printer.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, used, err := config.Load(a.flags.config, a.opt.WorkDir)
	if err != nil {
		return &configError{err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = a.flags.file
	}
	if flags.Changed("theme") {
		cfg.Theme = a.flags.theme
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.flags.noColor
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.flags.logFormat
	}
	a.cfg = cfg

	opts := logging.DefaultOptions()
	opts.Writer = a.opt.Stderr
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	opts.Formatter = logging.ParseFormatter(cfg.LogFormat)
	a.logger = logging.New(opts)
	if used != "" {
		a.logger.Debug("loaded config file", "path", used)
	}

	a.printer = ui.NewPrinter(a.opt.Stdout, a.opt.Stderr, a.theme())
	return nil
}

func (a *app) theme() ui.Theme {
	t := ui.ThemeByName(a.cfg.Theme)
	if a.cfg.NoColor {
		t = t.Plain()
	}
	return t
}

// storePath resolves the configured store file against WorkDir.
func (a *app) storePath() string {
	p := a.cfg.File
	if !filepath.IsAbs(p) && a.opt.WorkDir != "" {
		p = filepath.Join(a.opt.WorkDir, p)
	}
	return p
}

func (a *app) openStore() (*todo.Store, error) {
	path := a.storePath()
	a.logger.Debug("opening store", "path", path)
	s, err := todo.Open(jsonstore.NewFileBackend(path), a.logger)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return s, nil
}
