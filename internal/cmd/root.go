package cmd

import (
	"fmt"
	"os"

	"github.com/pthm/readlevel/internal/config"
	"github.com/pthm/readlevel/internal/log"
	"github.com/pthm/readlevel/internal/store"
	"github.com/pthm/readlevel/internal/ui"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags
type globalOptions struct {
	verbose    bool
	format     string
	statePath  string
	configPath string
}

// app is the state shared by every command once flags and config are loaded
type app struct {
	opts globalOptions

	cfg   *config.Config
	ui    *ui.UI
	log   log.Logger
	store *store.Store
}

// RootCmd is the readlevel command tree
var RootCmd = NewRootCmd()

// NewRootCmd builds a fresh command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "readlevel",
		Short: "Estimate the reading grade level of English text",
		Long: `readlevel scores English text with the Flesch-Kincaid grade level
formula and maps the score to a school grade, from "Before Grade 1" up
to "Graduate Level".

Text can come from files, glob patterns, stdin, or the interactive
analyzer. Markdown can be stripped before scoring, and Claude can
suggest rewrites that bring a text down to a target grade.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false, "Enable verbose output")
	root.PersistentFlags().StringVarP(&a.opts.format, "format", "f", config.FormatTerminal, "Output format (terminal, json)")
	root.PersistentFlags().StringVar(&a.opts.statePath, "state", "", "Path to the analyzer state file")
	root.PersistentFlags().StringVar(&a.opts.configPath, "config", "", "Path to a .readlevel.yml config file")

	root.AddCommand(
		newAnalyzeCmd(a),
		newUICmd(a),
		newStateCmd(a),
		newAdviseCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads config, applies flag overrides and builds the shared UI,
// logger and store
func (a *app) setup(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, cfgPath, err := config.Resolve(a.opts.configPath, wd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.opts.format
	}
	if flags.Changed("state") {
		cfg.StateFile = a.opts.statePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := log.New(log.Options{
		Output:  cmd.ErrOrStderr(),
		Verbose: a.opts.verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.cfg = cfg
	a.log = logger
	a.ui = ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Format)
	a.store = store.New(cfg.StateFile, logger)

	if cfgPath != "" {
		a.log.Debug("loaded config", "path", cfgPath)
	}
	a.log.Debug("using state file", "path", cfg.StateFile)
	return nil
}

// wrap closes the logger once the command has run, whether or not it
// failed
func (a *app) wrap(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() {
			if a.log != nil {
				_ = a.log.Close()
			}
		}()
		return run(cmd, args)
	}
}

// warn prints a styled warning to stderr
func (a *app) warn(format string, args ...any) {
	fmt.Fprintln(a.ui.ErrWriter, a.ui.Styles.Warning.Render(
		fmt.Sprintf("%s %s", a.ui.Styles.IconWarning, fmt.Sprintf(format, args...)),
	))
}
