package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pthm/readlevel/internal/reporter"
	"github.com/pthm/readlevel/internal/source"
	"github.com/pthm/readlevel/internal/ui"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	text     string
	markdown bool
	exclude  []string
	stats    bool
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Report the grade level of text",
		Long: `Report the Flesch-Kincaid grade level of files, glob patterns, or stdin.

Directories are searched for .txt, .md and .markdown files. With no
paths, or a path of "-", text is read from stdin.

Examples:
  readlevel analyze essay.txt
  readlevel analyze 'docs/**/*.md' --exclude 'docs/api/**'
  readlevel analyze --text "The cat sat on the mat."
  cat notes.md | readlevel analyze --markdown --stats
  readlevel analyze --format json docs > report.json`,
		RunE: a.wrap(func(cmd *cobra.Command, args []string) error {
			return a.runAnalyze(cmd, args, &opts)
		}),
	}

	cmd.Flags().StringVarP(&opts.text, "text", "t", "", "Analyze this text instead of files")
	cmd.Flags().BoolVarP(&opts.markdown, "markdown", "m", false, "Strip markdown syntax before analysis")
	cmd.Flags().StringSliceVarP(&opts.exclude, "exclude", "x", nil, "Glob patterns of files to skip")
	cmd.Flags().BoolVarP(&opts.stats, "stats", "s", false, "Show sentence, word and syllable counts")

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOptions) error {
	textGiven := cmd.Flags().Changed("text")
	if textGiven && len(args) > 0 {
		return errors.New("--text cannot be combined with paths")
	}

	resolver := &source.Resolver{
		Exclude:  append(slices.Clone(a.cfg.Exclude), opts.exclude...),
		Markdown: a.cfg.Markdown,
		Stdin:    cmd.InOrStdin(),
	}
	if cmd.Flags().Changed("markdown") {
		resolver.Markdown = opts.markdown
	}

	// The progress display reads keys from stdin, so it only runs for file
	// batches.
	var progress *ui.ProgressController
	if !textGiven && len(args) > 0 && !slices.Contains(args, "-") {
		progress = a.ui.StartProgress()
	}
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	progress.SetStage(ui.StageResolve)

	var inputs []source.Input
	if textGiven {
		inputs = []source.Input{resolver.FromText("text", opts.text)}
	} else {
		var err error
		inputs, err = resolver.Resolve(args)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
	if len(inputs) == 0 {
		return errors.New("no matching files to analyze")
	}
	a.log.Debug("resolved inputs", "count", len(inputs))

	progress.SetStage(ui.StageAnalyze)
	progress.SetFileCount(len(inputs))

	analyzer := a.store.Load()
	results := make([]reporter.Result, 0, len(inputs))
	failed := 0
	for _, in := range inputs {
		progress.FileStart(in.Name)
		stats, err := analyzer.Analyze(in.Text)
		if err != nil {
			failed++
			a.log.Debug("analysis failed", "source", in.Name, "error", err)
		}
		results = append(results, reporter.Result{Source: in.Name, Stats: stats, Err: err})
		progress.FileDone()
	}

	// Stop progress before reporting
	if progress != nil {
		progress.Done(nil)
		progress = nil
	}

	var rep reporter.Reporter
	if a.ui.IsJSON() {
		rep = reporter.NewJSONReporter(a.ui.Writer)
	} else {
		rep = reporter.NewTerminalReporter(a.ui.Writer, a.ui, opts.stats)
	}
	if err := rep.Report(results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if failed > 0 && len(results) > 1 {
		a.warn("%d of %d texts could not be analyzed", failed, len(results))
	}
	return nil
}
