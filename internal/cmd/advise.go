package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pthm/readlevel/internal/advisor"
	"github.com/pthm/readlevel/internal/grade"
	"github.com/pthm/readlevel/internal/source"
	"github.com/spf13/cobra"
)

type adviseOptions struct {
	target   string
	model    string
	markdown bool
}

func newAdviseCmd(a *app) *cobra.Command {
	var opts adviseOptions

	cmd := &cobra.Command{
		Use:   "advise [path]",
		Short: "Ask Claude how to bring a text down to a target grade",
		Long: `Score a text, then ask Claude for rewrites that would bring it closer
to a target grade level. Reads stdin when no path is given.

Requires the ANTHROPIC_API_KEY environment variable.

Examples:
  readlevel advise README.md
  readlevel advise --target "Grade 6" letter.txt
  readlevel advise --format json essay.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.wrap(func(cmd *cobra.Command, args []string) error {
			return a.runAdvise(cmd, args, &opts)
		}),
	}

	cmd.Flags().StringVar(&opts.target, "target", "", `Target grade level label (default from config, "Grade 8")`)
	cmd.Flags().StringVar(&opts.model, "model", "", "Claude model to use")
	cmd.Flags().BoolVarP(&opts.markdown, "markdown", "m", false, "Strip markdown syntax before analysis")

	return cmd
}

type adviseOutput struct {
	Source string          `json:"source"`
	Stats  grade.Stats     `json:"stats"`
	Target string          `json:"target"`
	Advice *advisor.Advice `json:"advice"`
}

func (a *app) runAdvise(cmd *cobra.Command, args []string, opts *adviseOptions) error {
	target := a.cfg.Advise.TargetGrade
	if cmd.Flags().Changed("target") {
		target = opts.target
	}
	if !grade.IsLabel(target) {
		return fmt.Errorf("unknown target grade %q", target)
	}

	model := a.cfg.Advise.Model
	if cmd.Flags().Changed("model") {
		model = opts.model
	}

	adv, err := advisor.New(advisor.Options{
		APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		Model:     model,
		MaxTokens: a.cfg.Advise.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("failed to create advisor: %w", err)
	}

	resolver := &source.Resolver{
		Markdown: a.cfg.Markdown,
		Stdin:    cmd.InOrStdin(),
	}
	if cmd.Flags().Changed("markdown") {
		resolver.Markdown = opts.markdown
	}
	inputs, err := resolver.Resolve(args)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(inputs) != 1 {
		return fmt.Errorf("advise needs exactly one text, got %d", len(inputs))
	}
	in := inputs[0]

	stats, err := a.store.Load().Analyze(in.Text)
	if err != nil {
		if errors.Is(err, grade.ErrInvalidInput) {
			return fmt.Errorf("%s: %w", in.Name, err)
		}
		return fmt.Errorf("failed to analyze %s: %w", in.Name, err)
	}

	spinner := a.ui.StartSimpleSpinner(a.ui.ErrWriter, "Asking Claude for suggestions...")
	advice, err := adv.Advise(cmd.Context(), advisor.Request{
		Text:   in.Text,
		Stats:  stats,
		Target: target,
	})
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("failed to get advice: %w", err)
	}

	if a.ui.IsJSON() {
		encoder := json.NewEncoder(a.ui.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(adviseOutput{
			Source: in.Name,
			Stats:  stats,
			Target: target,
			Advice: advice,
		})
	}

	a.printAdvice(in.Name, stats, target, advice)
	return nil
}

func (a *app) printAdvice(name string, stats grade.Stats, target string, advice *advisor.Advice) {
	s := a.ui.Styles
	w := a.ui.Writer

	fmt.Fprintln(w, s.Path.Render(name))
	fmt.Fprintf(w, "Grade Level: %s  Target: %s\n", s.Label(stats.Label), s.Label(target))
	if advice.Summary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, advice.Summary)
	}

	if len(advice.Suggestions) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Dim.Render("No suggestions"))
		return
	}

	for i, sug := range advice.Suggestions {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("Suggestion %d", i+1)))
		fmt.Fprintf(w, "  %s %s\n", s.Dim.Render("before:"), sug.Original)
		fmt.Fprintf(w, "  %s %s\n", s.Success.Render("after: "), sug.Rewrite)
		if sug.Rationale != "" {
			fmt.Fprintf(w, "  %s\n", s.Dim.Render(sug.Rationale))
		}
	}
}
