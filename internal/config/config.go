package config

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/pthm/readlevel/internal/grade"
	"github.com/pthm/readlevel/internal/store"
)

// Output formats
const (
	FormatTerminal = "terminal"
	FormatJSON     = "json"
)

// Config is the top-level configuration.
type Config struct {
	// StateFile is where analyzer state is saved
	StateFile string `yaml:"state-file"`
	// Format is the report format (terminal, json)
	Format string `yaml:"format"`
	// Markdown strips markdown syntax before analysis
	Markdown bool `yaml:"markdown"`
	// Exclude lists glob patterns of files to skip
	Exclude []string `yaml:"exclude"`
	// Advise configures the advise command
	Advise AdviseCfg `yaml:"advise"`
}

// AdviseCfg configures rewrite advice requests.
type AdviseCfg struct {
	Model       string `yaml:"model"`
	MaxTokens   int64  `yaml:"max-tokens"`
	TargetGrade string `yaml:"target-grade"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		StateFile: store.DefaultPath,
		Format:    FormatTerminal,
		Advise: AdviseCfg{
			MaxTokens:   1024,
			TargetGrade: "Grade 8",
		},
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatTerminal, FormatJSON:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatTerminal, FormatJSON, c.Format)
	}

	for _, pattern := range c.Exclude {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	if c.Advise.TargetGrade != "" && !grade.IsLabel(c.Advise.TargetGrade) {
		return fmt.Errorf("advise.target-grade %q is not a grade label", c.Advise.TargetGrade)
	}
	if c.Advise.MaxTokens < 0 {
		return fmt.Errorf("advise.max-tokens must not be negative, got %d", c.Advise.MaxTokens)
	}

	return nil
}
