package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/readlevel/internal/grade"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style

	// Grade band styles
	Easy     lipgloss.Style
	Moderate lipgloss.Style
	Hard     lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Path      lipgloss.Style
	Dim       lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError   string
	IconWarning string
	IconInfo    string
	IconSuccess string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Info = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))    // Blue
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green

		s.Easy = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))     // Green
		s.Moderate = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")) // Yellow
		s.Hard = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))      // Red

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))               // Gray
		s.Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconError = "\u2717"   // ✗
		s.IconWarning = "\u26a0" // ⚠
		s.IconInfo = "\u2139"    // ℹ
		s.IconSuccess = "\u2713" // ✓
	} else {
		s.Error = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Info = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()

		s.Easy = lipgloss.NewStyle()
		s.Moderate = lipgloss.NewStyle()
		s.Hard = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.Dim = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconError = "ERROR:"
		s.IconWarning = "WARN:"
		s.IconInfo = "INFO:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Label renders a grade label colored by difficulty: up to Grade 8 is easy,
// up to Grade 12 moderate, anything beyond hard.
func (s *Styles) Label(label string) string {
	labels := grade.Labels()
	for i, l := range labels {
		if l != label {
			continue
		}
		switch {
		case i <= 8:
			return s.Easy.Render(label)
		case i <= 12:
			return s.Moderate.Render(label)
		default:
			return s.Hard.Render(label)
		}
	}
	return label
}
