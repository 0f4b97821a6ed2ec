package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pthm/readlevel/internal/grade"
)

// Messages shown on the result and status lines
const (
	PromptMessage       = "Enter text to analyze"
	EmptyInputMessage   = "Please enter some text to analyze"
	AnalysisErrorResult = "Error in analysis"
	SavedMessage        = "Analysis data saved successfully"
	SaveFailedPrefix    = "Failed to save data: "
)

// Saver persists analyzer state on request
type Saver interface {
	Save(a *grade.Analyzer) error
}

type resultKind int

const (
	resultPrompt resultKind = iota
	resultLabel
	resultError
)

// AnalyzerModel is the bubbletea model for the interactive analyzer.
// Analysis and saving run synchronously inside Update.
type AnalyzerModel struct {
	analyzer *grade.Analyzer
	saver    Saver

	input  textarea.Model
	help   help.Model
	keys   analyzerKeyMap
	styles analyzerStyles

	result     string
	resultKind resultKind
	label      string
	status     string
	statusErr  bool

	width    int
	height   int
	quitting bool
}

type analyzerKeyMap struct {
	Analyze key.Binding
	Save    key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap
func (k analyzerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Analyze, k.Save, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap
func (k analyzerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type analyzerStyles struct {
	title   lipgloss.Style
	prompt  lipgloss.Style
	label   lipgloss.Style
	err     lipgloss.Style
	status  lipgloss.Style
	frame   lipgloss.Style
	success lipgloss.Style
}

func defaultAnalyzerKeyMap() analyzerKeyMap {
	return analyzerKeyMap{
		Analyze: key.NewBinding(
			key.WithKeys("ctrl+r", "f5"),
			key.WithHelp("ctrl+r", "analyze"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s", "f2"),
			key.WithHelp("ctrl+s", "save"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func defaultAnalyzerStyles() analyzerStyles {
	return analyzerStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Padding(0, 1),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// NewAnalyzerModel creates the interactive analyzer. saver may be nil, in
// which case saving reports a failure.
func NewAnalyzerModel(analyzer *grade.Analyzer, saver Saver) AnalyzerModel {
	if analyzer == nil {
		analyzer = grade.New()
	}

	ta := textarea.New()
	ta.Placeholder = "Paste or type text here..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(10)
	ta.Focus()

	return AnalyzerModel{
		analyzer: analyzer,
		saver:    saver,
		input:    ta,
		help:     help.New(),
		keys:     defaultAnalyzerKeyMap(),
		styles:   defaultAnalyzerStyles(),
		result:   PromptMessage,
	}
}

// Init initializes the model
func (m AnalyzerModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m AnalyzerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Analyze):
			m.analyze()
			return m, nil

		case key.Matches(msg, m.keys.Save):
			m.save()
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			m.result, m.resultKind, m.label = PromptMessage, resultPrompt, ""
			m.status, m.statusErr = "", false
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.SetWidth(max(msg.Width-4, 20))
		// title, result, blank, frame border (2), status, help
		m.input.SetHeight(max(msg.Height-8, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// analyze runs the core on the current text and updates the result line
func (m *AnalyzerModel) analyze() {
	label, err := m.analyzer.CalculateGradeLevel(m.input.Value())
	switch {
	case errors.Is(err, grade.ErrInvalidInput):
		m.result, m.resultKind, m.label = EmptyInputMessage, resultPrompt, ""
	case err != nil:
		m.result, m.resultKind, m.label = AnalysisErrorResult, resultError, ""
		m.status, m.statusErr = err.Error(), true
	default:
		m.result, m.resultKind, m.label = "Grade Level: "+label, resultLabel, label
	}
}

func (m *AnalyzerModel) save() {
	if m.saver == nil {
		m.status, m.statusErr = SaveFailedPrefix+"no state store configured", true
		return
	}
	if err := m.saver.Save(m.analyzer); err != nil {
		m.status, m.statusErr = SaveFailedPrefix+err.Error(), true
		return
	}
	m.status, m.statusErr = SavedMessage, false
}

// SetText replaces the text in the input area
func (m *AnalyzerModel) SetText(text string) {
	m.input.SetValue(text)
}

// Result returns the current result line
func (m AnalyzerModel) Result() string { return m.result }

// Label returns the last computed grade label, or "" if there is none
func (m AnalyzerModel) Label() string { return m.label }

// Status returns the current status line
func (m AnalyzerModel) Status() string { return m.status }

// View renders the analyzer
func (m AnalyzerModel) View() string {
	if m.quitting {
		return ""
	}

	var result string
	switch m.resultKind {
	case resultLabel:
		result = m.styles.prompt.Render("Grade Level: ") + m.styles.label.Render(m.label)
	case resultError:
		result = m.styles.err.Render(m.result)
	default:
		result = m.styles.prompt.Render(m.result)
	}

	status := m.styles.status.Render(m.status)
	if m.statusErr {
		status = m.styles.err.Render(m.status)
	} else if m.status == SavedMessage {
		status = m.styles.success.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render("Reading Level Analyzer"),
		result,
		m.styles.frame.Render(m.input.View()),
		status,
		m.help.View(m.keys),
	)
}
