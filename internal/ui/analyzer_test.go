package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pthm/readlevel/internal/grade"
)

type fakeSaver struct {
	err   error
	saved int
}

func (f *fakeSaver) Save(*grade.Analyzer) error {
	f.saved++
	return f.err
}

func press(t *testing.T, m AnalyzerModel, k tea.KeyType) AnalyzerModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: k})
	am, ok := next.(AnalyzerModel)
	if !ok {
		t.Fatalf("Update returned %T, want AnalyzerModel", next)
	}
	return am
}

func TestAnalyzerModel_InitialState(t *testing.T) {
	m := NewAnalyzerModel(nil, nil)
	if m.Result() != PromptMessage {
		t.Errorf("Result = %q, want %q", m.Result(), PromptMessage)
	}
	if !strings.Contains(m.View(), PromptMessage) {
		t.Error("View should show the prompt message")
	}
}

func TestAnalyzerModel_Analyze(t *testing.T) {
	m := NewAnalyzerModel(grade.New(), nil)
	m.SetText("Cat.")

	m = press(t, m, tea.KeyCtrlR)
	if m.Result() != "Grade Level: Before Grade 1" {
		t.Errorf("Result = %q, want %q", m.Result(), "Grade Level: Before Grade 1")
	}
	if m.Label() != "Before Grade 1" {
		t.Errorf("Label = %q, want Before Grade 1", m.Label())
	}
	if !strings.Contains(m.View(), "Before Grade 1") {
		t.Error("View should show the label")
	}
}

func TestAnalyzerModel_AnalyzeLongText(t *testing.T) {
	lines := make([]string, 0, 151)
	for i := 0; i < 150; i++ {
		lines = append(lines, "Cat.")
	}
	lines = append(lines, "Internationalization is extraordinarily complicated.")
	text := strings.Join(lines, "\n")

	m := NewAnalyzerModel(grade.New(), nil)
	m.SetText(text)
	m = press(t, m, tea.KeyCtrlR)

	if got := m.input.Value(); got != text {
		t.Errorf("input holds %d lines, want %d", strings.Count(got, "\n")+1, len(lines))
	}
	want, err := grade.New().CalculateGradeLevel(text)
	if err != nil {
		t.Fatalf("CalculateGradeLevel returned error: %v", err)
	}
	if m.Label() != want {
		t.Errorf("Label = %q, want %q", m.Label(), want)
	}
}

func TestAnalyzerModel_AnalyzeBlank(t *testing.T) {
	m := NewAnalyzerModel(grade.New(), nil)
	m.SetText("   ")

	m = press(t, m, tea.KeyF5)
	if m.Result() != EmptyInputMessage {
		t.Errorf("Result = %q, want %q", m.Result(), EmptyInputMessage)
	}
	if m.Label() != "" {
		t.Errorf("Label = %q, want empty", m.Label())
	}
}

func TestAnalyzerModel_Save(t *testing.T) {
	saver := &fakeSaver{}
	m := NewAnalyzerModel(grade.New(), saver)

	m = press(t, m, tea.KeyCtrlS)
	if saver.saved != 1 {
		t.Errorf("saved = %d, want 1", saver.saved)
	}
	if m.Status() != SavedMessage {
		t.Errorf("Status = %q, want %q", m.Status(), SavedMessage)
	}
}

func TestAnalyzerModel_SaveFailure(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	m := NewAnalyzerModel(grade.New(), saver)
	m.SetText("The cat sat.")
	m = press(t, m, tea.KeyCtrlR)

	m = press(t, m, tea.KeyCtrlS)
	if m.Status() != SaveFailedPrefix+"disk full" {
		t.Errorf("Status = %q", m.Status())
	}
	// A failed save leaves the analysis result alone.
	if !strings.HasPrefix(m.Result(), "Grade Level: ") {
		t.Errorf("Result = %q, want a grade level", m.Result())
	}
}

func TestAnalyzerModel_SaveWithoutStore(t *testing.T) {
	m := NewAnalyzerModel(grade.New(), nil)
	m = press(t, m, tea.KeyCtrlS)
	if !strings.HasPrefix(m.Status(), SaveFailedPrefix) {
		t.Errorf("Status = %q, want save failure", m.Status())
	}
}

func TestAnalyzerModel_Clear(t *testing.T) {
	m := NewAnalyzerModel(grade.New(), nil)
	m.SetText("The cat sat.")
	m = press(t, m, tea.KeyCtrlR)

	m = press(t, m, tea.KeyCtrlL)
	if m.Result() != PromptMessage {
		t.Errorf("Result = %q, want %q", m.Result(), PromptMessage)
	}
	m = press(t, m, tea.KeyCtrlR)
	if m.Result() != EmptyInputMessage {
		t.Errorf("Result after clear = %q, want %q", m.Result(), EmptyInputMessage)
	}
}

func TestAnalyzerModel_Typing(t *testing.T) {
	m := NewAnalyzerModel(grade.New(), nil)
	for _, r := range "Cat." {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(AnalyzerModel)
	}

	m = press(t, m, tea.KeyCtrlR)
	if m.Label() != "Before Grade 1" {
		t.Errorf("Label = %q, want Before Grade 1", m.Label())
	}
}

func TestAnalyzerModel_Quit(t *testing.T) {
	m := NewAnalyzerModel(grade.New(), nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestAnalyzerModel_WindowSize(t *testing.T) {
	m := NewAnalyzerModel(grade.New(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	am := next.(AnalyzerModel)
	if am.width != 100 || am.height != 30 {
		t.Errorf("size = %dx%d, want 100x30", am.width, am.height)
	}
}
