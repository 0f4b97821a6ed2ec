package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm/readlevel/internal/store"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `state-file: state/readlevel.yml
format: json
markdown: true
exclude:
  - "vendor/**"
  - "*.tmp"
advise:
  model: claude-3-5-haiku-20241022
  max-tokens: 512
  target-grade: Grade 6
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	t.Run("state-file", func(t *testing.T) {
		want := filepath.Join(dir, "state", "readlevel.yml")
		if cfg.StateFile != want {
			t.Errorf("StateFile = %q, want %q", cfg.StateFile, want)
		}
	})

	t.Run("format", func(t *testing.T) {
		if cfg.Format != FormatJSON {
			t.Errorf("Format = %q, want json", cfg.Format)
		}
		if !cfg.Markdown {
			t.Error("Markdown should be true")
		}
	})

	t.Run("exclude", func(t *testing.T) {
		if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "vendor/**" {
			t.Errorf("Exclude = %v", cfg.Exclude)
		}
	})

	t.Run("advise", func(t *testing.T) {
		if cfg.Advise.MaxTokens != 512 {
			t.Errorf("MaxTokens = %d, want 512", cfg.Advise.MaxTokens)
		}
		if cfg.Advise.TargetGrade != "Grade 6" {
			t.Errorf("TargetGrade = %q, want Grade 6", cfg.Advise.TargetGrade)
		}
	})
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "markdown: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Format != FormatTerminal {
		t.Errorf("Format = %q, want terminal", cfg.Format)
	}
	if filepath.Base(cfg.StateFile) != store.DefaultPath {
		t.Errorf("StateFile = %q, want default", cfg.StateFile)
	}
	if cfg.Advise.TargetGrade != "Grade 8" {
		t.Errorf("TargetGrade = %q, want Grade 8", cfg.Advise.TargetGrade)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "format: [", "parsing config file"},
		{"bad format", "format: xml\n", "format must be"},
		{"bad target grade", "advise:\n  target-grade: Grade 13\n", "not a grade label"},
		{"bad exclude", "exclude:\n  - \"[\"\n", "invalid exclude pattern"},
		{"negative tokens", "advise:\n  max-tokens: -1\n", "max-tokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_NonexistentFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestDiscover_FindsInParentDir(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "format: json\n")
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(sub)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if got != want {
		t.Errorf("Discover = %q, want %q", got, want)
	}
}

func TestDiscover_StopsAtGitBoundary(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "format: json\n")
	repo := filepath.Join(root, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(repo)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if got != "" {
		t.Errorf("Discover = %q, want empty (stopped at .git)", got)
	}
}

func TestResolve_DefaultsWhenNothingFound(t *testing.T) {
	repo := t.TempDir()
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := Resolve("", repo)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if cfg.StateFile != store.DefaultPath {
		t.Errorf("StateFile = %q, want %q", cfg.StateFile, store.DefaultPath)
	}
}

func TestDefaults_Valid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Errorf("Defaults().Validate() = %v", err)
	}
}
