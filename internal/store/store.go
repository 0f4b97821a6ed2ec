// Package store persists analyzer state between sessions.
//
// The analyzer is stateless, so the saved record only carries a format
// version and an empty settings block reserved for future options.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pthm/readlevel/internal/grade"
	"github.com/pthm/readlevel/internal/log"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the state file used when none is configured
const DefaultPath = "grade_level_data.yml"

// CurrentVersion is the state format written by Save
const CurrentVersion = 1

// ErrPersistence matches every *PersistenceError via errors.Is
var ErrPersistence = errors.New("persistence error")

// PersistenceError reports a failed state read or write
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s state %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrPersistence) hold for any PersistenceError
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// AnalyzerState holds analyzer settings. Empty for now.
type AnalyzerState struct{}

// State is the on-disk record
type State struct {
	Version  int           `yaml:"version"`
	SavedAt  time.Time     `yaml:"saved-at"`
	Analyzer AnalyzerState `yaml:"analyzer"`
}

// NewAnalyzer builds the analyzer described by the state
func (s State) NewAnalyzer() *grade.Analyzer {
	return grade.New()
}

// Store reads and writes the state file at Path
type Store struct {
	Path string
	Log  log.Logger

	now func() time.Time
}

// New creates a store for path. An empty path means DefaultPath and a nil
// logger discards warnings.
func New(path string, logger log.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Store{Path: path, Log: logger, now: time.Now}
}

// Save writes the analyzer's state. The file is replaced atomically so a
// failed save never leaves a truncated state behind.
func (s *Store) Save(a *grade.Analyzer) error {
	if a == nil {
		return &PersistenceError{Op: "save", Path: s.Path, Err: errors.New("no analyzer")}
	}

	state := State{
		Version:  CurrentVersion,
		SavedAt:  s.now().UTC().Truncate(time.Second),
		Analyzer: AnalyzerState{},
	}

	data, err := yaml.Marshal(&state)
	if err != nil {
		return &PersistenceError{Op: "encode", Path: s.Path, Err: err}
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".readlevel-state-*")
	if err != nil {
		return &PersistenceError{Op: "save", Path: s.Path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "save", Path: s.Path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "save", Path: s.Path, Err: err}
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return &PersistenceError{Op: "save", Path: s.Path, Err: err}
	}

	s.Log.Debug("state saved", "path", s.Path, "version", state.Version)
	return nil
}

// Read loads and validates the state file
func (s *Store) Read() (State, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return State{}, &PersistenceError{Op: "read", Path: s.Path, Err: err}
	}

	var state State
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&state); err != nil {
		return State{}, &PersistenceError{Op: "decode", Path: s.Path, Err: err}
	}
	if state.Version != CurrentVersion {
		return State{}, &PersistenceError{
			Op:   "decode",
			Path: s.Path,
			Err:  fmt.Errorf("unsupported state version %d", state.Version),
		}
	}

	return state, nil
}

// Load returns the saved analyzer, or a fresh one when there is no saved
// state or it cannot be read. Unreadable state is logged as a warning.
func (s *Store) Load() *grade.Analyzer {
	state, err := s.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Log.Debug("no saved state", "path", s.Path)
		} else {
			s.Log.Warn("error loading saved data, starting fresh", "path", s.Path, "error", err)
		}
		return grade.New()
	}
	return state.NewAnalyzer()
}

// Reset removes the state file. A missing file is not an error.
func (s *Store) Reset() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &PersistenceError{Op: "reset", Path: s.Path, Err: err}
	}
	return nil
}
