// Package source resolves command-line arguments into texts to analyze.
package source

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	"github.com/pthm/readlevel/internal/mdtext"
)

// StdinName is the Input name used for text read from stdin
const StdinName = "<stdin>"

// Input is one text to analyze
type Input struct {
	Name string
	Text string
}

// Resolver turns arguments into inputs
type Resolver struct {
	// Exclude lists glob patterns; matching files are skipped
	Exclude []string
	// Markdown strips markdown syntax from every input. Files ending in
	// .md or .markdown are always stripped.
	Markdown bool
	// Stdin is read when there are no arguments or an argument is "-"
	Stdin io.Reader

	excludes []glob.Glob
}

// Resolve reads every input named by args. Arguments may be files,
// directories (walked for text and markdown files) or doublestar glob
// patterns. File inputs are deduplicated and sorted; stdin comes first.
func (r *Resolver) Resolve(args []string) ([]Input, error) {
	excludes, err := compileExcludes(r.Exclude)
	if err != nil {
		return nil, err
	}
	r.excludes = excludes

	if len(args) == 0 {
		args = []string{"-"}
	}

	var inputs []Input
	var paths []string
	seen := make(map[string]bool)
	addFile := func(path string) {
		if r.excluded(path) {
			return
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			paths = append(paths, path)
		}
	}

	readStdin := false
	for _, arg := range args {
		if arg == "-" {
			readStdin = true
			continue
		}
		if err := r.resolveArg(arg, addFile); err != nil {
			return nil, err
		}
	}

	if readStdin {
		in, err := r.readStdin()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}

	sort.Strings(paths)
	for _, path := range paths {
		in, err := r.readFile(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}

	return inputs, nil
}

// FromText wraps a literal string as an input
func (r *Resolver) FromText(name, text string) Input {
	if r.Markdown {
		text = mdtext.PlainText([]byte(text))
	}
	return Input{Name: name, Text: text}
}

func (r *Resolver) resolveArg(arg string, addFile func(string)) error {
	if hasGlobChars(arg) {
		return r.resolveGlob(arg, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}
	if info.IsDir() {
		return walkDir(arg, addFile)
	}

	addFile(arg)
	return nil
}

func (r *Resolver) resolveGlob(pattern string, addFile func(string)) error {
	base, pat := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(pat) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(filepath.FromSlash(base)), pat)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	for _, m := range matches {
		path := filepath.Join(filepath.FromSlash(base), filepath.FromSlash(m))
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := walkDir(path, addFile); err != nil {
				return err
			}
			continue
		}
		addFile(path)
	}
	return nil
}

func (r *Resolver) readFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)
	if r.Markdown || isMarkdown(path) {
		text = mdtext.PlainText(data)
	}
	return Input{Name: path, Text: text}, nil
}

func (r *Resolver) readStdin() (Input, error) {
	stdin := r.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return Input{}, fmt.Errorf("reading stdin: %w", err)
	}
	return r.FromText(StdinName, string(data)), nil
}

// excluded returns true if path matches any exclude pattern, either as a
// whole or by base name.
func (r *Resolver) excluded(path string) bool {
	slashPath := filepath.ToSlash(filepath.Clean(path))
	base := filepath.Base(path)
	for _, g := range r.excludes {
		if g.Match(slashPath) || g.Match(base) {
			return true
		}
	}
	return false
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// walkDir adds every text or markdown file under dir, skipping hidden
// directories.
func walkDir(dir string, addFile func(string)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if isText(path) || isMarkdown(path) {
			addFile(path)
		}
		return nil
	})
}

func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

func isText(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".txt"
}
