// Package loader locates schema files by glob pattern and reads them with a
// configurable text encoding.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// globMeta holds the characters that start a glob expression.
const globMeta = "*?[{\\"

// Discover expands a glob pattern into the sorted list of matching regular
// files. "*" stays within one path segment, "**" crosses segments and
// "{a,b}" selects alternatives. A pattern without meta characters matches the
// named file if it exists.
func Discover(pattern string) ([]string, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("empty path pattern")
	}

	pattern = filepath.ToSlash(filepath.Clean(pattern))

	if !strings.ContainsAny(pattern, globMeta) {
		info, err := os.Stat(filepath.FromSlash(pattern))
		if err != nil {
			if os.IsNotExist(err) {
				return []string{}, nil
			}
			return nil, fmt.Errorf("failed to stat %s: %w", pattern, err)
		}
		if info.IsDir() {
			return []string{}, nil
		}
		return []string{filepath.FromSlash(pattern)}, nil
	}

	globs, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	root := staticPrefix(pattern)
	matches := []string{}

	err = filepath.WalkDir(filepath.FromSlash(root), func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == filepath.FromSlash(root) && os.IsNotExist(walkErr) {
				return fs.SkipDir
			}
			return walkErr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if matchAny(globs, filepath.ToSlash(path)) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// compile builds the matchers for pattern. "**/" also matches zero
// directories, so each "/**/" gets a variant collapsed to "/".
func compile(pattern string) ([]glob.Glob, error) {
	variants := []string{pattern}
	if collapsed := strings.ReplaceAll(pattern, "/**/", "/"); collapsed != pattern {
		variants = append(variants, collapsed)
	}
	if trimmed := strings.TrimPrefix(pattern, "**/"); trimmed != pattern {
		variants = append(variants, trimmed)
	}

	globs := make([]glob.Glob, 0, len(variants))
	for _, v := range variants {
		g, err := glob.Compile(v, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid path pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchAny(globs []glob.Glob, path string) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// Matcher reports whether a path is selected by a pattern.
type Matcher struct {
	pattern string
	globs   []glob.Glob
}

// NewMatcher compiles pattern with the same rules as Discover.
func NewMatcher(pattern string) (*Matcher, error) {
	pattern = filepath.ToSlash(filepath.Clean(pattern))
	if !strings.ContainsAny(pattern, globMeta) {
		return &Matcher{pattern: pattern}, nil
	}
	globs, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher{pattern: pattern, globs: globs}, nil
}

// Match reports whether path is selected.
func (m *Matcher) Match(path string) bool {
	path = filepath.ToSlash(filepath.Clean(path))
	if m.globs == nil {
		return path == m.pattern
	}
	return matchAny(m.globs, path)
}

// Root returns the directory a pattern is anchored at.
func (m *Matcher) Root() string {
	return filepath.FromSlash(staticPrefix(m.pattern))
}

// Recursive reports whether matches may lie below subdirectories of Root.
// Literal paths and single-segment globs only need Root itself.
func (m *Matcher) Recursive() bool {
	if m.globs == nil {
		return false
	}
	rest := m.pattern
	if root := staticPrefix(m.pattern); root != "." {
		rest = strings.TrimPrefix(rest, root)
	}
	return strings.Contains(strings.TrimPrefix(rest, "/"), "/")
}

// staticPrefix returns the directory part of pattern that precedes the first
// glob meta character. Walking starts there.
func staticPrefix(pattern string) string {
	idx := strings.IndexAny(pattern, globMeta)
	if idx < 0 {
		return filepath.ToSlash(filepath.Dir(pattern))
	}

	dir := pattern[:idx]
	slash := strings.LastIndex(dir, "/")
	switch {
	case slash < 0:
		return "."
	case slash == 0:
		return "/"
	default:
		return dir[:slash]
	}
}
