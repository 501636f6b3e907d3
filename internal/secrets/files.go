package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	eserrors "github.com/sinugotshifhiwa4/envseal/internal/errors"
)

// DefaultDocument returns the conventional document path for an environment:
// .env.<name> in the project root.
func DefaultDocument(projectPath, envName string) string {
	return filepath.Join(projectPath, ".env."+envName)
}

// ResolveDocuments takes user-provided paths/globs and returns matching
// environment documents. If patterns is empty, returns nil (caller should
// fall back to the environment's default document).
//
// The base .env file is never matched: it holds the root secrets and must
// not be run through the transform.
func ResolveDocuments(patterns []string, projectPath string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, projectPath)
		if err != nil {
			return nil, err
		}
		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, eserrors.ErrNoFilesFound
	}

	return files, nil
}

func resolvePattern(pattern string, projectPath string) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(projectPath, pattern)
	}

	// Directories are walked for env documents.
	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return findDocumentsInDir(absPattern)
	}

	// Use doublestar for ** support.
	if strings.ContainsAny(pattern, "*?[") {
		return expandGlob(absPattern, pattern)
	}

	// Literal file path.
	if _, err := os.Stat(absPattern); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", eserrors.ErrNotFound, pattern)
	}
	if !isEnvDocument(absPattern) {
		return nil, fmt.Errorf("not an environment document: %s", pattern)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern, pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if isInProjectDir(m) {
			continue
		}
		if isEnvDocument(m) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func findDocumentsInDir(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".envseal" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if isEnvDocument(path) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

// isEnvDocument reports whether path names an environment document
// (.env.<name>). The bare base file .env is deliberately excluded.
func isEnvDocument(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".env.") && base != ".env."
}

func isInProjectDir(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".envseal" {
			return true
		}
	}
	return false
}
