package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// FileScanner walks a directory tree and returns the files whose names match a glob.
// Matching is case-insensitive. A glob containing "/" is matched against the
// slash-separated path relative to the scan root instead of the file name.
type FileScanner struct{}

// NewFileScanner creates a new FileScanner.
func NewFileScanner() *FileScanner {
	return &FileScanner{}
}

// Scan walks root and returns the files matching glob in walk order, skipping excluded directories.
func (it *FileScanner) Scan(ctx context.Context, root, glob string, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory %s", entities.ErrNotFound, root)
		}
		return nil, fmt.Errorf("failed to inspect %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", entities.ErrNotFound, root)
	}
	if !doublestar.ValidatePattern(glob) {
		return nil, fmt.Errorf("%w: invalid filter %q", entities.ErrValidationFailure, glob)
	}

	pattern := strings.ToLower(glob)
	byPath := strings.Contains(pattern, "/")

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && isExcluded(d.Name(), rel, exclude) {
				logger.Debugf("Skipping excluded directory %s", path)
				return filepath.SkipDir
			}
			return nil
		}

		subject := d.Name()
		if byPath {
			subject = rel
		}
		if doublestar.MatchUnvalidated(pattern, strings.ToLower(subject)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	logger.Debugf("Found %d file(s) matching %q under %s", len(files), glob, root)
	return files, nil
}

// FindFirst returns the first file directly in dir matching glob, or "" when none does.
func (it *FileScanner) FindFirst(dir, glob string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to list %s: %w", dir, err)
	}

	pattern := strings.ToLower(glob)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if doublestar.MatchUnvalidated(pattern, strings.ToLower(entry.Name())) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", nil
}

func isExcluded(name, rel string, exclude []string) bool {
	for _, pattern := range exclude {
		pattern = strings.ToLower(filepath.ToSlash(pattern))
		if doublestar.MatchUnvalidated(pattern, strings.ToLower(name)) ||
			doublestar.MatchUnvalidated(pattern, strings.ToLower(rel)) {
			return true
		}
	}
	return false
}
