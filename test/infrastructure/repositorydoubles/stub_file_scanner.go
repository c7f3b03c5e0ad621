//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// StubFileScanner implements repositories.FileScanner with canned results per glob.
type StubFileScanner struct {
	// --- Scan ---
	Files     map[string][]string // keyed by glob
	ScanErr   error
	ScanRoots []string

	// --- FindFirst ---
	First        map[string]string // keyed by directory
	FindFirstErr error
}

var _ repositories.FileScanner = (*StubFileScanner)(nil)

func (s *StubFileScanner) Scan(_ context.Context, root, glob string, _ []string) ([]string, error) {
	s.ScanRoots = append(s.ScanRoots, root)
	if s.ScanErr != nil {
		return nil, s.ScanErr
	}
	return s.Files[glob], nil
}

func (s *StubFileScanner) FindFirst(dir, _ string) (string, error) {
	if s.FindFirstErr != nil {
		return "", s.FindFirstErr
	}
	return s.First[dir], nil
}
