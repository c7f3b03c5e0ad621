//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"slices"

	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// StubWorkspaceRepository implements repositories.WorkspaceRepository with a fixed dirty set.
type StubWorkspaceRepository struct {
	Dirty      []string
	Err        error
	CheckCalls int
}

var _ repositories.WorkspaceRepository = (*StubWorkspaceRepository)(nil)

func (s *StubWorkspaceRepository) DirtyFiles(_ string, paths []string) ([]string, error) {
	s.CheckCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	var dirty []string
	for _, path := range paths {
		if slices.Contains(s.Dirty, path) {
			dirty = append(dirty, path)
		}
	}
	return dirty, nil
}
