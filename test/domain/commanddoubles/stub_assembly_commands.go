//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// StubResolveAssemblyReferences is a stub implementation of commands.ResolveAssemblyReferences.
type StubResolveAssemblyReferences struct {
	ExecuteCallCount int
	ExecuteErr       error
	Projects         []entities.Project
	LastSettings     *entities.Settings
}

var _ commands.ResolveAssemblyReferences = (*StubResolveAssemblyReferences)(nil)

func (s *StubResolveAssemblyReferences) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.Project, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Projects, s.ExecuteErr
}

// StubUpdateAssemblyReferences is a stub implementation of commands.UpdateAssemblyReferences.
type StubUpdateAssemblyReferences struct {
	ExecuteCallCount int
	ExecuteErr       error
	Results          []entities.UpdateResult[entities.RefAssembly]
	LastProjects     []entities.Project
	LastVersion      entities.VersionInfo
	LastOpts         entities.UpdateOptions
}

var _ commands.UpdateAssemblyReferences = (*StubUpdateAssemblyReferences)(nil)

func (s *StubUpdateAssemblyReferences) Execute(
	_ context.Context,
	_ *entities.Settings,
	projects []entities.Project,
	version entities.VersionInfo,
	opts entities.UpdateOptions,
) ([]entities.UpdateResult[entities.RefAssembly], error) {
	s.ExecuteCallCount++
	s.LastProjects = projects
	s.LastVersion = version
	s.LastOpts = opts
	return s.Results, s.ExecuteErr
}
