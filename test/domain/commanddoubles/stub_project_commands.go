//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// StubListProjects is a stub implementation of commands.ListProjects.
type StubListProjects struct {
	ExecuteCallCount int
	ExecuteErr       error
	Projects         []entities.Project
	LastSettings     *entities.Settings
}

var _ commands.ListProjects = (*StubListProjects)(nil)

func (s *StubListProjects) Execute(_ context.Context, settings *entities.Settings) ([]entities.Project, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Projects, s.ExecuteErr
}

// StubUpdateProjectVersions is a stub implementation of commands.UpdateProjectVersions.
type StubUpdateProjectVersions struct {
	ExecuteCallCount int
	ExecuteErr       error
	Results          []entities.UpdateResult[entities.Project]
	LastProjects     []entities.Project
	LastVersion      entities.VersionInfo
}

var _ commands.UpdateProjectVersions = (*StubUpdateProjectVersions)(nil)

func (s *StubUpdateProjectVersions) Execute(
	_ context.Context,
	_ *entities.Settings,
	projects []entities.Project,
	version entities.VersionInfo,
	_ entities.UpdateOptions,
) ([]entities.UpdateResult[entities.Project], error) {
	s.ExecuteCallCount++
	s.LastProjects = projects
	s.LastVersion = version
	return s.Results, s.ExecuteErr
}

// StubBuildPackages is a stub implementation of commands.BuildPackages.
type StubBuildPackages struct {
	ExecuteCallCount int
	ExecuteErr       error
	Failures         []string
	LastProjects     []entities.Project
}

var _ commands.BuildPackages = (*StubBuildPackages)(nil)

func (s *StubBuildPackages) Execute(
	_ context.Context,
	_ *entities.Settings,
	projects []entities.Project,
	onDone func(project entities.Project, err error),
) ([]string, error) {
	s.ExecuteCallCount++
	s.LastProjects = projects
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	for _, project := range projects {
		if onDone != nil {
			onDone(project, nil)
		}
	}
	return s.Failures, nil
}
