package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// ListProjects discovers every project manifest under the root together with
// the versions of its assembly info file.
type ListProjects interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.Project, error)
}

// ListProjectsCommand finds the project manifests under a root.
type ListProjectsCommand struct {
	scanner     repositories.FileScanner
	versionInfo repositories.VersionInfoRepository
}

// NewListProjectsCommand creates a new ListProjectsCommand.
func NewListProjectsCommand(
	scanner repositories.FileScanner,
	versionInfo repositories.VersionInfoRepository,
) *ListProjectsCommand {
	return &ListProjectsCommand{scanner: scanner, versionInfo: versionInfo}
}

// Execute fails with entities.ErrNotFound when the root does not exist.
func (it *ListProjectsCommand) Execute(ctx context.Context, settings *entities.Settings) ([]entities.Project, error) {
	manifests, err := it.scanner.Scan(ctx, settings.RootDir, settings.ProjectFilter, settings.Exclude)
	if err != nil {
		return nil, err
	}

	projects := make([]entities.Project, 0, len(manifests))
	for _, manifest := range manifests {
		project := entities.Project{Item: entities.Item{Name: nameWithoutExt(manifest), Path: manifest}}
		if versions, ok := readAssemblyVersions(it.versionInfo, manifest); ok {
			project.AssemblyVersion = versions.AssemblyVersion
			project.FileVersion = versions.FileVersion
			project.InformationalVersion = versions.InformationalVersion
		}
		projects = append(projects, project)
	}

	logger.Infof("Found %d project(s) under %s", len(projects), settings.RootDir)
	return projects, nil
}
