package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

var errNoAssemblyInfo = errors.New("no assembly info file")

// UpdateProjectVersions rewrites the version attributes of each project's assembly info file.
type UpdateProjectVersions interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		projects []entities.Project,
		version entities.VersionInfo,
		opts entities.UpdateOptions,
	) ([]entities.UpdateResult[entities.Project], error)
}

// UpdateProjectVersionsCommand bumps the assembly info versions of projects.
type UpdateProjectVersionsCommand struct {
	versionInfo repositories.VersionInfoRepository
	workspace   repositories.WorkspaceRepository
}

// NewUpdateProjectVersionsCommand creates a new UpdateProjectVersionsCommand.
func NewUpdateProjectVersionsCommand(
	versionInfo repositories.VersionInfoRepository,
	workspace repositories.WorkspaceRepository,
) *UpdateProjectVersionsCommand {
	return &UpdateProjectVersionsCommand{versionInfo: versionInfo, workspace: workspace}
}

// Execute bumps the assembly info version of each project.
func (it *UpdateProjectVersionsCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	projects []entities.Project,
	version entities.VersionInfo,
	opts entities.UpdateOptions,
) ([]entities.UpdateResult[entities.Project], error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}

	infoPaths := make([]string, len(projects))
	locateErrs := make([]error, len(projects))
	for index, project := range projects {
		infoPaths[index], locateErrs[index] = it.versionInfo.Locate(project.Path)
	}
	if opts.RequireClean {
		if err := ensureClean(it.workspace, settings.RootDir, nonEmpty(infoPaths)); err != nil {
			return nil, err
		}
	}

	results := make([]entities.UpdateResult[entities.Project], 0, len(projects))
	for index, project := range projects {
		if locateErrs[index] != nil {
			result := entities.NewUpdateResult(project, project.Name)
			result.Error = locateErrs[index].Error()
			results = append(results, result)
			continue
		}
		results = append(results, it.updateProject(project, infoPaths[index], version, opts.DryRun))
	}

	logger.Infof(
		"Project version update complete: %d project(s), %d error(s)",
		len(results), entities.CountErrors(results),
	)
	return results, nil
}

func (it *UpdateProjectVersionsCommand) updateProject(
	project entities.Project,
	infoPath string,
	version entities.VersionInfo,
	dryRun bool,
) entities.UpdateResult[entities.Project] {
	result := entities.NewUpdateResult(project, project.Name)
	if infoPath == "" {
		result.Error = errNoAssemblyInfo.Error()
		return result
	}

	target, err := version.ResolveFor(project.AssemblyVersion)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	warnOnDowngrade(project.Name, infoPath, project.AssemblyVersion, target)

	if dryRun {
		logger.Infof("[dry-run] Would set %s from %s to %s", infoPath, project.AssemblyVersion, target)
		return result
	}

	if _, err = it.versionInfo.Write(infoPath, target); err != nil {
		logger.Errorf("Failed to update %s: %v", infoPath, err)
		result.Error = err.Error()
		return result
	}

	versions, err := it.versionInfo.Read(infoPath)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Data.AssemblyVersion = versions.AssemblyVersion
	result.Data.FileVersion = versions.FileVersion
	result.Data.InformationalVersion = versions.InformationalVersion
	return result
}

func nonEmpty(values []string) []string {
	var result []string
	for _, value := range values {
		if value != "" {
			result = append(result, value)
		}
	}
	return result
}
