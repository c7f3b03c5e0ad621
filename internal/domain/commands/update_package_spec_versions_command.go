package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// UpdatePackageSpecVersions rewrites the declared version of each package spec.
type UpdatePackageSpecVersions interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		specs []entities.PackageSpec,
		version entities.VersionInfo,
		opts entities.UpdateOptions,
	) ([]entities.UpdateResult[entities.PackageSpec], error)
}

// UpdatePackageSpecVersionsCommand bumps the metadata version of package specs.
type UpdatePackageSpecVersionsCommand struct {
	packageSpecs repositories.PackageSpecRepository
	workspace    repositories.WorkspaceRepository
}

// NewUpdatePackageSpecVersionsCommand creates a new UpdatePackageSpecVersionsCommand.
func NewUpdatePackageSpecVersionsCommand(
	packageSpecs repositories.PackageSpecRepository,
	workspace repositories.WorkspaceRepository,
) *UpdatePackageSpecVersionsCommand {
	return &UpdatePackageSpecVersionsCommand{packageSpecs: packageSpecs, workspace: workspace}
}

// Execute bumps the version of each package spec.
func (it *UpdatePackageSpecVersionsCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	specs []entities.PackageSpec,
	version entities.VersionInfo,
	opts entities.UpdateOptions,
) ([]entities.UpdateResult[entities.PackageSpec], error) {
	if err := version.Validate(); err != nil {
		return nil, err
	}
	if opts.RequireClean {
		paths := make([]string, 0, len(specs))
		for _, spec := range specs {
			paths = append(paths, spec.Path)
		}
		if err := ensureClean(it.workspace, settings.RootDir, paths); err != nil {
			return nil, err
		}
	}

	results := make([]entities.UpdateResult[entities.PackageSpec], 0, len(specs))
	for _, spec := range specs {
		results = append(results, it.updateSpec(spec, version, opts.DryRun))
	}

	logger.Infof(
		"Package spec version update complete: %d spec(s), %d error(s)",
		len(results), entities.CountErrors(results),
	)
	return results, nil
}

func (it *UpdatePackageSpecVersionsCommand) updateSpec(
	spec entities.PackageSpec,
	version entities.VersionInfo,
	dryRun bool,
) entities.UpdateResult[entities.PackageSpec] {
	result := entities.NewUpdateResult(spec, spec.Name)

	target, err := version.ResolveFor(spec.NugetVersion)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	warnOnDowngrade(spec.Name, spec.Path, spec.NugetVersion, target)

	if dryRun {
		logger.Infof("[dry-run] Would set %s from %s to %s", spec.Path, spec.NugetVersion, target)
		return result
	}

	if _, err = it.packageSpecs.SetVersion(spec.Path, target); err != nil {
		logger.Errorf("Failed to update %s: %v", spec.Path, err)
		result.Error = err.Error()
		return result
	}

	refreshed, err := it.packageSpecs.GetVersion(spec.Path)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Data.NugetVersion = refreshed
	return result
}
