package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// UpdatePackageReferences rewrites the pinned version of every selected
// consumer of every selected package.
type UpdatePackageReferences interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		specs []entities.PackageSpec,
		version entities.VersionInfo,
		opts entities.UpdateOptions,
	) ([]entities.UpdateResult[entities.RefPackage], error)
}

// UpdatePackageReferencesCommand propagates package versions into dependent specs and lock files.
type UpdatePackageReferencesCommand struct {
	scanner      repositories.FileScanner
	lockFiles    repositories.LockFileRepository
	packageSpecs repositories.PackageSpecRepository
	workspace    repositories.WorkspaceRepository
}

// NewUpdatePackageReferencesCommand creates a new UpdatePackageReferencesCommand.
func NewUpdatePackageReferencesCommand(
	scanner repositories.FileScanner,
	lockFiles repositories.LockFileRepository,
	packageSpecs repositories.PackageSpecRepository,
	workspace repositories.WorkspaceRepository,
) *UpdatePackageReferencesCommand {
	return &UpdatePackageReferencesCommand{
		scanner:      scanner,
		lockFiles:    lockFiles,
		packageSpecs: packageSpecs,
		workspace:    workspace,
	}
}

// Execute first points every package spec depending on a selected package at
// the new version, logging failures only, then rewrites each consumer's lock
// file. It returns one result per consumer. A missing root aborts the batch.
func (it *UpdatePackageReferencesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	specs []entities.PackageSpec,
	version entities.VersionInfo,
	opts entities.UpdateOptions,
) ([]entities.UpdateResult[entities.RefPackage], error) {
	if err := version.ValidateExplicit(); err != nil {
		return nil, err
	}

	specFiles, err := it.scanner.Scan(ctx, settings.RootDir, settings.NuspecFilter, settings.Exclude)
	if err != nil {
		return nil, err
	}
	if opts.RequireClean {
		paths, pathsErr := it.guardedPaths(settings, specs)
		if pathsErr != nil {
			return nil, pathsErr
		}
		if guardErr := ensureClean(it.workspace, settings.RootDir, append(paths, specFiles...)); guardErr != nil {
			return nil, guardErr
		}
	}

	for _, spec := range specs {
		it.updateDependents(spec.Name, specFiles, version.Version, opts.DryRun)
	}

	var results []entities.UpdateResult[entities.RefPackage]
	for _, spec := range specs {
		logger.Infof("Updating references to package %s", spec.Name)
		for _, consumer := range spec.Consumers {
			results = append(results, it.updateConsumer(settings, spec.Name, consumer, version.Version, opts.DryRun))
		}
	}

	logger.Infof(
		"Package reference update complete: %d consumer(s), %d error(s)",
		len(results), entities.CountErrors(results),
	)
	return results, nil
}

// updateDependents is best effort: failures are logged and never reach the results.
func (it *UpdatePackageReferencesCommand) updateDependents(id string, specFiles []string, target string, dryRun bool) {
	failures := 0
	for _, specFile := range specFiles {
		if dryRun {
			logger.Debugf("[dry-run] Would set dependency %s to %s in %s", id, target, specFile)
			continue
		}
		if _, err := it.packageSpecs.SetDependencyVersion(specFile, id, target); err != nil {
			logger.Warnf("Failed to set dependency %s in %s: %v", id, specFile, err)
			failures++
		}
	}
	if failures > 0 {
		logger.Warnf("%d package spec(s) could not be pointed at %s %s", failures, id, target)
	}
}

func (it *UpdatePackageReferencesCommand) updateConsumer(
	settings *entities.Settings,
	id string,
	consumer entities.RefPackage,
	target string,
	dryRun bool,
) entities.UpdateResult[entities.RefPackage] {
	result := entities.NewUpdateResult(consumer, id)
	warnOnDowngrade(id, consumer.Path, consumer.RefVersion, target)

	if dryRun {
		logger.Infof("[dry-run] Would change %s in %s from %s to %s", id, consumer.Path, consumer.RefVersion, target)
		return result
	}

	change, err := it.lockFiles.SetPackageVersion(consumer.Path, id, target, settings.ProjectFilter)
	if err != nil {
		logger.Errorf("Failed to update %s in %s: %v", id, consumer.Path, err)
		result.Error = err.Error()
		return result
	}
	if !change.Changed {
		result.Error = fmt.Sprintf("can not change nuget version for package %s with version=[%s]", id, target)
		return result
	}
	if change.SiblingManifest != "" {
		logger.Debugf("Install paths of %s follow %s %s", change.SiblingManifest, id, target)
	}

	refreshed, err := it.lockFiles.GetPackageVersion(consumer.Path, id)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Data.RefVersion = refreshed
	return result
}

// guardedPaths lists every lock file about to be rewritten together with the
// sibling manifest whose install paths follow it.
func (it *UpdatePackageReferencesCommand) guardedPaths(
	settings *entities.Settings,
	specs []entities.PackageSpec,
) ([]string, error) {
	var paths []string
	for _, spec := range specs {
		for _, consumer := range spec.Consumers {
			paths = append(paths, consumer.Path)
			manifest, err := it.scanner.FindFirst(filepath.Dir(consumer.Path), settings.ProjectFilter)
			if err != nil {
				return nil, err
			}
			if manifest != "" {
				paths = append(paths, manifest)
			}
		}
	}
	return paths, nil
}
