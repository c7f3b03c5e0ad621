package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// UpdateAssemblyReferences rewrites the reference version of every selected
// consumer of every selected assembly.
type UpdateAssemblyReferences interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		projects []entities.Project,
		version entities.VersionInfo,
		opts entities.UpdateOptions,
	) ([]entities.UpdateResult[entities.RefAssembly], error)
}

// UpdateAssemblyReferencesCommand rewrites assembly reference versions in project manifests.
type UpdateAssemblyReferencesCommand struct {
	manifests repositories.ManifestRepository
	workspace repositories.WorkspaceRepository
}

// NewUpdateAssemblyReferencesCommand creates a new UpdateAssemblyReferencesCommand.
func NewUpdateAssemblyReferencesCommand(
	manifests repositories.ManifestRepository,
	workspace repositories.WorkspaceRepository,
) *UpdateAssemblyReferencesCommand {
	return &UpdateAssemblyReferencesCommand{manifests: manifests, workspace: workspace}
}

// Execute returns one result per consumer. Per-consumer failures are recorded
// in the result and never stop the batch; only validation and the workspace
// guard abort it, and both run before any file is touched.
func (it *UpdateAssemblyReferencesCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	projects []entities.Project,
	version entities.VersionInfo,
	opts entities.UpdateOptions,
) ([]entities.UpdateResult[entities.RefAssembly], error) {
	if err := version.ValidateExplicit(); err != nil {
		return nil, err
	}
	if opts.RequireClean {
		if err := ensureClean(it.workspace, settings.RootDir, assemblyConsumerPaths(projects)); err != nil {
			return nil, err
		}
	}

	var results []entities.UpdateResult[entities.RefAssembly]
	for _, project := range projects {
		logger.Infof("Updating references to assembly %s", project.Name)
		for _, consumer := range project.Consumers {
			results = append(results, it.updateConsumer(project.Name, consumer, version.Version, opts.DryRun))
		}
	}

	logger.Infof(
		"Assembly reference update complete: %d consumer(s), %d error(s)",
		len(results), entities.CountErrors(results),
	)
	return results, nil
}

func (it *UpdateAssemblyReferencesCommand) updateConsumer(
	assembly string,
	consumer entities.RefAssembly,
	target string,
	dryRun bool,
) entities.UpdateResult[entities.RefAssembly] {
	result := entities.NewUpdateResult(consumer, assembly)
	warnOnDowngrade(assembly, consumer.Path, consumer.RefVersion, target)

	if dryRun {
		logger.Infof("[dry-run] Would change %s in %s from %s to %s", assembly, consumer.Path, consumer.RefVersion, target)
		return result
	}

	changed, err := it.manifests.ChangeReferenceVersion(consumer.Path, assembly, target)
	if err != nil {
		logger.Errorf("Failed to update %s in %s: %v", assembly, consumer.Path, err)
		result.Error = err.Error()
		return result
	}
	if !changed {
		result.Error = fmt.Sprintf("can not change reference version for assembly %s with version=[%s]", assembly, target)
		return result
	}

	refreshed, err := it.manifests.GetReferenceVersion(consumer.Path, assembly)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Data.RefVersion = refreshed
	return result
}

func assemblyConsumerPaths(projects []entities.Project) []string {
	var paths []string
	for _, project := range projects {
		for _, consumer := range project.Consumers {
			paths = append(paths, consumer.Path)
		}
	}
	return paths
}
