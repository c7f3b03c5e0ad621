package commands

import (
	"context"
	"errors"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// ResolveAssemblyReferences finds the manifests referencing each assembly
// named in Settings.ReferenceAssemblyFilter.
type ResolveAssemblyReferences interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.Project, error)
}

// ResolveAssemblyReferencesCommand implements ResolveAssemblyReferences over the scanned manifests.
type ResolveAssemblyReferencesCommand struct {
	scanner     repositories.FileScanner
	manifests   repositories.ManifestRepository
	versionInfo repositories.VersionInfoRepository
}

// NewResolveAssemblyReferencesCommand creates a new ResolveAssemblyReferencesCommand.
func NewResolveAssemblyReferencesCommand(
	scanner repositories.FileScanner,
	manifests repositories.ManifestRepository,
	versionInfo repositories.VersionInfoRepository,
) *ResolveAssemblyReferencesCommand {
	return &ResolveAssemblyReferencesCommand{
		scanner:     scanner,
		manifests:   manifests,
		versionInfo: versionInfo,
	}
}

// Execute returns one artifact per requested name that has at least one
// consumer, in the order the names were listed. A missing root yields no artifacts.
func (it *ResolveAssemblyReferencesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.Project, error) {
	names := settings.AssemblyNames()
	if len(names) == 0 {
		return nil, nil
	}

	manifests, err := it.scanner.Scan(ctx, settings.RootDir, settings.ProjectFilter, settings.Exclude)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			logger.Warnf("Root directory %s does not exist, no references resolved", settings.RootDir)
			return nil, nil
		}
		return nil, err
	}

	var projects []entities.Project
	for _, name := range names {
		logger.Debugf("Resolving references to assembly %s", name)

		var consumers []entities.RefAssembly
		for _, manifest := range manifests {
			version, getErr := it.manifests.GetReferenceVersion(manifest, name)
			if getErr != nil {
				return nil, getErr
			}
			if version == "" {
				continue
			}
			consumers = append(consumers, it.newConsumer(manifest, version))
		}

		if len(consumers) == 0 {
			logger.Infof("No manifest references assembly %s", name)
			continue
		}
		projects = append(projects, entities.Project{
			Item:      entities.Item{Name: name, Path: filepath.Join(settings.RootDir, name)},
			Consumers: consumers,
		})
	}

	return projects, nil
}

func (it *ResolveAssemblyReferencesCommand) newConsumer(manifest, refVersion string) entities.RefAssembly {
	consumer := entities.RefAssembly{
		Item:       entities.Item{Name: nameWithoutExt(manifest), Path: manifest},
		RefVersion: refVersion,
	}

	versions, ok := readAssemblyVersions(it.versionInfo, manifest)
	if ok {
		consumer.AssemblyVersion = versions.AssemblyVersion
		consumer.FileVersion = versions.FileVersion
		consumer.InformationalVersion = versions.InformationalVersion
	}
	return consumer
}

// readAssemblyVersions reads the version attributes of a manifest's project, if it has any.
func readAssemblyVersions(
	versionInfo repositories.VersionInfoRepository,
	manifest string,
) (repositories.AssemblyVersions, bool) {
	infoPath, err := versionInfo.Locate(manifest)
	if err != nil || infoPath == "" {
		return repositories.AssemblyVersions{}, false
	}
	versions, err := versionInfo.Read(infoPath)
	if err != nil {
		logger.Debugf("Failed to read %s: %v", infoPath, err)
		return repositories.AssemblyVersions{}, false
	}
	return versions, true
}
