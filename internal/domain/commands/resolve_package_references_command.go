package commands

import (
	"context"
	"errors"
	"path/filepath"
	"slices"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// ResolvePackageReferences finds the lock files declaring each package named
// in Settings.ReferenceNugetFilter.
type ResolvePackageReferences interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.PackageSpec, error)
}

// ResolvePackageReferencesCommand implements ResolvePackageReferences over the scanned lock files.
type ResolvePackageReferencesCommand struct {
	scanner   repositories.FileScanner
	lockFiles repositories.LockFileRepository
}

// NewResolvePackageReferencesCommand creates a new ResolvePackageReferencesCommand.
func NewResolvePackageReferencesCommand(
	scanner repositories.FileScanner,
	lockFiles repositories.LockFileRepository,
) *ResolvePackageReferencesCommand {
	return &ResolvePackageReferencesCommand{scanner: scanner, lockFiles: lockFiles}
}

// Execute returns one artifact per requested id that has at least one
// consumer, in the order the ids were listed. Only the first lock file of
// each directory is considered. A missing root yields no artifacts.
func (it *ResolvePackageReferencesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.PackageSpec, error) {
	ids := settings.NugetNames()
	if len(ids) == 0 {
		return nil, nil
	}

	lockFiles, err := it.scanner.Scan(ctx, settings.RootDir, settings.NugetConfigFilter, settings.Exclude)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			logger.Warnf("Root directory %s does not exist, no references resolved", settings.RootDir)
			return nil, nil
		}
		return nil, err
	}
	lockFiles = firstPerDirectory(lockFiles)

	var specs []entities.PackageSpec
	for _, id := range ids {
		logger.Debugf("Resolving references to package %s", id)

		var consumers []entities.RefPackage
		for _, lockFile := range lockFiles {
			declared, listErr := it.lockFiles.ListDeclaredPackages(lockFile)
			if listErr != nil {
				return nil, listErr
			}
			if !slices.Contains(declared, id) {
				continue
			}

			version, getErr := it.lockFiles.GetPackageVersion(lockFile, id)
			if getErr != nil {
				return nil, getErr
			}
			consumers = append(consumers, entities.RefPackage{
				Item:       entities.Item{Name: filepath.Base(filepath.Dir(lockFile)), Path: lockFile},
				RefVersion: version,
			})
		}

		if len(consumers) == 0 {
			logger.Infof("No lock file declares package %s", id)
			continue
		}
		specs = append(specs, entities.PackageSpec{
			Item:      entities.Item{Name: id, Path: filepath.Join(settings.RootDir, id)},
			Consumers: consumers,
		})
	}

	return specs, nil
}

func firstPerDirectory(paths []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, path := range paths {
		dir := filepath.Dir(path)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		result = append(result, path)
	}
	return result
}
