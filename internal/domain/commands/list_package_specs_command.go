package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// ListPackageSpecs discovers every package spec under the root with its declared version.
type ListPackageSpecs interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.PackageSpec, error)
}

// ListPackageSpecsCommand finds the package specs under a root.
type ListPackageSpecsCommand struct {
	scanner      repositories.FileScanner
	packageSpecs repositories.PackageSpecRepository
}

// NewListPackageSpecsCommand creates a new ListPackageSpecsCommand.
func NewListPackageSpecsCommand(
	scanner repositories.FileScanner,
	packageSpecs repositories.PackageSpecRepository,
) *ListPackageSpecsCommand {
	return &ListPackageSpecsCommand{scanner: scanner, packageSpecs: packageSpecs}
}

// Execute fails with entities.ErrNotFound when the root does not exist.
func (it *ListPackageSpecsCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.PackageSpec, error) {
	files, err := it.scanner.Scan(ctx, settings.RootDir, settings.NuspecFilter, settings.Exclude)
	if err != nil {
		return nil, err
	}

	specs := make([]entities.PackageSpec, 0, len(files))
	for _, file := range files {
		version, getErr := it.packageSpecs.GetVersion(file)
		if getErr != nil {
			return nil, getErr
		}
		specs = append(specs, entities.PackageSpec{
			Item:         entities.Item{Name: nameWithoutExt(file), Path: file},
			NugetVersion: version,
		})
	}

	logger.Infof("Found %d package spec(s) under %s", len(specs), settings.RootDir)
	return specs, nil
}
