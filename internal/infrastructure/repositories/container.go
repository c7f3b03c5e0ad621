package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/refbump/internal/domain/repositories"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/assemblyinfo"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/msbuild"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/nuspec"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/packagesconfig"
	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/process"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	constructors := []interface{}{
		filesystem.NewFileScanner,
		msbuild.NewManifestRepository,
		nuspec.NewPackageSpecRepository,
		packagesconfig.NewLockFileRepository,
		assemblyinfo.NewVersionInfoRepository,
		process.NewToolRunnerRepository,
		git.NewWorkspaceRepository,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []interface{}{
		func(impl *filesystem.FileScanner) repositories.FileScanner { return impl },
		func(impl *msbuild.ManifestRepository) repositories.ManifestRepository { return impl },
		func(impl *nuspec.PackageSpecRepository) repositories.PackageSpecRepository { return impl },
		func(impl *packagesconfig.LockFileRepository) repositories.LockFileRepository { return impl },
		func(impl *assemblyinfo.VersionInfoRepository) repositories.VersionInfoRepository { return impl },
		func(impl *process.ToolRunnerRepository) repositories.ToolRunnerRepository { return impl },
		func(impl *git.WorkspaceRepository) repositories.WorkspaceRepository { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
