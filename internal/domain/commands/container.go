package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []interface{}{
		NewResolveAssemblyReferencesCommand,
		NewUpdateAssemblyReferencesCommand,
		NewResolvePackageReferencesCommand,
		NewUpdatePackageReferencesCommand,
		NewListProjectsCommand,
		NewUpdateProjectVersionsCommand,
		NewListPackageSpecsCommand,
		NewUpdatePackageSpecVersionsCommand,
		NewBuildPackagesCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []interface{}{
		func(impl *ResolveAssemblyReferencesCommand) ResolveAssemblyReferences { return impl },
		func(impl *UpdateAssemblyReferencesCommand) UpdateAssemblyReferences { return impl },
		func(impl *ResolvePackageReferencesCommand) ResolvePackageReferences { return impl },
		func(impl *UpdatePackageReferencesCommand) UpdatePackageReferences { return impl },
		func(impl *ListProjectsCommand) ListProjects { return impl },
		func(impl *UpdateProjectVersionsCommand) UpdateProjectVersions { return impl },
		func(impl *ListPackageSpecsCommand) ListPackageSpecs { return impl },
		func(impl *UpdatePackageSpecVersionsCommand) UpdatePackageSpecVersions { return impl },
		func(impl *BuildPackagesCommand) BuildPackages { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
