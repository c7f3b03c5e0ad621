package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewAssembliesController); err != nil {
		return err
	}
	if err := container.Provide(NewPackagesController); err != nil {
		return err
	}
	if err := container.Provide(NewProjectsController); err != nil {
		return err
	}
	if err := container.Provide(NewSpecsController); err != nil {
		return err
	}
	if err := container.Provide(NewBuildController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	assembliesController *AssembliesController,
	packagesController *PackagesController,
	projectsController *ProjectsController,
	specsController *SpecsController,
	buildController *BuildController,
) *[]entities.Controller {
	return &[]entities.Controller{
		assembliesController,
		packagesController,
		projectsController,
		specsController,
		buildController,
	}
}

var (
	_ entities.FlagController = (*AssembliesController)(nil)
	_ entities.FlagController = (*PackagesController)(nil)
	_ entities.FlagController = (*ProjectsController)(nil)
	_ entities.FlagController = (*SpecsController)(nil)
	_ entities.FlagController = (*BuildController)(nil)
)
