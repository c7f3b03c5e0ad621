package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// ProjectsController handles the "projects" subcommand.
type ProjectsController struct {
	list   commands.ListProjects
	update commands.UpdateProjectVersions
}

// NewProjectsController creates a new ProjectsController.
func NewProjectsController(list commands.ListProjects, update commands.UpdateProjectVersions) *ProjectsController {
	return &ProjectsController{list: list, update: update}
}

// GetBind returns the Cobra command metadata for the projects controller.
func (it *ProjectsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "projects",
		Short: "List projects and set their assembly versions",
		Long: `List every project manifest under the root with the versions declared
in its Properties/AssemblyInfo.cs.

With --set-version or --bump, rewrite AssemblyVersion, AssemblyFileVersion
and AssemblyInformationalVersion of the listed projects.`,
	}
}

// Execute bumps the assembly versions of the selected projects.
func (it *ProjectsController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	inv, err := loadInvocation(cmd)
	if err != nil {
		reportError("Project scan", err)
		return
	}

	stop := startSpinner("Listing projects")
	projects, err := it.list.Execute(ctx, inv.settings)
	stop(err)
	if err != nil {
		reportError("Project scan", err)
		return
	}

	projects = filterByName(projects, inv.only(), func(project entities.Project) string { return project.Name })
	renderProjectTree("Projects", projects)

	version, requested := inv.versionInfo(inv.settings.AssemblyVersion)
	if !requested || len(projects) == 0 {
		return
	}

	opts := inv.options()
	results, err := it.update.Execute(ctx, inv.settings, projects, version, opts)
	if err != nil {
		reportError("Project version update", err)
		return
	}
	renderResults(results, opts.DryRun, []string{"Assembly", "File", "Informational"},
		func(project entities.Project) []string {
			return []string{project.AssemblyVersion, project.FileVersion, project.InformationalVersion}
		})
}

// AddFlags registers the flags of the projects command.
func (it *ProjectsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("only", "", "Only keep projects whose name contains this text")
	addVersionFlags(cmd, true)
}
