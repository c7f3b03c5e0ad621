package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// AssembliesController handles the "assemblies" subcommand.
type AssembliesController struct {
	resolve commands.ResolveAssemblyReferences
	update  commands.UpdateAssemblyReferences
}

// NewAssembliesController creates a new AssembliesController.
func NewAssembliesController(
	resolve commands.ResolveAssemblyReferences,
	update commands.UpdateAssemblyReferences,
) *AssembliesController {
	return &AssembliesController{resolve: resolve, update: update}
}

// GetBind returns the Cobra command metadata for the assemblies controller.
func (it *AssembliesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "assemblies",
		Short: "Find and update references to assemblies",
		Long: `Scan every project manifest under the root for Reference elements
naming the given assemblies and print which projects consume them.

With --set-version, rewrite the Version= segment of every matching
reference and report the outcome per consuming manifest.`,
	}
}

// Execute propagates assembly versions into the referencing projects.
func (it *AssembliesController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	inv, err := loadInvocation(cmd)
	if err != nil {
		reportError("Assembly reference scan", err)
		return
	}
	if names, ok := inv.names(); ok {
		inv.settings.ReferenceAssemblyFilter = names
	}

	stop := startSpinner("Resolving assembly references")
	projects, err := it.resolve.Execute(ctx, inv.settings)
	stop(err)
	if err != nil {
		reportError("Assembly reference scan", err)
		return
	}

	projects = entities.FilterProjects(projects, inv.only())
	renderProjectTree("Assemblies", projects)

	version, requested := inv.versionInfo(inv.settings.AssemblyVersion)
	if !requested || len(projects) == 0 {
		return
	}

	opts := inv.options()
	results, err := it.update.Execute(ctx, inv.settings, projects, version, opts)
	if err != nil {
		reportError("Assembly reference update", err)
		return
	}
	renderResults(results, opts.DryRun, []string{"Consumer", "Reference", "Path"},
		func(consumer entities.RefAssembly) []string {
			return []string{consumer.Name, consumer.RefVersion, consumer.Path}
		})
}

// AddFlags registers the flags of the assemblies command.
func (it *AssembliesController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("names", "", "Comma-separated assembly names (overrides reference_assembly_filter)")
	cmd.Flags().String("only", "", "Only keep consumers whose name contains this text")
	addVersionFlags(cmd, false)
}
