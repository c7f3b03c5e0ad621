package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// PackagesController handles the "packages" subcommand.
type PackagesController struct {
	resolve commands.ResolvePackageReferences
	update  commands.UpdatePackageReferences
}

// NewPackagesController creates a new PackagesController.
func NewPackagesController(
	resolve commands.ResolvePackageReferences,
	update commands.UpdatePackageReferences,
) *PackagesController {
	return &PackagesController{resolve: resolve, update: update}
}

// GetBind returns the Cobra command metadata for the packages controller.
func (it *PackagesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "packages",
		Short: "Find and update pinned package versions",
		Long: `Scan the lock file of every directory under the root for the given
package ids and print which directories pin them.

With --set-version, point every package spec depending on the package at
the new version, rewrite each pin and move the HintPath install paths of
the manifest beside it.`,
	}
}

// Execute propagates package versions into lock files and project references.
func (it *PackagesController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	inv, err := loadInvocation(cmd)
	if err != nil {
		reportError("Package reference scan", err)
		return
	}
	if names, ok := inv.names(); ok {
		inv.settings.ReferenceNugetFilter = names
	}

	stop := startSpinner("Resolving package references")
	specs, err := it.resolve.Execute(ctx, inv.settings)
	stop(err)
	if err != nil {
		reportError("Package reference scan", err)
		return
	}

	specs = entities.FilterPackageSpecs(specs, inv.only())
	renderPackageTree("Packages", specs)

	version, requested := inv.versionInfo(inv.settings.NugetVersion)
	if !requested || len(specs) == 0 {
		return
	}

	opts := inv.options()
	results, err := it.update.Execute(ctx, inv.settings, specs, version, opts)
	if err != nil {
		reportError("Package reference update", err)
		return
	}
	renderResults(results, opts.DryRun, []string{"Consumer", "Pinned", "Path"},
		func(consumer entities.RefPackage) []string {
			return []string{consumer.Name, consumer.RefVersion, consumer.Path}
		})
}

// AddFlags registers the flags of the packages command.
func (it *PackagesController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("names", "", "Comma-separated package ids (overrides reference_nuget_filter)")
	cmd.Flags().String("only", "", "Only keep consumers whose name contains this text")
	addVersionFlags(cmd, false)
}
