package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// SpecsController handles the "specs" subcommand.
type SpecsController struct {
	list   commands.ListPackageSpecs
	update commands.UpdatePackageSpecVersions
}

// NewSpecsController creates a new SpecsController.
func NewSpecsController(list commands.ListPackageSpecs, update commands.UpdatePackageSpecVersions) *SpecsController {
	return &SpecsController{list: list, update: update}
}

// GetBind returns the Cobra command metadata for the specs controller.
func (it *SpecsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "specs",
		Short: "List package specs and set their versions",
		Long: `List every package spec under the root with its declared version.

With --set-version or --bump, rewrite the <version> element of the listed specs.`,
	}
}

// Execute bumps the versions of the selected package specs.
func (it *SpecsController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	inv, err := loadInvocation(cmd)
	if err != nil {
		reportError("Package spec scan", err)
		return
	}

	stop := startSpinner("Listing package specs")
	specs, err := it.list.Execute(ctx, inv.settings)
	stop(err)
	if err != nil {
		reportError("Package spec scan", err)
		return
	}

	specs = filterByName(specs, inv.only(), func(spec entities.PackageSpec) string { return spec.Name })
	renderPackageTree("Package specs", specs)

	version, requested := inv.versionInfo(inv.settings.NugetVersion)
	if !requested || len(specs) == 0 {
		return
	}

	opts := inv.options()
	results, err := it.update.Execute(ctx, inv.settings, specs, version, opts)
	if err != nil {
		reportError("Package spec version update", err)
		return
	}
	renderResults(results, opts.DryRun, []string{"Version", "Path"},
		func(spec entities.PackageSpec) []string {
			return []string{spec.NugetVersion, spec.Path}
		})
}

// AddFlags registers the flags of the specs command.
func (it *SpecsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("only", "", "Only keep specs whose name contains this text")
	addVersionFlags(cmd, true)
}
