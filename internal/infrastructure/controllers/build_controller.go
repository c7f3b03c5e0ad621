package controllers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/schollz/progressbar/v3"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// BuildController handles the "build" subcommand.
type BuildController struct {
	list  commands.ListProjects
	build commands.BuildPackages
}

// NewBuildController creates a new BuildController.
func NewBuildController(list commands.ListProjects, build commands.BuildPackages) *BuildController {
	return &BuildController{list: list, build: build}
}

// GetBind returns the Cobra command metadata for the build controller.
func (it *BuildController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "build",
		Short: "Build projects and pack their packages",
		Long: `Build each selected project in Release and pack the package spec staged
in its NugetAssets folder into the output directory.

Projects are built one at a time. Failures are collected and listed at the end.`,
	}
}

// Execute builds and packs the selected projects.
func (it *BuildController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	inv, err := loadInvocation(cmd)
	if err != nil {
		reportError("Build", err)
		return
	}

	projects, err := it.list.Execute(ctx, inv.settings)
	if err != nil {
		reportError("Build", err)
		return
	}
	projects = filterByName(projects, inv.only(), func(project entities.Project) string { return project.Name })
	if len(projects) == 0 {
		pterm.Info.Println("No project selected")
		return
	}
	if inv.options().DryRun {
		renderProjectTree("Would build", projects)
		return
	}

	bar := progressbar.NewOptions(len(projects),
		progressbar.OptionSetDescription("Building"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40), //nolint:mnd // bar width
	)
	failures, err := it.build.Execute(ctx, inv.settings, projects, func(project entities.Project, _ error) {
		_ = bar.Add(1)
		bar.Describe(project.Name)
	})
	_ = bar.Finish()
	if err != nil {
		reportError("Build", err)
		return
	}

	if len(failures) > 0 {
		logger.Errorf("Build finished with errors:\n%s", strings.Join(failures, "\n"))
	}
	fmt.Println(summaryLine(len(projects), len(failures), false))
}

// AddFlags registers the flags of the build command.
func (it *BuildController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("only", "", "Only build projects whose name contains this text")
}

func filterByName[T any](items []T, text string, name func(T) string) []T {
	if strings.TrimSpace(text) == "" {
		return items
	}
	needle := strings.ToLower(text)
	var result []T
	for _, item := range items {
		if strings.Contains(strings.ToLower(name(item)), needle) {
			result = append(result, item)
		}
	}
	return result
}
