package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

const (
	// Tool executables and the staging layout the pack step reads from.
	BuildToolName = "MSBuild.exe"
	PackToolName  = "NuGet.exe"
	StagingDir    = "NugetAssets"
	StagingLibDir = "Lib"
)

var errSpecNotFound = errors.New("nuspec could not be found")

// BuildPackages builds each selected project and packs the package spec staged beside it.
type BuildPackages interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		projects []entities.Project,
		onDone func(project entities.Project, err error),
	) ([]string, error)
}

// BuildPackagesCommand builds and packs projects one at a time, collecting per-project failures.
type BuildPackagesCommand struct {
	scanner repositories.FileScanner
	runner  repositories.ToolRunnerRepository
}

// NewBuildPackagesCommand creates a new BuildPackagesCommand.
func NewBuildPackagesCommand(
	scanner repositories.FileScanner,
	runner repositories.ToolRunnerRepository,
) *BuildPackagesCommand {
	return &BuildPackagesCommand{scanner: scanner, runner: runner}
}

// Execute processes projects one at a time and returns the aggregated
// "name: message" list of per-project failures. A missing tool aborts before
// anything runs. onDone, when set, is called after each project.
func (it *BuildPackagesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	projects []entities.Project,
	onDone func(project entities.Project, err error),
) ([]string, error) {
	buildTool := filepath.Join(settings.BuildToolDir, BuildToolName)
	packTool := filepath.Join(settings.NugetToolDir, PackToolName)
	for _, tool := range []string{buildTool, packTool} {
		if _, err := os.Stat(tool); err != nil {
			return nil, fmt.Errorf("%w: tool %s", entities.ErrNotFound, tool)
		}
	}
	if settings.NugetOutput == "" {
		return nil, fmt.Errorf("%w: package output directory should be not empty", entities.ErrValidationFailure)
	}

	var failures []string
	for _, project := range projects {
		err := it.buildProject(ctx, settings, project, buildTool, packTool)
		if err != nil {
			logger.Errorf("Failed to build %s: %v", project.Name, err)
			failures = append(failures, fmt.Sprintf("%s: %v", project.Name, err))
		} else {
			logger.Infof("Packed %s into %s", project.Name, settings.NugetOutput)
		}
		if onDone != nil {
			onDone(project, err)
		}
	}
	return failures, nil
}

func (it *BuildPackagesCommand) buildProject(
	ctx context.Context,
	settings *entities.Settings,
	project entities.Project,
	buildTool, packTool string,
) error {
	projectDir := filepath.Dir(project.Path)
	staging := filepath.Join(projectDir, StagingDir)
	lib := filepath.Join(staging, StagingLibDir)

	if err := os.RemoveAll(lib); err != nil {
		return fmt.Errorf("failed to clean %s: %w", lib, err)
	}
	if err := os.MkdirAll(lib, 0o755); err != nil { //nolint:mnd // directory permissions
		return fmt.Errorf("failed to create %s: %w", lib, err)
	}

	buildArgs := []string{project.Path, "/property:Configuration=Release", "/t:rebuild", "/m", "/p:Platform=x86"}
	if err := it.runner.Run(ctx, buildTool, buildArgs, projectDir); err != nil {
		return err
	}

	specs, err := it.scanner.Scan(ctx, staging, settings.NuspecFilter, nil)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return errSpecNotFound
	}

	if err = os.MkdirAll(settings.NugetOutput, 0o755); err != nil { //nolint:mnd // directory permissions
		return fmt.Errorf("failed to create %s: %w", settings.NugetOutput, err)
	}
	packArgs := []string{"pack", specs[0], "-Properties", "Configuration=Release"}
	return it.runner.Run(ctx, packTool, packArgs, settings.NugetOutput)
}
