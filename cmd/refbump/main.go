package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/refbump/internal"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "refbump",
		Short: "Propagate assembly and package versions across a .NET source tree",
		Long: `Discover project manifests, package specs and packages.config lock files
under a root directory, find every file referencing a given assembly or
package, and rewrite their versions in one batch with a result per file.

Usage modes:
  refbump assemblies --names Lib --set-version 2.0.0.0
  refbump packages --names Foo --set-version 1.2.4
  refbump projects --bump revision
  refbump specs --set-version 3.1.0
  refbump build --nuget-output ./out`,
		SilenceUsage: true,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().StringP("root", "r", "",
		"Root directory to scan (overrides root_dir)")
	cmd.PersistentFlags().String("project-filter", "",
		"Glob for project manifests (default *.csproj)")
	cmd.PersistentFlags().String("nuspec-filter", "",
		"Glob for package specs (default *.nuspec)")
	cmd.PersistentFlags().String("nuget-config-filter", "",
		"Glob for package lock files (default packages.config)")
	cmd.PersistentFlags().StringSlice("exclude", nil,
		"Directory globs skipped while scanning (default .git)")
	cmd.PersistentFlags().String("build-tool-dir", "",
		"Directory holding MSBuild.exe")
	cmd.PersistentFlags().String("nuget-tool-dir", "",
		"Directory holding NuGet.exe")
	cmd.PersistentFlags().String("nuget-output", "",
		"Directory receiving packed packages")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().Bool("require-clean", false,
		"Abort when a file about to be rewritten has uncommitted changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if fc, ok := ctrl.(entities.FlagController); ok {
			fc.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'refbump': %s", err)
	}
}
