//go:build unit

package controllers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// newCommand builds a subcommand carrying the global flags, pointed at a
// config file whose root is a fresh temporary directory.
func newCommand(t *testing.T, controller entities.Controller, args ...string) *cobra.Command {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "refbump.yaml")
	content := "root_dir: " + filepath.ToSlash(t.TempDir()) + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: controller.GetBind().Use}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().StringP("root", "r", "", "")
	cmd.Flags().String("project-filter", "", "")
	cmd.Flags().String("nuspec-filter", "", "")
	cmd.Flags().String("nuget-config-filter", "", "")
	cmd.Flags().StringSlice("exclude", nil, "")
	cmd.Flags().String("build-tool-dir", "", "")
	cmd.Flags().String("nuget-tool-dir", "", "")
	cmd.Flags().String("nuget-output", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().Bool("require-clean", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	if fc, ok := controller.(entities.FlagController); ok {
		fc.AddFlags(cmd)
	}

	require.NoError(t, cmd.ParseFlags(append([]string{"--config", configPath}, args...)))
	return cmd
}
