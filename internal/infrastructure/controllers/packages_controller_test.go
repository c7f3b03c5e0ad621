//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/infrastructure/controllers"
	"github.com/rios0rios0/refbump/test/domain/commanddoubles"
	"github.com/rios0rios0/refbump/test/domain/entitybuilders"
)

//nolint:paralleltest // controllers render through the shared pterm printers
func TestPackagesController_Execute(t *testing.T) {
	t.Run("should update package references with the overridden root and ids", func(t *testing.T) {
		// given
		root := t.TempDir()
		resolve := &commanddoubles.StubResolvePackageReferences{
			Specs: []entities.PackageSpec{
				entitybuilders.NewPackageSpecBuilder().WithName("Foo").
					WithConsumer("App", root+"/App/packages.config", "1.2.3").
					BuildPackageSpec(),
			},
		}
		update := &commanddoubles.StubUpdatePackageReferences{}
		controller := controllers.NewPackagesController(resolve, update)
		cmd := newCommand(t, controller, "--root", root, "--names", "Foo", "--set-version", "1.2.4", "--require-clean")

		// when
		controller.Execute(cmd, nil)

		// then
		require.Equal(t, 1, resolve.ExecuteCallCount)
		assert.Equal(t, root, resolve.LastSettings.RootDir)
		assert.Equal(t, "Foo", resolve.LastSettings.ReferenceNugetFilter)
		require.Equal(t, 1, update.ExecuteCallCount)
		assert.Equal(t, "1.2.4", update.LastVersion.Version)
		assert.True(t, update.LastOpts.RequireClean)
		assert.Len(t, update.LastSpecs, 1)
	})

	t.Run("should skip the update when no consumer survives the filter", func(t *testing.T) {
		// given
		resolve := &commanddoubles.StubResolvePackageReferences{
			Specs: []entities.PackageSpec{
				entitybuilders.NewPackageSpecBuilder().WithConsumer("App", "/repo/App/packages.config", "1.2.3").
					BuildPackageSpec(),
			},
		}
		update := &commanddoubles.StubUpdatePackageReferences{}
		controller := controllers.NewPackagesController(resolve, update)
		cmd := newCommand(t, controller, "--only", "tests", "--set-version", "1.2.4")

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 0, update.ExecuteCallCount)
	})
}
