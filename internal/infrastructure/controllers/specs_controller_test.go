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
func TestSpecsController_Execute(t *testing.T) {
	t.Run("should set the version of every listed spec", func(t *testing.T) {
		// given
		list := &commanddoubles.StubListPackageSpecs{
			Specs: []entities.PackageSpec{
				entitybuilders.NewPackageSpecBuilder().WithName("Foo").BuildPackageSpec(),
				entitybuilders.NewPackageSpecBuilder().WithName("Bar").BuildPackageSpec(),
			},
		}
		update := &commanddoubles.StubUpdatePackageSpecVersions{}
		controller := controllers.NewSpecsController(list, update)
		cmd := newCommand(t, controller, "--set-version", "3.1.0")

		// when
		controller.Execute(cmd, nil)

		// then
		require.Equal(t, 1, update.ExecuteCallCount)
		assert.Equal(t, "3.1.0", update.LastVersion.Version)
		assert.Len(t, update.LastSpecs, 2)
	})

	t.Run("should not update when listing fails", func(t *testing.T) {
		// given
		list := &commanddoubles.StubListPackageSpecs{ExecuteErr: entities.ErrNotFound}
		update := &commanddoubles.StubUpdatePackageSpecVersions{}
		controller := controllers.NewSpecsController(list, update)
		cmd := newCommand(t, controller, "--bump", entities.BumpMinor)

		// when
		controller.Execute(cmd, nil)

		// then
		assert.Equal(t, 1, list.ExecuteCallCount)
		assert.Equal(t, 0, update.ExecuteCallCount)
	})
}
