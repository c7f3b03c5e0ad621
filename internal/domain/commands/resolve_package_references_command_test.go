//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/refbump/test/infrastructure/repositorydoubles"
)

func TestResolvePackageReferencesCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should name each consumer after the directory holding its lock file", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.StubFileScanner{Files: map[string][]string{
			"packages.config": {"/repo/App/packages.config", "/repo/Tool/packages.config"},
		}}
		lockFiles := &doubles.SpyLockFileRepository{Packages: map[string]map[string]string{
			"/repo/App/packages.config":  {"Foo": "1.2.3", "Bar": "4.0.0"},
			"/repo/Tool/packages.config": {"Bar": "4.0.0"},
		}}
		cmd := commands.NewResolvePackageReferencesCommand(scanner, lockFiles)
		settings := entitybuilders.NewSettingsBuilder().WithPackages("Foo").BuildSettings()

		// when
		specs, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		require.Len(t, specs, 1)
		assert.Equal(t, "Foo", specs[0].Name)
		require.Len(t, specs[0].Consumers, 1)
		assert.Equal(t, "App", specs[0].Consumers[0].Name)
		assert.Equal(t, "/repo/App/packages.config", specs[0].Consumers[0].Path)
		assert.Equal(t, "1.2.3", specs[0].Consumers[0].RefVersion)
	})

	t.Run("should only consider the first lock file of a directory", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.StubFileScanner{Files: map[string][]string{
			"packages.config": {"/repo/App/a.packages.config", "/repo/App/b.packages.config"},
		}}
		lockFiles := &doubles.SpyLockFileRepository{Packages: map[string]map[string]string{
			"/repo/App/a.packages.config": {"Foo": "1.0.0"},
			"/repo/App/b.packages.config": {"Foo": "2.0.0"},
		}}
		cmd := commands.NewResolvePackageReferencesCommand(scanner, lockFiles)
		settings := entitybuilders.NewSettingsBuilder().WithPackages("Foo").BuildSettings()

		// when
		specs, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		require.Len(t, specs, 1)
		require.Len(t, specs[0].Consumers, 1)
		assert.Equal(t, "1.0.0", specs[0].Consumers[0].RefVersion)
	})

	t.Run("should omit packages nobody declares", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.StubFileScanner{Files: map[string][]string{
			"packages.config": {"/repo/App/packages.config"},
		}}
		lockFiles := &doubles.SpyLockFileRepository{Packages: map[string]map[string]string{
			"/repo/App/packages.config": {"Bar": "4.0.0"},
		}}
		cmd := commands.NewResolvePackageReferencesCommand(scanner, lockFiles)
		settings := entitybuilders.NewSettingsBuilder().WithPackages("Foo").BuildSettings()

		// when
		specs, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Empty(t, specs)
	})

	t.Run("should return no artifacts when the root does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.StubFileScanner{ScanErr: fmt.Errorf("%w: directory /missing", entities.ErrNotFound)}
		cmd := commands.NewResolvePackageReferencesCommand(scanner, &doubles.SpyLockFileRepository{})
		settings := entitybuilders.NewSettingsBuilder().WithPackages("Foo").BuildSettings()

		// when
		specs, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Empty(t, specs)
	})
}

func TestFirstPerDirectory(t *testing.T) {
	t.Parallel()

	t.Run("should keep the first path of every directory in order", func(t *testing.T) {
		t.Parallel()

		// given
		paths := []string{"/a/x.config", "/a/y.config", "/b/x.config", "/a/b/x.config"}

		// when
		result := commands.FirstPerDirectory(paths)

		// then
		assert.Equal(t, []string{"/a/x.config", "/b/x.config", "/a/b/x.config"}, result)
	})
}

func TestNameWithoutExt(t *testing.T) {
	t.Parallel()

	t.Run("should strip directory and extension", func(t *testing.T) {
		t.Parallel()

		// given
		path := "/repo/My.Lib/My.Lib.csproj"

		// when
		name := commands.NameWithoutExt(path)

		// then
		assert.Equal(t, "My.Lib", name)
	})
}
