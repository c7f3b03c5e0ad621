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
	"github.com/rios0rios0/refbump/internal/domain/repositories"
	"github.com/rios0rios0/refbump/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/refbump/test/infrastructure/repositorydoubles"
)

func TestListProjectsCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should list every manifest with the versions of its assembly info file", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.StubFileScanner{Files: map[string][]string{
			"*.csproj": {"/repo/A/A.csproj", "/repo/B/B.csproj"},
		}}
		versionInfo := &doubles.StubVersionInfoRepository{
			InfoPaths: map[string]string{"/repo/A/A.csproj": "/repo/A/Properties/AssemblyInfo.cs"},
			Versions: map[string]repositories.AssemblyVersions{
				"/repo/A/Properties/AssemblyInfo.cs": {
					AssemblyVersion:      "1.0.0.0",
					FileVersion:          "1.0.0.1",
					InformationalVersion: "1.0.0-beta",
				},
			},
		}
		cmd := commands.NewListProjectsCommand(scanner, versionInfo)

		// when
		projects, err := cmd.Execute(context.Background(), entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "A", projects[0].Name)
		assert.Equal(t, "1.0.0.0", projects[0].AssemblyVersion)
		assert.Equal(t, "1.0.0.1", projects[0].FileVersion)
		assert.Equal(t, "1.0.0-beta", projects[0].InformationalVersion)
		assert.Equal(t, "B", projects[1].Name)
		assert.Empty(t, projects[1].AssemblyVersion)
	})

	t.Run("should fail when the root does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		scanner := &doubles.StubFileScanner{ScanErr: fmt.Errorf("%w: directory /repo", entities.ErrNotFound)}
		cmd := commands.NewListProjectsCommand(scanner, &doubles.StubVersionInfoRepository{})

		// when
		projects, err := cmd.Execute(context.Background(), entitybuilders.NewSettingsBuilder().BuildSettings())

		// then
		require.ErrorIs(t, err, entities.ErrNotFound)
		assert.Nil(t, projects)
	})
}
