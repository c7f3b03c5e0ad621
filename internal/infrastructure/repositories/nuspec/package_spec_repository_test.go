//go:build unit

package nuspec_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/nuspec"
)

const packageSpec = `<?xml version="1.0"?>
<package>
  <metadata>
    <id>Bar</id>
    <version>3.1.0</version>
    <dependencies>
      <group targetFramework="net45">
        <dependency id="Foo" version="1.2.3"/>
        <dependency id="Other" version="1.0.0"/>
      </group>
      <group targetFramework="net461">
        <dependency id="Foo" version="1.2.3"/>
      </group>
    </dependencies>
  </metadata>
</package>`

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Bar.nuspec")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var studioSpec = strings.ReplaceAll(`<?xml version="1.0" encoding="utf-8"?>
<package xmlns="http://schemas.microsoft.com/packaging/2011/08/nuspec.xsd">
  <metadata>
    <id>Bar</id>
    <version>3.1.0</version>
    <description>Bar's helpers &amp; extensions</description>
    <dependencies>
      <dependency id="Foo" version="1.2.3" />
      <dependency id='Foo' />
    </dependencies>
  </metadata>
</package>
`, "\n", "\r\n")

func TestPackageSpecRepositoryVersion(t *testing.T) {
	t.Parallel()

	t.Run("should read the declared version", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSpec(t, packageSpec)

		// when
		version, err := nuspec.NewPackageSpecRepository().GetVersion(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "3.1.0", version)
	})

	t.Run("should return exactly the version that was set", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSpec(t, packageSpec)
		repo := nuspec.NewPackageSpecRepository()

		// when
		changed, err := repo.SetVersion(path, "3.2.0")

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		version, err := repo.GetVersion(path)
		require.NoError(t, err)
		assert.Equal(t, "3.2.0", version)
		data, _ := os.ReadFile(path)
		assert.Equal(t, strings.Replace(packageSpec, "<version>3.1.0</version>", "<version>3.2.0</version>", 1), string(data))
	})

	t.Run("should report no change when the version is already set", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSpec(t, packageSpec)

		// when
		changed, err := nuspec.NewPackageSpecRepository().SetVersion(path, "3.1.0")

		// then
		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestPackageSpecRepositorySetDependencyVersion(t *testing.T) {
	t.Parallel()

	t.Run("should update every dependency with the id", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSpec(t, packageSpec)

		// when
		changed, err := nuspec.NewPackageSpecRepository().SetDependencyVersion(path, "Foo", "1.2.4")

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		data, _ := os.ReadFile(path)
		expected := strings.ReplaceAll(packageSpec, `id="Foo" version="1.2.3"`, `id="Foo" version="1.2.4"`)
		assert.Equal(t, expected, string(data))
		assert.Equal(t, 2, strings.Count(string(data), `version="1.2.4"`))
	})

	t.Run("should leave the file untouched when no dependency has the id", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSpec(t, packageSpec)

		// when
		changed, err := nuspec.NewPackageSpecRepository().SetDependencyVersion(path, "Missing", "1.0.0")

		// then
		require.NoError(t, err)
		assert.False(t, changed)
		data, _ := os.ReadFile(path)
		assert.Equal(t, packageSpec, string(data))
	})
}

func TestPackageSpecRepositoryLayout(t *testing.T) {
	t.Parallel()

	t.Run("should keep the layout when setting the version", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSpec(t, studioSpec)

		// when
		changed, err := nuspec.NewPackageSpecRepository().SetVersion(path, "3.2.0")

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		data, _ := os.ReadFile(path)
		assert.Equal(t, strings.Replace(studioSpec, "<version>3.1.0</version>", "<version>3.2.0</version>", 1), string(data))
	})

	t.Run("should keep the layout when pointing dependencies at a new version", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeSpec(t, studioSpec)

		// when
		changed, err := nuspec.NewPackageSpecRepository().SetDependencyVersion(path, "Foo", "1.2.4")

		// then
		require.NoError(t, err)
		assert.True(t, changed)
		expected := strings.Replace(studioSpec, `id="Foo" version="1.2.3" />`, `id="Foo" version="1.2.4" />`, 1)
		expected = strings.Replace(expected, `id='Foo' />`, `id='Foo' version="1.2.4" />`, 1)
		data, _ := os.ReadFile(path)
		assert.Equal(t, expected, string(data))
	})
}
