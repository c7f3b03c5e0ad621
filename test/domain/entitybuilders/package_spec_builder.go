//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// PackageSpecBuilder helps create test package specs and package artifacts with a fluent interface.
type PackageSpecBuilder struct {
	*testkit.BaseBuilder
	name      string
	path      string
	version   string
	consumers []entities.RefPackage
}

// NewPackageSpecBuilder creates a new package spec builder with sensible defaults.
func NewPackageSpecBuilder() *PackageSpecBuilder {
	return &PackageSpecBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "Foo",
		path:        "/repo/Foo/Foo.nuspec",
		version:     "1.2.3",
	}
}

// WithName sets the package id.
func (b *PackageSpecBuilder) WithName(name string) *PackageSpecBuilder {
	b.name = name
	return b
}

// WithPath sets the spec path.
func (b *PackageSpecBuilder) WithPath(path string) *PackageSpecBuilder {
	b.path = path
	return b
}

// WithVersion sets the declared version.
func (b *PackageSpecBuilder) WithVersion(version string) *PackageSpecBuilder {
	b.version = version
	return b
}

// WithConsumer adds a lock file pinning the package at refVersion.
func (b *PackageSpecBuilder) WithConsumer(name, path, refVersion string) *PackageSpecBuilder {
	b.consumers = append(b.consumers, entities.RefPackage{
		Item:       entities.Item{Name: name, Path: path},
		RefVersion: refVersion,
	})
	return b
}

// Build creates the package spec (satisfies testkit.Builder interface).
func (b *PackageSpecBuilder) Build() interface{} {
	return b.BuildPackageSpec()
}

// BuildPackageSpec creates the package spec with a concrete return type.
func (b *PackageSpecBuilder) BuildPackageSpec() entities.PackageSpec {
	consumers := make([]entities.RefPackage, len(b.consumers))
	copy(consumers, b.consumers)
	return entities.PackageSpec{
		Item:         entities.Item{Name: b.name, Path: b.path},
		NugetVersion: b.version,
		Consumers:    consumers,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageSpecBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "Foo"
	b.path = "/repo/Foo/Foo.nuspec"
	b.version = "1.2.3"
	b.consumers = nil
	return b
}

// Clone creates a deep copy of the PackageSpecBuilder.
func (b *PackageSpecBuilder) Clone() testkit.Builder {
	consumers := make([]entities.RefPackage, len(b.consumers))
	copy(consumers, b.consumers)
	return &PackageSpecBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		path:        b.path,
		version:     b.version,
		consumers:   consumers,
	}
}
