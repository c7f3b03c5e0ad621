//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/refbump/internal/domain/commands"
	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// StubResolvePackageReferences is a stub implementation of commands.ResolvePackageReferences.
type StubResolvePackageReferences struct {
	ExecuteCallCount int
	ExecuteErr       error
	Specs            []entities.PackageSpec
	LastSettings     *entities.Settings
}

var _ commands.ResolvePackageReferences = (*StubResolvePackageReferences)(nil)

func (s *StubResolvePackageReferences) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.PackageSpec, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Specs, s.ExecuteErr
}

// StubUpdatePackageReferences is a stub implementation of commands.UpdatePackageReferences.
type StubUpdatePackageReferences struct {
	ExecuteCallCount int
	ExecuteErr       error
	Results          []entities.UpdateResult[entities.RefPackage]
	LastSpecs        []entities.PackageSpec
	LastVersion      entities.VersionInfo
	LastOpts         entities.UpdateOptions
}

var _ commands.UpdatePackageReferences = (*StubUpdatePackageReferences)(nil)

func (s *StubUpdatePackageReferences) Execute(
	_ context.Context,
	_ *entities.Settings,
	specs []entities.PackageSpec,
	version entities.VersionInfo,
	opts entities.UpdateOptions,
) ([]entities.UpdateResult[entities.RefPackage], error) {
	s.ExecuteCallCount++
	s.LastSpecs = specs
	s.LastVersion = version
	s.LastOpts = opts
	return s.Results, s.ExecuteErr
}
