//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// DependencyCall records one SetDependencyVersion request.
type DependencyCall struct {
	Path    string
	ID      string
	Version string
}

// SpyPackageSpecRepository implements repositories.PackageSpecRepository over
// an in-memory map of spec path to version.
type SpyPackageSpecRepository struct {
	// --- GetVersion / SetVersion ---
	Versions map[string]string
	GetErr   error
	SetErrs  map[string]error

	// --- SetDependencyVersion ---
	DependencyErrs  map[string]error
	DependencyCalls []DependencyCall
}

var _ repositories.PackageSpecRepository = (*SpyPackageSpecRepository)(nil)

func (s *SpyPackageSpecRepository) GetVersion(specPath string) (string, error) {
	if s.GetErr != nil {
		return "", s.GetErr
	}
	return s.Versions[specPath], nil
}

func (s *SpyPackageSpecRepository) SetVersion(specPath, newVersion string) (bool, error) {
	if err := s.SetErrs[specPath]; err != nil {
		return false, err
	}
	changed := s.Versions[specPath] != newVersion
	s.Versions[specPath] = newVersion
	return changed, nil
}

func (s *SpyPackageSpecRepository) SetDependencyVersion(specPath, dependencyID, newVersion string) (bool, error) {
	s.DependencyCalls = append(s.DependencyCalls, DependencyCall{Path: specPath, ID: dependencyID, Version: newVersion})
	if err := s.DependencyErrs[specPath]; err != nil {
		return false, err
	}
	return true, nil
}
