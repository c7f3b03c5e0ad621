//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// StubVersionInfoRepository implements repositories.VersionInfoRepository over
// in-memory maps. Write sets all three versions of the file.
type StubVersionInfoRepository struct {
	// --- Locate ---
	InfoPaths  map[string]string // manifest path to info path
	LocateErrs map[string]error

	// --- Read / Write ---
	Versions   map[string]repositories.AssemblyVersions
	WriteErrs  map[string]error
	WriteCalls []string
}

var _ repositories.VersionInfoRepository = (*StubVersionInfoRepository)(nil)

func (s *StubVersionInfoRepository) Locate(manifestPath string) (string, error) {
	if err := s.LocateErrs[manifestPath]; err != nil {
		return "", err
	}
	return s.InfoPaths[manifestPath], nil
}

func (s *StubVersionInfoRepository) Read(infoPath string) (repositories.AssemblyVersions, error) {
	return s.Versions[infoPath], nil
}

func (s *StubVersionInfoRepository) Write(infoPath, newVersion string) (bool, error) {
	s.WriteCalls = append(s.WriteCalls, infoPath)
	if err := s.WriteErrs[infoPath]; err != nil {
		return false, err
	}
	s.Versions[infoPath] = repositories.AssemblyVersions{
		AssemblyVersion:      newVersion,
		FileVersion:          newVersion,
		InformationalVersion: newVersion,
	}
	return true, nil
}
