package repositories

// AssemblyVersions holds the three version strings of a version-metadata file.
type AssemblyVersions struct {
	AssemblyVersion      string
	FileVersion          string
	InformationalVersion string
}

// VersionInfoRepository reads and rewrites the version-metadata file of a project.
type VersionInfoRepository interface {
	// Locate returns the version-metadata file of the project manifest, or "" when absent.
	Locate(manifestPath string) (string, error)
	Read(infoPath string) (AssemblyVersions, error)
	Write(infoPath, newVersion string) (bool, error)
}
