package repositories

// ManifestRepository reads and rewrites the references declared by a project manifest.
type ManifestRepository interface {
	// GetReferenceVersion returns the version of the first reference named name
	// (case-insensitive), or "" when the manifest does not reference it.
	GetReferenceVersion(manifestPath, name string) (string, error)

	// ChangeReferenceVersion rewrites the version of the first reference named
	// name. It returns false without writing when the version is already newVersion
	// or when no reference matches.
	ChangeReferenceVersion(manifestPath, name, newVersion string) (bool, error)

	// UpdateInstallPathVersion rewrites the package version embedded in the
	// install path of references to the package name.
	UpdateInstallPathVersion(manifestPath, name, newVersion string) (bool, error)
}
