package entities

// Item is the identity shared by everything discovered on disk.
type Item struct {
	Name string // Artifact or consumer name
	Path string // Absolute path of the file backing the item
}

// Project is a compiled unit discovered from a project manifest, or an
// assembly artifact whose consumers reference it by name.
type Project struct {
	Item
	AssemblyVersion      string
	FileVersion          string
	InformationalVersion string
	Consumers            []RefAssembly // Manifests referencing this assembly, in discovery order
}

// RefAssembly is a consumer manifest viewed as a child of the assembly it references.
type RefAssembly struct {
	Item
	AssemblyVersion      string
	FileVersion          string
	InformationalVersion string
	RefVersion           string // Version declared in the consumer's reference at scan time
}

// PackageSpec is a redistributable package, either discovered from its
// specification file or named as the artifact of a package reference scan.
type PackageSpec struct {
	Item
	NugetVersion string
	Consumers    []RefPackage // Lock files declaring this package, in discovery order
}

// RefPackage is a lock file viewed as a child of the package it declares.
// Name is the directory holding the lock file.
type RefPackage struct {
	Item
	NugetVersion string
	RefVersion   string // Version declared by the lock file at scan time
}
