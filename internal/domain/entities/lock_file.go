package entities

// LockFileChange is the outcome of rewriting a package version in a lock file.
type LockFileChange struct {
	Changed         bool   // At least one package entry declares the id
	SiblingManifest string // Manifest whose install paths were updated alongside, if any
}
