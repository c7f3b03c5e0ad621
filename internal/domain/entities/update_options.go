package entities

// UpdateOptions holds runtime options passed to batch commands.
type UpdateOptions struct {
	DryRun       bool
	RequireClean bool // Abort before writing when a target file has uncommitted changes
}
