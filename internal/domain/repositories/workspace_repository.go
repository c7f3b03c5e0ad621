package repositories

// WorkspaceRepository inspects the version control state of files on disk.
type WorkspaceRepository interface {
	// DirtyFiles returns the subset of paths with uncommitted changes. Paths
	// outside any git worktree are never reported.
	DirtyFiles(root string, paths []string) ([]string, error)
}
