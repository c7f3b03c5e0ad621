package git

import (
	"errors"
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"
)

// WorkspaceRepository reports uncommitted files using the git worktree that contains the root.
type WorkspaceRepository struct{}

// NewWorkspaceRepository creates a new WorkspaceRepository.
func NewWorkspaceRepository() *WorkspaceRepository {
	return &WorkspaceRepository{}
}

// DirtyFiles returns the given paths that have uncommitted changes in the repository at root.
func (it *WorkspaceRepository) DirtyFiles(root string, paths []string) ([]string, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			logger.Debugf("%s is not inside a git repository", root)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", root, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to open worktree at %s: %w", root, err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read status at %s: %w", root, err)
	}

	base := worktree.Filesystem.Root()
	var dirty []string
	for _, path := range paths {
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			return nil, absErr
		}
		rel, relErr := filepath.Rel(base, abs)
		if relErr != nil {
			continue
		}
		entry, ok := status[filepath.ToSlash(rel)]
		if ok && (entry.Worktree != gogit.Unmodified || entry.Staging != gogit.Unmodified) {
			dirty = append(dirty, path)
		}
	}
	return dirty, nil
}
