//go:build unit

package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/refbump/internal/infrastructure/repositories/git"
)

func commitFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	repo, err := gogit.PlainInit(root, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err = worktree.Add(name)
		require.NoError(t, err)
	}

	_, err = worktree.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestWorkspaceRepositoryDirtyFiles(t *testing.T) {
	t.Parallel()

	t.Run("should report only the modified files", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		commitFiles(t, root, map[string]string{"A/A.csproj": "<Project/>", "B/B.csproj": "<Project/>"})
		modified := filepath.Join(root, "A", "A.csproj")
		clean := filepath.Join(root, "B", "B.csproj")
		require.NoError(t, os.WriteFile(modified, []byte("<Project></Project>"), 0o644))

		// when
		dirty, err := git.NewWorkspaceRepository().DirtyFiles(root, []string{modified, clean})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{modified}, dirty)
	})

	t.Run("should report untracked files", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		commitFiles(t, root, map[string]string{"A/A.csproj": "<Project/>"})
		untracked := filepath.Join(root, "A", "packages.config")
		require.NoError(t, os.WriteFile(untracked, []byte("<packages/>"), 0o644))

		// when
		dirty, err := git.NewWorkspaceRepository().DirtyFiles(filepath.Join(root, "A"), []string{untracked})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{untracked}, dirty)
	})

	t.Run("should report nothing outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		path := filepath.Join(root, "A.csproj")
		require.NoError(t, os.WriteFile(path, []byte("<Project/>"), 0o644))

		// when
		dirty, err := git.NewWorkspaceRepository().DirtyFiles(root, []string{path})

		// then
		require.NoError(t, err)
		assert.Empty(t, dirty)
	})
}
