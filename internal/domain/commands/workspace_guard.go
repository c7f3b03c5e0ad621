package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// ensureClean refuses to continue when any of the given files has uncommitted changes.
func ensureClean(workspace repositories.WorkspaceRepository, root string, paths []string) error {
	dirty, err := workspace.DirtyFiles(root, paths)
	if err != nil {
		return fmt.Errorf("failed to inspect workspace: %w", err)
	}
	if len(dirty) > 0 {
		return fmt.Errorf("%w: %s", entities.ErrDirtyWorkspace, strings.Join(dirty, ", "))
	}
	return nil
}

func warnOnDowngrade(name, path, current, target string) {
	if entities.IsDowngrade(current, target) {
		logger.Warnf("Downgrading %s in %s from %s to %s", name, path, current, target)
	}
}

func nameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
