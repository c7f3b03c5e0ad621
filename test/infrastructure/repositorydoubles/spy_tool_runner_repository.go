//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"path/filepath"

	"github.com/rios0rios0/refbump/internal/domain/repositories"
)

// ToolRun records one external tool invocation.
type ToolRun struct {
	Tool    string
	Args    []string
	WorkDir string
}

// SpyToolRunnerRepository implements repositories.ToolRunnerRepository without
// starting any process. Errs is keyed by the first argument of the invocation.
type SpyToolRunnerRepository struct {
	Errs map[string]error
	Runs []ToolRun

	// OnRun is called after recording, e.g. to stage files a real build would produce.
	OnRun func(run ToolRun)
}

var _ repositories.ToolRunnerRepository = (*SpyToolRunnerRepository)(nil)

func (s *SpyToolRunnerRepository) Run(_ context.Context, tool string, args []string, workDir string) error {
	run := ToolRun{Tool: filepath.Base(tool), Args: args, WorkDir: workDir}
	s.Runs = append(s.Runs, run)
	if s.OnRun != nil {
		s.OnRun(run)
	}
	if len(args) > 0 {
		return s.Errs[args[0]]
	}
	return nil
}
