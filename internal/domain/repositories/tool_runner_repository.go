package repositories

import "context"

// ToolRunnerRepository runs an external tool to completion.
type ToolRunnerRepository interface {
	// Run blocks until the tool exits. A non-zero exit code yields an error
	// wrapping entities.ErrProcessFailure.
	Run(ctx context.Context, tool string, args []string, workDir string) error
}
