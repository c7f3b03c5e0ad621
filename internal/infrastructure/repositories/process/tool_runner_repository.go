package process

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"sync"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/refbump/internal/domain/entities"
)

// maxLineSize bounds one relayed output line. Longer output is drained unread
// so the tool never blocks on a full pipe.
const maxLineSize = 1024 * 1024

// ToolRunnerRepository runs external tools and relays their output to the log line by line.
type ToolRunnerRepository struct{}

// NewToolRunnerRepository creates a new ToolRunnerRepository.
func NewToolRunnerRepository() *ToolRunnerRepository {
	return &ToolRunnerRepository{}
}

// Run starts tool in workDir and blocks until it exits. A non-zero exit code
// yields an *entities.ProcessError.
func (it *ToolRunnerRepository) Run(ctx context.Context, tool string, args []string, workDir string) error {
	name := filepath.Base(tool)
	logger.Infof("Running %s %v", name, args)

	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = workDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to attach stdout of %s: %w", name, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to attach stderr of %s: %w", name, err)
	}
	if err = cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	var wg sync.WaitGroup
	wg.Add(2) //nolint:mnd // stdout and stderr
	go relay(&wg, stdout, logger.InfoLevel)
	go relay(&wg, stderr, logger.WarnLevel)
	wg.Wait()

	if err = cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &entities.ProcessError{Tool: name, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("%w: %s: %w", entities.ErrProcessFailure, name, err)
	}
	return nil
}

func relay(wg *sync.WaitGroup, reader io.Reader, level logger.Level) {
	defer wg.Done()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for scanner.Scan() {
		logger.StandardLogger().Logf(level, "Build output: %s", scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Warnf("Build output no longer relayed: %v", err)
		_, _ = io.Copy(io.Discard, reader)
	}
}
