// Package runner executes the external tools the scaffolder hands off to
// after generation: the selected package manager's install command and
// the git executable. Failures here are reported to the caller, which
// downgrades them to warnings; a generated project is already complete
// and the user can run the commands manually.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// ErrToolNotFound indicates the external executable is not on PATH.
var ErrToolNotFound = errors.New("runner: executable not found")

// Timeouts per external stage. Dependency installation can legitimately
// take minutes on a cold cache.
const (
	installTimeout = 10 * time.Minute
	gitTimeout     = 30 * time.Second
)

// initialCommitMessage is used for the first commit after scaffolding.
const initialCommitMessage = "Initial commit from stackgen"

// Runner executes external commands in a project directory.
type Runner struct {
	logger *slog.Logger
}

// New creates a Runner. A nil logger discards output.
func New(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger}
}

// Run executes name with args in dir, bounded by timeout. Stderr is
// captured and folded into the returned error.
func (r *Runner) Run(ctx context.Context, dir string, timeout time.Duration, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	r.logger.Debug("running external command", "dir", dir, "command", name, "args", args)
	start := time.Now()
	err := cmd.Run()
	r.logger.Debug("external command finished", "command", name, "duration", time.Since(start), "error", err)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%s timed out after %s", name, timeout)
		}
		if msg := lastStderrLine(stderr.String()); msg != "" {
			return fmt.Errorf("%s %s: %w (%s)", name, strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// InstallDeps runs the package manager's install command in dir.
func (r *Runner) InstallDeps(ctx context.Context, dir string, pm config.PackageManager) error {
	return r.Run(ctx, dir, installTimeout, string(pm), "install")
}

// InitGit initializes a git repository in dir and creates the initial
// commit. Each subcommand must succeed before the next runs so the
// commit snapshots the full generated tree.
func (r *Runner) InitGit(ctx context.Context, dir string) error {
	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "-m", initialCommitMessage},
	}
	for _, args := range steps {
		if err := r.Run(ctx, dir, gitTimeout, "git", args...); err != nil {
			return err
		}
	}
	return nil
}

// lastStderrLine returns the last non-empty stderr line for error context.
func lastStderrLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
