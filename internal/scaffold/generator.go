// Package scaffold turns a validated ProjectConfig into a project tree
// on disk. One generator per framework shares the same phase structure:
// structure → manifest → configuration → source → documentation. Phases
// are strictly ordered because later phases depend on earlier decisions:
// the manifest's dependency set is final before any source file that
// imports those dependencies is written.
package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/fsutil"
	"github.com/stackgen-dev/stackgen/internal/registry"
)

// Result records what a generator produced, for user messaging and tests.
type Result struct {
	TargetDir    string
	CreatedDirs  []string // relative to TargetDir
	CreatedFiles []string // relative to TargetDir
}

// workflowPath is the CI workflow location under the project root.
const workflowPath = ".github/workflows/ci.yml"

// Generate dispatches cfg to the generator for its framework and runs it.
// cfg must be normalized and validated; an unknown framework here is an
// internal inconsistency and panics. Filesystem errors abort generation
// and leave any partial tree in place for the user to inspect or delete.
func Generate(ctx context.Context, cfg *config.ProjectConfig, resolver *registry.Resolver, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g := base{
		cfg:      cfg,
		resolver: resolver,
		logger:   logger,
		res:      &Result{TargetDir: cfg.TargetDir},
	}

	var err error
	switch cfg.Framework {
	case config.FrameworkVite:
		err = (&viteGenerator{base: g}).generate(ctx)
	case config.FrameworkAstro:
		err = (&astroGenerator{base: g}).generate(ctx)
	case config.FrameworkNext:
		err = (&nextGenerator{base: g}).generate(ctx)
	case config.FrameworkExpress:
		err = (&expressGenerator{base: g}).generate(ctx)
	default:
		panic(fmt.Sprintf("scaffold: unknown framework %q", cfg.Framework))
	}
	if err != nil {
		return nil, err
	}
	return g.res, nil
}

// base carries the state shared by all four generators: the target
// configuration, the version resolver, and the accumulating result.
type base struct {
	cfg      *config.ProjectConfig
	resolver *registry.Resolver
	logger   *slog.Logger
	res      *Result
}

// dir creates rel under the target directory and records it.
func (b *base) dir(rel string) error {
	if err := fsutil.EnsureDir(filepath.Join(b.cfg.TargetDir, rel)); err != nil {
		return err
	}
	b.res.CreatedDirs = append(b.res.CreatedDirs, rel)
	return nil
}

// emit writes content to rel under the target directory and records it.
func (b *base) emit(rel, content string) error {
	if err := fsutil.WriteFile(filepath.Join(b.cfg.TargetDir, rel), content); err != nil {
		return err
	}
	b.res.CreatedFiles = append(b.res.CreatedFiles, rel)
	return nil
}

// emitJSON writes v as pretty-printed JSON to rel and records it.
func (b *base) emitJSON(rel string, v any) error {
	if err := fsutil.WriteJSON(filepath.Join(b.cfg.TargetDir, rel), v); err != nil {
		return err
	}
	b.res.CreatedFiles = append(b.res.CreatedFiles, rel)
	return nil
}

// resolve maps package names to version strings in one concurrent batch.
func (b *base) resolve(ctx context.Context, names []string) map[string]string {
	b.logger.Debug("resolving dependency versions", "framework", b.cfg.Framework, "packages", len(names))
	return b.resolver.ResolveAll(ctx, names)
}
