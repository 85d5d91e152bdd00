// Package wizard collects the project configuration interactively using
// charmbracelet/huh. Each question runs as its own form, in order; a
// question whose answer was already supplied through CLI flags is
// skipped entirely.
package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// ErrCancelled indicates the user aborted the wizard (esc / ctrl-c).
// The CLI treats it as a normal early exit, not an error.
var ErrCancelled = errors.New("wizard: cancelled by user")

// Options marks questions whose answers came from flags and must not be
// asked again.
type Options struct {
	SkipName           bool
	SkipFramework      bool
	SkipPackageManager bool
	SkipInstall        bool
	SkipGit            bool
}

// Run fills the missing parts of cfg by prompting the user. cfg fields
// covered by opts are left untouched. On return with nil error, cfg has
// a name, a framework, a populated option record, and a package manager.
func Run(cfg *config.ProjectConfig, opts Options) error {
	if !opts.SkipName {
		if err := askName(cfg); err != nil {
			return err
		}
	}
	if !opts.SkipFramework {
		if err := askFramework(cfg); err != nil {
			return err
		}
	}
	if err := askFrameworkOptions(cfg); err != nil {
		return err
	}
	if !opts.SkipPackageManager {
		if err := askPackageManager(cfg); err != nil {
			return err
		}
	}
	if !opts.SkipInstall || !opts.SkipGit {
		if err := askFinalSteps(cfg, opts); err != nil {
			return err
		}
	}
	return nil
}

// runForm executes a single-group form with the shared theme, mapping
// user aborts to ErrCancelled.
func runForm(fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(newWizardTheme()).
		WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("wizard: %w", err)
	}
	return nil
}

func askName(cfg *config.ProjectConfig) error {
	name := cfg.Name
	if err := runForm(
		huh.NewInput().
			Title("Project name").
			Description("Lowercase letters, digits, '-', '.', '_', '~'; optionally @scope/name.").
			Placeholder("my-app").
			Value(&name).
			Validate(config.ValidateName),
	); err != nil {
		return err
	}
	cfg.Name = name
	return nil
}

func askFramework(cfg *config.ProjectConfig) error {
	selected := string(config.FrameworkVite)

	opts := []huh.Option[string]{
		huh.NewOption("React + Vite - single-page application", string(config.FrameworkVite)),
		huh.NewOption("Astro - content-focused static site", string(config.FrameworkAstro)),
		huh.NewOption("Next.js - full-stack React framework", string(config.FrameworkNext)),
		huh.NewOption("Express - HTTP API server", string(config.FrameworkExpress)),
	}

	if err := runForm(
		huh.NewSelect[string]().
			Title("Framework").
			Description("The project archetype to scaffold.").
			Options(opts...).
			Value(&selected),
	); err != nil {
		return err
	}
	cfg.Framework = config.Framework(selected)
	return nil
}

func askPackageManager(cfg *config.ProjectConfig) error {
	selected := string(config.NPM)

	if err := runForm(
		huh.NewSelect[string]().
			Title("Package manager").
			Description("Used for installing dependencies and in README commands.").
			Options(
				huh.NewOption("npm", string(config.NPM)),
				huh.NewOption("yarn", string(config.Yarn)),
				huh.NewOption("pnpm", string(config.PNPM)),
			).
			Value(&selected),
	); err != nil {
		return err
	}
	cfg.PackageManager = config.PackageManager(selected)
	return nil
}

func askFinalSteps(cfg *config.ProjectConfig, opts Options) error {
	var fields []huh.Field
	install := cfg.InstallDeps
	initGit := cfg.InitGit

	if !opts.SkipInstall {
		install = true
		fields = append(fields, huh.NewConfirm().
			Title("Install dependencies after scaffolding?").
			Value(&install))
	}
	if !opts.SkipGit {
		initGit = true
		fields = append(fields, huh.NewConfirm().
			Title("Initialize a git repository?").
			Value(&initGit))
	}

	if err := runForm(fields...); err != nil {
		return err
	}
	if !opts.SkipInstall {
		cfg.InstallDeps = install
	}
	if !opts.SkipGit {
		cfg.InitGit = initGit
	}
	return nil
}
