package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/stackgen-dev/stackgen/internal/cli/wizard"
	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/fsutil"
	"github.com/stackgen-dev/stackgen/internal/registry"
	"github.com/stackgen-dev/stackgen/internal/runner"
	"github.com/stackgen-dev/stackgen/internal/scaffold"
	"github.com/stackgen-dev/stackgen/internal/ui"
)

type createFlags struct {
	framework      string
	directory      string
	packageManager string
	yes            bool
	noInstall      bool
	noGit          bool
	verbose        bool
}

func newCreateCmd() *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project",
		Long: `Create a new project in a directory named after it.

Missing answers (name, framework, features) are collected interactively
when running in a terminal; with --yes or a non-interactive stdin the
defaults are used instead.`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: flags.validate,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.framework, "framework", "f", "", "framework to scaffold (vite, astro, next, express)")
	cmd.Flags().StringVarP(&flags.directory, "directory", "d", "", "target directory (defaults to ./<name>)")
	cmd.Flags().StringVarP(&flags.packageManager, "package-manager", "p", "", "package manager (npm, yarn, pnpm)")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "skip prompts and accept defaults")
	cmd.Flags().BoolVar(&flags.noInstall, "no-install", false, "skip dependency installation")
	cmd.Flags().BoolVar(&flags.noGit, "no-git", false, "skip git repository initialization")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose logging")

	return cmd
}

// validate rejects bad enum flag values before any prompting starts.
func (f *createFlags) validate(cmd *cobra.Command, args []string) error {
	if f.framework != "" && !config.Framework(f.framework).IsValid() {
		return fmt.Errorf("unknown framework %q (expected one of: vite, astro, next, express)", f.framework)
	}
	if f.packageManager != "" && !config.PackageManager(f.packageManager).IsValid() {
		return fmt.Errorf("unknown package manager %q (expected one of: npm, yarn, pnpm)", f.packageManager)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string, flags *createFlags) error {
	logger := newLogger(flags.verbose)
	theme := ui.NewTheme(ui.DetectNoColor())
	printer := ui.NewPrinter(theme)
	ctx := cmd.Context()

	cfg := &config.ProjectConfig{
		Framework:      config.Framework(flags.framework),
		TargetDir:      flags.directory,
		PackageManager: config.PackageManager(flags.packageManager),
		InstallDeps:    !flags.noInstall,
		InitGit:        !flags.noGit,
	}
	if len(args) == 1 {
		if err := config.ValidateName(args[0]); err != nil {
			return err
		}
		cfg.Name = args[0]
	}

	if interactiveSession(flags) {
		err := wizard.Run(cfg, wizard.Options{
			SkipName:           cfg.Name != "",
			SkipFramework:      flags.framework != "",
			SkipPackageManager: flags.packageManager != "",
			SkipInstall:        cmd.Flags().Changed("no-install"),
			SkipGit:            cmd.Flags().Changed("no-git"),
		})
		if errors.Is(err, wizard.ErrCancelled) {
			printer.Step("Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	} else {
		if cfg.Name == "" {
			return fmt.Errorf("project name required in non-interactive mode (stackgen create <name>)")
		}
		if cfg.Framework == "" {
			return fmt.Errorf("--framework required in non-interactive mode")
		}
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	empty, err := fsutil.IsDirMissingOrEmpty(cfg.TargetDir)
	if err != nil {
		return err
	}
	if !empty {
		return fmt.Errorf("target directory %s already exists and is not empty", cfg.TargetDir)
	}

	printer.Banner(cfg.Name, cfg.Framework.DisplayName())

	resolver := registry.NewResolver("", nil, logger)
	result, err := scaffold.Generate(ctx, cfg, resolver, logger)
	if err != nil {
		return err
	}
	printer.Success("Generated %d files in %s", len(result.CreatedFiles), result.TargetDir)

	run := runner.New(logger)
	installed := false
	if cfg.InstallDeps {
		err := ui.RunWithSpinner(ctx, "Installing dependencies...", func() error {
			return run.InstallDeps(ctx, cfg.TargetDir, cfg.PackageManager)
		})
		if err != nil {
			printer.Warn("Dependency installation failed: %v", err)
			printer.Warn("Run %q manually inside the project.", cfg.PackageManager.InstallCommand())
		} else {
			printer.Success("Dependencies installed")
			installed = true
		}
	}
	if cfg.InitGit {
		if err := run.InitGit(ctx, cfg.TargetDir); err != nil {
			printer.Warn("Git initialization failed: %v", err)
		} else {
			printer.Success("Git repository initialized")
		}
	}

	printer.NextSteps(nextStepsCommands(cfg, installed))
	return nil
}

// nextStepsCommands builds the closing guidance: enter the directory,
// install if that has not happened, start the dev server.
func nextStepsCommands(cfg *config.ProjectConfig, installed bool) []string {
	commands := []string{"cd " + cfg.TargetDir}
	if !installed {
		commands = append(commands, cfg.PackageManager.InstallCommand())
	}
	commands = append(commands, cfg.PackageManager.RunCommand("dev"))
	return commands
}

// interactiveSession reports whether prompting is possible and wanted.
func interactiveSession(flags *createFlags) bool {
	if flags.yes {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// newLogger builds the run's slog.Logger backed by charmbracelet/log.
// Debug output is only visible with --verbose.
func newLogger(verbose bool) *slog.Logger {
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})
	if verbose {
		handler.SetLevel(charmlog.DebugLevel)
	} else {
		handler.SetLevel(charmlog.WarnLevel)
	}
	return slog.New(handler)
}
