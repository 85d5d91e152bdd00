// Package cli wires the cobra command tree and orchestrates a run:
// configuration collection, the directory-safety check, generation,
// and the optional install and git stages.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackgen-dev/stackgen/internal/ui"
	"github.com/stackgen-dev/stackgen/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "stackgen",
	Short: "Scaffold production-ready web projects from one command",
	Long: `stackgen generates a ready-to-run project skeleton for React + Vite,
Astro, Next.js, or Express, with opt-in features like Tailwind CSS,
state management, databases, authentication, and CI workflows.

Run it with no flags for an interactive wizard, or supply flags for
non-interactive use.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors are printed here once, styled,
// rather than through cobra's default error output.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printer := ui.NewPrinter(ui.NewTheme(ui.DetectNoColor()))
		printer.Error("%v", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("stackgen %s\n", version.GetVersion()))
	rootCmd.AddCommand(newCreateCmd())
}
