package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer writes iconized status lines to a writer.
type Printer struct {
	theme  *Theme
	writer io.Writer
}

// NewPrinter creates a Printer targeting os.Stdout.
func NewPrinter(theme *Theme) *Printer {
	return &Printer{theme: theme, writer: os.Stdout}
}

// newPrinterWithWriter creates a Printer with a custom writer (for testing).
func newPrinterWithWriter(theme *Theme, w io.Writer) *Printer {
	return &Printer{theme: theme, writer: w}
}

// Banner prints the scaffolding header for a project.
func (p *Printer) Banner(name, framework string) {
	fmt.Fprintf(p.writer, "\n%s %s\n\n",
		p.theme.Title.Render("Scaffolding "+name),
		p.theme.Muted.Render("("+framework+")"))
}

// Success prints a checkmark status line.
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.writer, "%s %s\n", p.theme.Success.Render("✓"), fmt.Sprintf(format, args...))
}

// Warn prints a warning status line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.writer, "%s %s\n", p.theme.Warning.Render("!"), fmt.Sprintf(format, args...))
}

// Error prints an error status line.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.writer, "%s %s\n", p.theme.Error.Render("✗"), fmt.Sprintf(format, args...))
}

// Step prints a muted progress line.
func (p *Printer) Step(format string, args ...any) {
	fmt.Fprintf(p.writer, "%s %s\n", p.theme.Muted.Render("•"), fmt.Sprintf(format, args...))
}

// NextSteps prints the closing guidance block: one shell command per line.
func (p *Printer) NextSteps(commands []string) {
	fmt.Fprintf(p.writer, "\n%s\n\n", p.theme.Title.Render("Next steps"))
	for _, cmd := range commands {
		fmt.Fprintf(p.writer, "  %s\n", p.theme.Accent.Render(cmd))
	}
	fmt.Fprintln(p.writer)
}
