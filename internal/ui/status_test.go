package ui

import (
	"strings"
	"testing"
)

func TestPrinterPlainOutput(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	p := newPrinterWithWriter(NewTheme(true), &buf)

	p.Banner("demo", "React + Vite")
	p.Success("generated %d files", 12)
	p.Warn("install failed")
	p.Step("skipping git")

	got := buf.String()
	for _, want := range []string{
		"Scaffolding demo",
		"(React + Vite)",
		"✓ generated 12 files",
		"! install failed",
		"• skipping git",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("no-color output contains ANSI escapes")
	}
}

func TestPrinterNextSteps(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	p := newPrinterWithWriter(NewTheme(true), &buf)
	p.NextSteps([]string{"cd demo", "npm install", "npm run dev"})

	got := buf.String()
	if !strings.Contains(got, "Next steps") {
		t.Error("missing heading")
	}
	for _, cmd := range []string{"cd demo", "npm install", "npm run dev"} {
		if !strings.Contains(got, "  "+cmd+"\n") {
			t.Errorf("missing command line %q:\n%s", cmd, got)
		}
	}
}

func TestNewThemeNoColor(t *testing.T) {
	t.Parallel()

	theme := NewTheme(true)
	if got := theme.Title.Render("plain"); got != "plain" {
		t.Errorf("no-color Title.Render = %q, want unstyled text", got)
	}
}
