package templates

import (
	"strings"
	"testing"

	"github.com/stackgen-dev/stackgen/internal/config"
)

func TestSiteSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"my-app", "my-app"},
		{"@scope/my-app", "my-app"},
		{"@a/b", "b"},
	}
	for _, tt := range tests {
		if got := SiteSlug(tt.in); got != tt.want {
			t.Errorf("SiteSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGitignoreSections(t *testing.T) {
	t.Parallel()

	got := Gitignore(GitignoreParams{BuildDirs: []string{"dist"}})

	sections := []string{"# Dependencies", "# Build output", "# Environment", "# Editor and OS files"}
	last := -1
	for _, s := range sections {
		i := strings.Index(got, s)
		if i < 0 {
			t.Fatalf("missing section %q in:\n%s", s, got)
		}
		if i < last {
			t.Errorf("section %q out of order", s)
		}
		last = i
	}

	if !strings.Contains(got, "node_modules/") {
		t.Error("missing node_modules entry")
	}
	if !strings.Contains(got, "dist/\n") {
		t.Error("missing build dir entry")
	}
	if !strings.Contains(got, ".env\n") {
		t.Error("missing .env entry")
	}
	if strings.Contains(got, "# Framework specific") {
		t.Error("framework section emitted without extras")
	}
}

func TestGitignoreExtras(t *testing.T) {
	t.Parallel()

	got := Gitignore(GitignoreParams{BuildDirs: []string{".next", "out"}, Extra: []string{"*.tsbuildinfo"}})
	if !strings.Contains(got, "# Framework specific\n*.tsbuildinfo\n") {
		t.Errorf("extras not emitted under their section:\n%s", got)
	}
}

func TestGitignoreDeterministic(t *testing.T) {
	t.Parallel()

	p := GitignoreParams{BuildDirs: []string{"dist"}, Extra: []string{"x"}}
	if Gitignore(p) != Gitignore(p) {
		t.Error("Gitignore output differs across identical calls")
	}
}

func TestCommandList(t *testing.T) {
	t.Parallel()

	entries := []ScriptEntry{
		{Name: "dev", Description: "Start the development server"},
		{Name: "build", Description: "Build for production"},
	}

	tests := []struct {
		pm   config.PackageManager
		want []string
	}{
		{config.NPM, []string{"npm install", "npm run dev", "npm run build"}},
		{config.Yarn, []string{"yarn install", "yarn dev", "yarn build"}},
		{config.PNPM, []string{"pnpm install", "pnpm dev", "pnpm build"}},
	}
	for _, tt := range tests {
		got := CommandList(tt.pm, entries)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: %d commands, want %d", tt.pm, len(got), len(tt.want))
		}
		for i, want := range tt.want {
			if got[i].Invocation != want {
				t.Errorf("%s: command[%d] = %q, want %q", tt.pm, i, got[i].Invocation, want)
			}
		}
		// Descriptions are fixed per script regardless of package manager.
		if got[1].Description != "Start the development server" {
			t.Errorf("%s: dev description = %q", tt.pm, got[1].Description)
		}
	}
}

func TestReadme(t *testing.T) {
	t.Parallel()

	got := Readme(ReadmeParams{
		Name:        "demo",
		Description: "A demo project.",
		Features:    []string{"Feature one", "Feature two"},
		Commands: []Command{
			{Invocation: "npm install", Description: "Install dependencies"},
			{Invocation: "npm run dev", Description: "Start the development server"},
		},
		Sections: []ReadmeSection{{Title: "Extra", Body: "Body text.\n"}},
	})

	for _, want := range []string{
		"# demo\n",
		"A demo project.",
		"## Features",
		"- Feature one",
		"## Commands",
		"```sh",
		"npm install",
		"## Extra",
		"Body text.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("README missing %q:\n%s", want, got)
		}
	}
}

func TestNewPackageJSON(t *testing.T) {
	t.Parallel()

	pkg := NewPackageJSON("demo", "module")
	if pkg.Name != "demo" || pkg.Version != ManifestVersion || !pkg.Private {
		t.Errorf("unexpected skeleton: %+v", pkg)
	}
	if pkg.Type != "module" {
		t.Errorf("Type = %q, want module", pkg.Type)
	}

	pkg.AddScript("dev", "vite")
	pkg.AddDependency("react", "^19.1.0")
	pkg.AddDevDependency("vite", "^7.1.2")

	if !pkg.Has("react") || !pkg.Has("vite") {
		t.Error("Has() misses registered dependencies")
	}
	if pkg.Has("svelte") {
		t.Error("Has() reports an unregistered dependency")
	}
	if names := pkg.DependencyNames(); len(names) != 2 {
		t.Errorf("DependencyNames() = %v, want 2 entries", names)
	}
}

func TestEnvFile(t *testing.T) {
	t.Parallel()

	got := EnvFile([]EnvVar{
		{Key: "PORT", Value: "3000", Comment: "Server"},
		{Key: "NODE_ENV", Value: "development"},
	})
	if !strings.Contains(got, "# Server\nPORT=3000\n") {
		t.Errorf("commented variable not rendered:\n%s", got)
	}
	if !strings.Contains(got, "NODE_ENV=development\n") {
		t.Errorf("plain variable not rendered:\n%s", got)
	}
}

func TestTypecheckConfigName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		framework config.Framework
		want      string
	}{
		{config.FrameworkVite, "jsconfig.json"},
		{config.FrameworkAstro, "tsconfig.json"},
		{config.FrameworkNext, "tsconfig.json"},
		{config.FrameworkExpress, "jsconfig.json"},
	}
	for _, tt := range tests {
		if got := TypecheckConfigName(tt.framework); got != tt.want {
			t.Errorf("TypecheckConfigName(%s) = %q, want %q", tt.framework, got, tt.want)
		}
	}
}
