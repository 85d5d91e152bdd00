package scaffold

import (
	"context"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/scaffold/templates"
)

// nextGenerator emits a full-stack React application built with Next.js.
type nextGenerator struct {
	base
}

func (g *nextGenerator) opts() *config.NextOptions { return g.cfg.Next }

func (g *nextGenerator) generate(ctx context.Context) error {
	g.logger.Info("generating project", "framework", "next", "dir", g.cfg.TargetDir)

	if err := g.structure(); err != nil {
		return err
	}
	if err := g.manifest(ctx); err != nil {
		return err
	}
	if err := g.configuration(); err != nil {
		return err
	}
	if err := g.sources(); err != nil {
		return err
	}
	return g.docs()
}

func (g *nextGenerator) structure() error {
	dirs := []string{"src/app", "public"}
	if g.opts().Store {
		dirs = append(dirs, "src/lib")
	}
	if g.opts().CI {
		dirs = append(dirs, ".github/workflows")
	}
	for _, d := range dirs {
		if err := g.dir(d); err != nil {
			return err
		}
	}
	return nil
}

func (g *nextGenerator) manifest(ctx context.Context) error {
	deps := []string{"next", "react", "react-dom"}
	dev := []string{"typescript", "@types/node", "@types/react", "@types/react-dom", "eslint", "eslint-config-next"}
	if g.opts().Store {
		deps = append(deps, "zustand")
	}
	if g.opts().Tailwind {
		dev = append(dev, "tailwindcss", "postcss", "autoprefixer")
	}

	versions := g.resolve(ctx, append(append([]string{}, deps...), dev...))

	pkg := templates.NewPackageJSON(g.cfg.Name, "")
	pkg.AddScript("dev", "next dev")
	pkg.AddScript("build", "next build")
	pkg.AddScript("start", "next start")
	pkg.AddScript("lint", "next lint")
	for _, name := range deps {
		pkg.AddDependency(name, versions[name])
	}
	for _, name := range dev {
		pkg.AddDevDependency(name, versions[name])
	}

	return g.emitJSON("package.json", pkg)
}

func (g *nextGenerator) configuration() error {
	if err := g.emit("next.config.mjs", templates.NextConfig()); err != nil {
		return err
	}
	if err := g.emit(templates.TypecheckConfigName(config.FrameworkNext), templates.TypecheckConfig(config.FrameworkNext)); err != nil {
		return err
	}
	if err := g.emit("next-env.d.ts", templates.NextEnvDTS()); err != nil {
		return err
	}
	if err := g.emit(".gitignore", templates.Gitignore(templates.GitignoreParams{
		BuildDirs: []string{".next", "out"},
		Extra:     []string{"*.tsbuildinfo"},
	})); err != nil {
		return err
	}
	if err := g.emit(".env.example", templates.EnvFile([]templates.EnvVar{
		{Key: "NEXT_PUBLIC_API_URL", Value: "http://localhost:3000/api", Comment: "Base URL for API requests, exposed to client code"},
	})); err != nil {
		return err
	}
	if g.opts().Tailwind {
		if err := g.emit("tailwind.config.js", templates.TailwindConfig([]string{"./src/**/*.{ts,tsx}"}, false)); err != nil {
			return err
		}
		if err := g.emit("postcss.config.js", templates.PostcssConfig(false)); err != nil {
			return err
		}
	}
	if g.opts().CI {
		if err := g.emit(workflowPath, templates.Workflow(templates.WorkflowParams{
			PackageManager: g.cfg.PackageManager,
			Lint:           true,
		})); err != nil {
			return err
		}
	}
	return nil
}

func (g *nextGenerator) sources() error {
	p := templates.NextSourceParams{
		Tailwind: g.opts().Tailwind,
		Store:    g.opts().Store,
	}

	if err := g.emit("src/app/layout.tsx", templates.NextLayout(p, g.cfg.Name)); err != nil {
		return err
	}
	if err := g.emit("src/app/page.tsx", templates.NextPage(p)); err != nil {
		return err
	}
	if err := g.emit("src/app/globals.css", templates.NextGlobalsCSS(p.Tailwind)); err != nil {
		return err
	}
	if p.Store {
		if err := g.emit("src/lib/store.ts", templates.NextStore()); err != nil {
			return err
		}
	}
	return nil
}

func (g *nextGenerator) docs() error {
	features := []string{"Next.js App Router with React Server Components", "TypeScript throughout"}
	if g.opts().Tailwind {
		features = append(features, "Tailwind CSS utility-first styling")
	}
	if g.opts().Store {
		features = append(features, "Lightweight state management with Zustand")
	}
	if g.opts().CI {
		features = append(features, "GitHub Actions CI workflow")
	}

	commands := templates.CommandList(g.cfg.PackageManager, []templates.ScriptEntry{
		{Name: "dev", Description: "Start the development server"},
		{Name: "build", Description: "Build for production"},
		{Name: "start", Description: "Serve the production build"},
		{Name: "lint", Description: "Lint the sources"},
	})

	structure := "```\n" +
		"src/app/\n" +
		"  layout.tsx   # root layout\n" +
		"  page.tsx     # index route\n" +
		"  globals.css  # global styles\n"
	if g.opts().Store {
		structure += "src/lib/       # zustand stores and shared code\n"
	}
	structure += "public/        # static assets served as-is\n```\n"

	return g.emit("README.md", templates.Readme(templates.ReadmeParams{
		Name:        g.cfg.Name,
		Description: "A full-stack Next.js application scaffolded with stackgen.",
		Features:    features,
		Commands:    commands,
		Sections: []templates.ReadmeSection{
			{Title: "Project structure", Body: structure},
		},
	}))
}
