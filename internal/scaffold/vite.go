package scaffold

import (
	"context"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/scaffold/templates"
)

// viteGenerator emits a React single-page application built with Vite.
type viteGenerator struct {
	base
}

func (g *viteGenerator) opts() *config.ViteOptions { return g.cfg.Vite }

func (g *viteGenerator) generate(ctx context.Context) error {
	g.logger.Info("generating project", "framework", "vite", "dir", g.cfg.TargetDir)

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

// structure creates the directory skeleton. pages/ and store/ only exist
// when their flags are set.
func (g *viteGenerator) structure() error {
	dirs := []string{"src"}
	if g.opts().Router {
		dirs = append(dirs, "src/pages")
	}
	if g.opts().Store {
		dirs = append(dirs, "src/store")
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

// manifest finalizes the dependency set and scripts, then writes
// package.json. Per-flag package additions happen here so the source
// phase can rely on every import being present.
func (g *viteGenerator) manifest(ctx context.Context) error {
	deps := []string{"react", "react-dom"}
	dev := []string{"vite", "@vitejs/plugin-react"}
	if g.opts().Router {
		deps = append(deps, "react-router-dom")
	}
	if g.opts().Store {
		deps = append(deps, "zustand")
	}
	if g.opts().Tailwind {
		dev = append(dev, "tailwindcss", "postcss", "autoprefixer")
	}

	versions := g.resolve(ctx, append(append([]string{}, deps...), dev...))

	pkg := templates.NewPackageJSON(g.cfg.Name, "module")
	pkg.AddScript("dev", "vite")
	pkg.AddScript("build", "vite build")
	pkg.AddScript("preview", "vite preview")
	for _, name := range deps {
		pkg.AddDependency(name, versions[name])
	}
	for _, name := range dev {
		pkg.AddDevDependency(name, versions[name])
	}

	return g.emitJSON("package.json", pkg)
}

func (g *viteGenerator) configuration() error {
	if err := g.emit("vite.config.js", templates.ViteConfig()); err != nil {
		return err
	}
	if err := g.emit(templates.TypecheckConfigName(config.FrameworkVite), templates.TypecheckConfig(config.FrameworkVite)); err != nil {
		return err
	}
	if err := g.emit(".gitignore", templates.Gitignore(templates.GitignoreParams{
		BuildDirs: []string{"dist"},
		Extra:     []string{"*.local"},
	})); err != nil {
		return err
	}
	if err := g.emit(".env.example", templates.EnvFile([]templates.EnvVar{
		{Key: "VITE_API_URL", Value: "http://localhost:3000", Comment: "Base URL for API requests"},
	})); err != nil {
		return err
	}
	if g.opts().Tailwind {
		if err := g.emit("tailwind.config.js", templates.TailwindConfig([]string{"./index.html", "./src/**/*.{js,jsx}"}, true)); err != nil {
			return err
		}
		if err := g.emit("postcss.config.js", templates.PostcssConfig(true)); err != nil {
			return err
		}
	}
	if g.opts().CI {
		if err := g.emit(workflowPath, templates.Workflow(templates.WorkflowParams{
			PackageManager: g.cfg.PackageManager,
		})); err != nil {
			return err
		}
	}
	return nil
}

func (g *viteGenerator) sources() error {
	p := templates.ViteSourceParams{
		Tailwind: g.opts().Tailwind,
		Router:   g.opts().Router,
		Store:    g.opts().Store,
	}

	if err := g.emit("index.html", templates.ViteIndexHTML(g.cfg.Name)); err != nil {
		return err
	}
	if err := g.emit("src/main.jsx", templates.ViteMain(p)); err != nil {
		return err
	}
	if err := g.emit("src/App.jsx", templates.ViteApp(p)); err != nil {
		return err
	}
	if err := g.emit("src/index.css", templates.ViteCSS(p.Tailwind)); err != nil {
		return err
	}
	if p.Router {
		if err := g.emit("src/pages/Home.jsx", templates.ViteHomePage(p)); err != nil {
			return err
		}
		if err := g.emit("src/pages/About.jsx", templates.ViteAboutPage(p)); err != nil {
			return err
		}
	}
	if p.Store {
		if err := g.emit("src/store/counter.js", templates.ViteStore()); err != nil {
			return err
		}
	}
	return nil
}

func (g *viteGenerator) docs() error {
	features := []string{"React 19 with Vite for instant HMR"}
	if g.opts().Tailwind {
		features = append(features, "Tailwind CSS utility-first styling")
	}
	if g.opts().Router {
		features = append(features, "Client-side routing with React Router")
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
		{Name: "preview", Description: "Preview the production build"},
	})

	structure := "```\n" +
		"src/\n" +
		"  main.jsx    # application entry\n" +
		"  App.jsx     # root component\n" +
		"  index.css   # global styles\n"
	if g.opts().Router {
		structure += "  pages/      # routed pages\n"
	}
	if g.opts().Store {
		structure += "  store/      # zustand stores\n"
	}
	structure += "```\n"

	return g.emit("README.md", templates.Readme(templates.ReadmeParams{
		Name:        g.cfg.Name,
		Description: "A React single-page application scaffolded with stackgen.",
		Features:    features,
		Commands:    commands,
		Sections: []templates.ReadmeSection{
			{Title: "Project structure", Body: structure},
		},
	}))
}
