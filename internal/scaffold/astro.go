package scaffold

import (
	"context"
	"fmt"

	"github.com/stackgen-dev/stackgen/internal/config"
	"github.com/stackgen-dev/stackgen/internal/scaffold/templates"
)

// astroGenerator emits a content-focused static site built with Astro.
type astroGenerator struct {
	base
}

func (g *astroGenerator) opts() *config.AstroOptions { return g.cfg.Astro }

// site is the placeholder production URL required by the sitemap
// integration; users replace it before deploying.
func (g *astroGenerator) site() string {
	return fmt.Sprintf("https://%s.example.com", templates.SiteSlug(g.cfg.Name))
}

func (g *astroGenerator) generate(ctx context.Context) error {
	g.logger.Info("generating project", "framework", "astro", "dir", g.cfg.TargetDir)

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

func (g *astroGenerator) structure() error {
	dirs := []string{"src/layouts", "src/pages", "public"}
	if !g.opts().Tailwind {
		dirs = append(dirs, "src/styles")
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

// manifest finalizes dependencies and scripts. Astro convention keeps
// integrations in dependencies rather than devDependencies.
func (g *astroGenerator) manifest(ctx context.Context) error {
	deps := []string{"astro"}
	if g.opts().MDX {
		deps = append(deps, "@astrojs/mdx")
	}
	if g.opts().Sitemap {
		deps = append(deps, "@astrojs/sitemap")
	}
	if g.opts().Tailwind {
		deps = append(deps, "@astrojs/tailwind", "tailwindcss")
	}

	versions := g.resolve(ctx, deps)

	pkg := templates.NewPackageJSON(g.cfg.Name, "")
	pkg.AddScript("dev", "astro dev")
	pkg.AddScript("build", "astro build")
	pkg.AddScript("preview", "astro preview")
	for _, name := range deps {
		pkg.AddDependency(name, versions[name])
	}

	return g.emitJSON("package.json", pkg)
}

func (g *astroGenerator) configuration() error {
	p := g.sourceParams()

	if err := g.emit("astro.config.mjs", templates.AstroConfig(p, g.site())); err != nil {
		return err
	}
	if err := g.emit(templates.TypecheckConfigName(config.FrameworkAstro), templates.TypecheckConfig(config.FrameworkAstro)); err != nil {
		return err
	}
	if err := g.emit(".gitignore", templates.Gitignore(templates.GitignoreParams{
		BuildDirs: []string{"dist", ".astro"},
	})); err != nil {
		return err
	}
	if err := g.emit(".env.example", templates.EnvFile([]templates.EnvVar{
		{Key: "PUBLIC_SITE_URL", Value: g.site(), Comment: "Public site URL, exposed to client code"},
	})); err != nil {
		return err
	}
	if g.opts().Tailwind {
		if err := g.emit("tailwind.config.mjs", templates.TailwindConfig([]string{"./src/**/*.{astro,html,md,mdx,js,ts}"}, true)); err != nil {
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

func (g *astroGenerator) sources() error {
	p := g.sourceParams()

	if err := g.emit("src/layouts/Base.astro", templates.AstroLayout(p, g.cfg.Name)); err != nil {
		return err
	}
	if err := g.emit("src/pages/index.astro", templates.AstroIndexPage(p, g.cfg.Name)); err != nil {
		return err
	}
	if p.MDX {
		if err := g.emit("src/pages/hello.mdx", templates.AstroMDXPage()); err != nil {
			return err
		}
	}
	if !p.Tailwind {
		if err := g.emit("src/styles/global.css", templates.AstroGlobalCSS()); err != nil {
			return err
		}
	}
	return g.emit("public/robots.txt", "User-agent: *\nAllow: /\n")
}

func (g *astroGenerator) docs() error {
	features := []string{"Astro static-site generation with zero JavaScript by default"}
	if g.opts().Tailwind {
		features = append(features, "Tailwind CSS utility-first styling")
	}
	if g.opts().MDX {
		features = append(features, "MDX pages mixing Markdown and components")
	}
	if g.opts().Sitemap {
		features = append(features, "Automatic sitemap generation")
	}
	if g.opts().CI {
		features = append(features, "GitHub Actions CI workflow")
	}

	commands := templates.CommandList(g.cfg.PackageManager, []templates.ScriptEntry{
		{Name: "dev", Description: "Start the development server"},
		{Name: "build", Description: "Build the static site to dist/"},
		{Name: "preview", Description: "Preview the production build"},
	})

	structure := "```\n" +
		"src/\n" +
		"  layouts/    # shared page shells\n" +
		"  pages/      # file-based routes\n"
	if !g.opts().Tailwind {
		structure += "  styles/     # global stylesheets\n"
	}
	structure += "public/       # static assets served as-is\n```\n"

	return g.emit("README.md", templates.Readme(templates.ReadmeParams{
		Name:        g.cfg.Name,
		Description: "A static site scaffolded with stackgen.",
		Features:    features,
		Commands:    commands,
		Sections: []templates.ReadmeSection{
			{Title: "Project structure", Body: structure},
		},
	}))
}

func (g *astroGenerator) sourceParams() templates.AstroSourceParams {
	return templates.AstroSourceParams{
		Tailwind: g.opts().Tailwind,
		MDX:      g.opts().MDX,
		Sitemap:  g.opts().Sitemap,
	}
}
