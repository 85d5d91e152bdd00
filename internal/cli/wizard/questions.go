package wizard

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// askFrameworkOptions populates the option record for cfg.Framework.
// Questions run in dependency order so later ones can depend on earlier
// answers: for Express the auth question only appears once a database
// has been chosen.
func askFrameworkOptions(cfg *config.ProjectConfig) error {
	switch cfg.Framework {
	case config.FrameworkVite:
		return askViteOptions(cfg)
	case config.FrameworkAstro:
		return askAstroOptions(cfg)
	case config.FrameworkNext:
		return askNextOptions(cfg)
	case config.FrameworkExpress:
		return askExpressOptions(cfg)
	default:
		panic(fmt.Sprintf("wizard: unknown framework %q", cfg.Framework))
	}
}

func askViteOptions(cfg *config.ProjectConfig) error {
	var picked []string
	if err := runForm(
		huh.NewMultiSelect[string]().
			Title("Features").
			Description("Space toggles, enter confirms.").
			Options(
				huh.NewOption("Tailwind CSS", "tailwind"),
				huh.NewOption("React Router", "router"),
				huh.NewOption("Zustand state store", "store"),
				huh.NewOption("GitHub Actions CI", "ci"),
			).
			Value(&picked),
	); err != nil {
		return err
	}

	opts := &config.ViteOptions{}
	for _, p := range picked {
		switch p {
		case "tailwind":
			opts.Tailwind = true
		case "router":
			opts.Router = true
		case "store":
			opts.Store = true
		case "ci":
			opts.CI = true
		}
	}
	cfg.Vite = opts
	return nil
}

func askAstroOptions(cfg *config.ProjectConfig) error {
	var picked []string
	if err := runForm(
		huh.NewMultiSelect[string]().
			Title("Integrations").
			Description("Space toggles, enter confirms.").
			Options(
				huh.NewOption("Tailwind CSS", "tailwind"),
				huh.NewOption("MDX content pages", "mdx"),
				huh.NewOption("Sitemap generation", "sitemap"),
				huh.NewOption("GitHub Actions CI", "ci"),
			).
			Value(&picked),
	); err != nil {
		return err
	}

	opts := &config.AstroOptions{}
	for _, p := range picked {
		switch p {
		case "tailwind":
			opts.Tailwind = true
		case "mdx":
			opts.MDX = true
		case "sitemap":
			opts.Sitemap = true
		case "ci":
			opts.CI = true
		}
	}
	cfg.Astro = opts
	return nil
}

func askNextOptions(cfg *config.ProjectConfig) error {
	var picked []string
	if err := runForm(
		huh.NewMultiSelect[string]().
			Title("Features").
			Description("Space toggles, enter confirms.").
			Options(
				huh.NewOption("Tailwind CSS", "tailwind"),
				huh.NewOption("Zustand state store", "store"),
				huh.NewOption("GitHub Actions CI", "ci"),
			).
			Value(&picked),
	); err != nil {
		return err
	}

	opts := &config.NextOptions{}
	for _, p := range picked {
		switch p {
		case "tailwind":
			opts.Tailwind = true
		case "store":
			opts.Store = true
		case "ci":
			opts.CI = true
		}
	}
	cfg.Next = opts
	return nil
}

func askExpressOptions(cfg *config.ProjectConfig) error {
	database := string(config.DatabaseNone)
	if err := runForm(
		huh.NewSelect[string]().
			Title("Database").
			Description("Persistence layer for the API.").
			Options(
				huh.NewOption("None", string(config.DatabaseNone)),
				huh.NewOption("PostgreSQL (Prisma)", string(config.DatabasePostgres)),
				huh.NewOption("MongoDB (Mongoose)", string(config.DatabaseMongo)),
			).
			Value(&database),
	); err != nil {
		return err
	}

	opts := &config.ExpressOptions{Database: config.Database(database)}

	// Authentication needs somewhere to store users.
	if opts.Database != config.DatabaseNone {
		if err := runForm(
			huh.NewConfirm().
				Title("Add JWT authentication?").
				Description("Register/login routes with bcrypt password hashing.").
				Value(&opts.Auth),
		); err != nil {
			return err
		}
	}

	var picked []string
	if err := runForm(
		huh.NewMultiSelect[string]().
			Title("Extras").
			Description("Space toggles, enter confirms.").
			Options(
				huh.NewOption("OpenAPI docs (swagger)", "swagger"),
				huh.NewOption("docker-compose for local services", "docker"),
				huh.NewOption("GitHub Actions CI", "ci"),
			).
			Value(&picked),
	); err != nil {
		return err
	}
	for _, p := range picked {
		switch p {
		case "swagger":
			opts.Swagger = true
		case "docker":
			opts.Docker = true
		case "ci":
			opts.CI = true
		}
	}
	cfg.Express = opts
	return nil
}
