package config

// Framework identifies one of the supported project archetypes.
type Framework string

const (
	// FrameworkVite is a React single-page application built with Vite.
	FrameworkVite Framework = "vite"
	// FrameworkAstro is a content-focused static site built with Astro.
	FrameworkAstro Framework = "astro"
	// FrameworkNext is a full-stack React application built with Next.js.
	FrameworkNext Framework = "next"
	// FrameworkExpress is an HTTP API server built with Express.
	FrameworkExpress Framework = "express"
)

// Frameworks returns all supported frameworks in display order.
func Frameworks() []Framework {
	return []Framework{FrameworkVite, FrameworkAstro, FrameworkNext, FrameworkExpress}
}

// IsValid reports whether f is a supported framework.
func (f Framework) IsValid() bool {
	switch f {
	case FrameworkVite, FrameworkAstro, FrameworkNext, FrameworkExpress:
		return true
	}
	return false
}

// DisplayName returns the human-readable framework name.
func (f Framework) DisplayName() string {
	switch f {
	case FrameworkVite:
		return "React + Vite"
	case FrameworkAstro:
		return "Astro"
	case FrameworkNext:
		return "Next.js"
	case FrameworkExpress:
		return "Express"
	}
	return string(f)
}

// PackageManager identifies the package manager used for installs and
// for the command text emitted into the README and final hints.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// PackageManagers returns all supported package managers.
func PackageManagers() []PackageManager {
	return []PackageManager{NPM, Yarn, PNPM}
}

// IsValid reports whether pm is a supported package manager.
func (pm PackageManager) IsValid() bool {
	switch pm {
	case NPM, Yarn, PNPM:
		return true
	}
	return false
}

// InstallCommand returns the install invocation for pm, e.g. "npm install".
func (pm PackageManager) InstallCommand() string {
	return string(pm) + " install"
}

// RunCommand returns the invocation for a package.json script, e.g.
// "npm run dev", "yarn dev", "pnpm dev".
func (pm PackageManager) RunCommand(script string) string {
	if pm == NPM {
		return "npm run " + script
	}
	return string(pm) + " " + script
}

// Database identifies the persistence layer for the Express framework.
type Database string

const (
	DatabaseNone     Database = "none"
	DatabasePostgres Database = "postgres"
	DatabaseMongo    Database = "mongodb"
)

// Databases returns all supported database choices.
func Databases() []Database {
	return []Database{DatabaseNone, DatabasePostgres, DatabaseMongo}
}

// IsValid reports whether d is a supported database choice.
func (d Database) IsValid() bool {
	switch d {
	case DatabaseNone, DatabasePostgres, DatabaseMongo:
		return true
	}
	return false
}

// ViteOptions holds the feature toggles for the Vite framework.
type ViteOptions struct {
	Tailwind bool // Tailwind CSS styling
	Router   bool // React Router with a pages/ directory
	Store    bool // Zustand state management with a store/ directory
	CI       bool // GitHub Actions workflow
}

// AstroOptions holds the feature toggles for the Astro framework.
type AstroOptions struct {
	Tailwind bool // Tailwind CSS integration
	MDX      bool // MDX content integration
	Sitemap  bool // Sitemap integration
	CI       bool // GitHub Actions workflow
}

// NextOptions holds the feature toggles for the Next.js framework.
// Routing is built into Next.js, so there is no router toggle.
type NextOptions struct {
	Tailwind bool // Tailwind CSS styling
	Store    bool // Zustand state management
	CI       bool // GitHub Actions workflow
}

// ExpressOptions holds the feature toggles for the Express framework.
// Auth is only meaningful when Database is not DatabaseNone: the
// credentials need a persistence layer, so Normalize clears Auth for
// database-less projects and the wizard never offers the question.
type ExpressOptions struct {
	Database Database // Persistence layer: none, postgres (Prisma), mongodb (Mongoose)
	Auth     bool     // JWT authentication (register/login + middleware)
	Swagger  bool     // OpenAPI documentation via swagger-ui-express
	Docker   bool     // docker-compose.yml for the selected database
	CI       bool     // GitHub Actions workflow
}

// ProjectConfig is the root configuration threaded through generation.
// Exactly one of the four option-record pointers is populated, selected
// by Framework; generators only ever read their own record.
type ProjectConfig struct {
	Name           string
	Framework      Framework
	TargetDir      string // Defaults to ./<Name> when empty.
	PackageManager PackageManager
	InitGit        bool
	InstallDeps    bool

	Vite    *ViteOptions
	Astro   *AstroOptions
	Next    *NextOptions
	Express *ExpressOptions
}
