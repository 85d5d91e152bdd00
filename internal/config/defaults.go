package config

import "path/filepath"

// Default values applied by Normalize.
const (
	DefaultPackageManager = NPM
	DefaultDatabase       = DatabaseNone
)

// Normalize fills in defaults and enforces option-record exclusivity:
//   - TargetDir defaults to ./<Name>
//   - PackageManager defaults to npm
//   - a missing option record for the active framework is replaced with
//     its documented defaults (all flags off, database "none"), so a
//     non-interactive run still produces a reasonable project
//   - records belonging to other frameworks are dropped
//   - Express.Auth is force-cleared when no database is selected
func (c *ProjectConfig) Normalize() {
	if c.TargetDir == "" {
		c.TargetDir = filepath.Join(".", c.Name)
	}
	if c.PackageManager == "" {
		c.PackageManager = DefaultPackageManager
	}

	switch c.Framework {
	case FrameworkVite:
		if c.Vite == nil {
			c.Vite = &ViteOptions{}
		}
		c.Astro, c.Next, c.Express = nil, nil, nil
	case FrameworkAstro:
		if c.Astro == nil {
			c.Astro = &AstroOptions{}
		}
		c.Vite, c.Next, c.Express = nil, nil, nil
	case FrameworkNext:
		if c.Next == nil {
			c.Next = &NextOptions{}
		}
		c.Vite, c.Astro, c.Express = nil, nil, nil
	case FrameworkExpress:
		if c.Express == nil {
			c.Express = &ExpressOptions{Database: DefaultDatabase}
		}
		if c.Express.Database == "" {
			c.Express.Database = DefaultDatabase
		}
		if c.Express.Database == DatabaseNone {
			c.Express.Auth = false
		}
		c.Vite, c.Astro, c.Next = nil, nil, nil
	}
}
