package config

import (
	"fmt"
	"regexp"
	"strings"
)

// namePattern is the npm package name grammar: lowercase letters, digits,
// hyphens, dots, underscores and tildes, with an optional @scope/ prefix.
// The leading character of each segment must not be a dot or underscore.
var namePattern = regexp.MustCompile(`^(@[a-z0-9][a-z0-9-._~]*/)?[a-z0-9~-][a-z0-9-._~]*$`)

// maxNameLength is the npm registry limit for package names.
const maxNameLength = 214

// ValidateName checks that name satisfies the npm package name grammar.
// It is called once, before any filesystem mutation.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidName, name, maxNameLength)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("%w: %q has leading or trailing whitespace", ErrInvalidName, name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must contain only lowercase letters, digits, '-', '.', '_', '~' and an optional @scope/ prefix", ErrInvalidName, name)
	}
	return nil
}

// Validate checks the configuration for internal consistency. It assumes
// Normalize has been applied; a nil option record for the active framework
// is therefore a contract violation, not a user error.
func (c *ProjectConfig) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if !c.Framework.IsValid() {
		return fmt.Errorf("%w: %q (expected one of: %s)", ErrUnknownFramework, c.Framework, joinFrameworks())
	}
	if !c.PackageManager.IsValid() {
		return fmt.Errorf("%w: %q (expected one of: npm, yarn, pnpm)", ErrUnknownPackageManager, c.PackageManager)
	}
	if err := c.validateOptions(); err != nil {
		return err
	}
	return nil
}

// validateOptions checks that exactly the active framework's record is set
// and that flag combinations with transitive dependents are consistent.
func (c *ProjectConfig) validateOptions() error {
	populated := 0
	if c.Vite != nil {
		populated++
	}
	if c.Astro != nil {
		populated++
	}
	if c.Next != nil {
		populated++
	}
	if c.Express != nil {
		populated++
	}
	if populated != 1 {
		return fmt.Errorf("%w: %d option records populated, want exactly 1", ErrOptionMismatch, populated)
	}

	switch c.Framework {
	case FrameworkVite:
		if c.Vite == nil {
			return fmt.Errorf("%w: framework %q has no matching record", ErrOptionMismatch, c.Framework)
		}
	case FrameworkAstro:
		if c.Astro == nil {
			return fmt.Errorf("%w: framework %q has no matching record", ErrOptionMismatch, c.Framework)
		}
	case FrameworkNext:
		if c.Next == nil {
			return fmt.Errorf("%w: framework %q has no matching record", ErrOptionMismatch, c.Framework)
		}
	case FrameworkExpress:
		if c.Express == nil {
			return fmt.Errorf("%w: framework %q has no matching record", ErrOptionMismatch, c.Framework)
		}
		if !c.Express.Database.IsValid() {
			return fmt.Errorf("%w: %q (expected one of: none, postgres, mongodb)", ErrUnknownDatabase, c.Express.Database)
		}
		if c.Express.Auth && c.Express.Database == DatabaseNone {
			// Normalize clears this combination; reaching here means the
			// caller bypassed Normalize.
			return fmt.Errorf("%w: authentication requires a database", ErrOptionMismatch)
		}
	}
	return nil
}

func joinFrameworks() string {
	fws := Frameworks()
	parts := make([]string, len(fws))
	for i, f := range fws {
		parts[i] = string(f)
	}
	return strings.Join(parts, ", ")
}
