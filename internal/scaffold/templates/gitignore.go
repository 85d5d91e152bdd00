package templates

import "strings"

// GitignoreParams configures the ignore-file generator.
type GitignoreParams struct {
	// BuildDirs are framework build output paths (e.g. "dist", ".next").
	BuildDirs []string
	// Extra are framework-specific entries appended to their own section.
	Extra []string
}

// Gitignore produces the project .gitignore. The four base sections keep
// a fixed order across frameworks so generated projects diff cleanly:
// dependencies, build output, environment, editor/OS noise.
func Gitignore(p GitignoreParams) string {
	var b strings.Builder

	b.WriteString("# Dependencies\n")
	b.WriteString("node_modules/\n")
	b.WriteString(".pnp\n")
	b.WriteString(".pnp.js\n")

	b.WriteString("\n# Build output\n")
	for _, dir := range p.BuildDirs {
		b.WriteString(strings.TrimSuffix(dir, "/") + "/\n")
	}

	b.WriteString("\n# Environment\n")
	b.WriteString(".env\n")
	b.WriteString(".env.local\n")
	b.WriteString(".env.*.local\n")

	b.WriteString("\n# Editor and OS files\n")
	b.WriteString(".DS_Store\n")
	b.WriteString(".idea/\n")
	b.WriteString(".vscode/\n")
	b.WriteString("*.swp\n")
	b.WriteString("*.log\n")

	if len(p.Extra) > 0 {
		b.WriteString("\n# Framework specific\n")
		for _, entry := range p.Extra {
			b.WriteString(entry + "\n")
		}
	}

	return b.String()
}
