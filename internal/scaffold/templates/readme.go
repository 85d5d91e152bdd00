package templates

import (
	"fmt"
	"strings"

	"github.com/stackgen-dev/stackgen/internal/config"
)

// Command is one line of the README commands block.
type Command struct {
	Invocation  string
	Description string
}

// ReadmeSection is an optional named README section, emitted in order.
type ReadmeSection struct {
	Title string
	Body  string
}

// ReadmeParams configures the README generator.
type ReadmeParams struct {
	Name        string
	Description string
	Features    []string
	Commands    []Command
	Sections    []ReadmeSection
}

// ScriptEntry pairs a package.json script name with its description.
// Descriptions are fixed per framework; only the invocation changes with
// the package manager.
type ScriptEntry struct {
	Name        string
	Description string
}

// CommandList builds the README commands from the framework's script
// table. The install command comes first, then one entry per script.
func CommandList(pm config.PackageManager, entries []ScriptEntry) []Command {
	commands := make([]Command, 0, len(entries)+1)
	commands = append(commands, Command{
		Invocation:  pm.InstallCommand(),
		Description: "Install dependencies",
	})
	for _, e := range entries {
		commands = append(commands, Command{
			Invocation:  pm.RunCommand(e.Name),
			Description: e.Description,
		})
	}
	return commands
}

// Readme assembles the project README: title, description, the mandatory
// features list and commands block, then the optional named sections.
func Readme(p ReadmeParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.Description != "" {
		b.WriteString(p.Description + "\n\n")
	}

	b.WriteString("## Features\n\n")
	for _, f := range p.Features {
		b.WriteString("- " + f + "\n")
	}
	b.WriteString("\n")

	b.WriteString("## Commands\n\n")
	b.WriteString("```sh\n")
	width := 0
	for _, c := range p.Commands {
		if len(c.Invocation) > width {
			width = len(c.Invocation)
		}
	}
	for _, c := range p.Commands {
		fmt.Fprintf(&b, "%-*s  # %s\n", width, c.Invocation, c.Description)
	}
	b.WriteString("```\n")

	for _, s := range p.Sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.Title)
		b.WriteString(strings.TrimRight(s.Body, "\n") + "\n")
	}

	return b.String()
}
