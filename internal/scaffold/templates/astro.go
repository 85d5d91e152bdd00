package templates

import (
	"fmt"
	"strings"
)

// AstroSourceParams is the flag tuple the Astro source bodies are keyed by.
type AstroSourceParams struct {
	Tailwind bool
	MDX      bool
	Sitemap  bool
}

// AstroConfig produces astro.config.mjs. The integration list must match
// exactly the integrations the manifest phase installed for this flag
// combination; sitemap additionally requires the site URL.
func AstroConfig(p AstroSourceParams, site string) string {
	var imports, integrations []string
	if p.MDX {
		imports = append(imports, "import mdx from '@astrojs/mdx';")
		integrations = append(integrations, "mdx()")
	}
	if p.Sitemap {
		imports = append(imports, "import sitemap from '@astrojs/sitemap';")
		integrations = append(integrations, "sitemap()")
	}
	if p.Tailwind {
		imports = append(imports, "import tailwind from '@astrojs/tailwind';")
		integrations = append(integrations, "tailwind()")
	}

	var b strings.Builder
	b.WriteString("import { defineConfig } from 'astro/config';\n")
	for _, imp := range imports {
		b.WriteString(imp + "\n")
	}
	b.WriteString("\nexport default defineConfig({\n")
	if p.Sitemap {
		fmt.Fprintf(&b, "  site: %q,\n", site)
	}
	if len(integrations) > 0 {
		fmt.Fprintf(&b, "  integrations: [%s],\n", strings.Join(integrations, ", "))
	}
	b.WriteString("});\n")
	return b.String()
}

// AstroLayout produces src/layouts/Base.astro.
func AstroLayout(p AstroSourceParams, name string) string {
	if p.Tailwind {
		return fmt.Sprintf(`---
interface Props {
  title?: string;
}

const { title = %q } = Astro.props;
---

<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{title}</title>
  </head>
  <body class="min-h-screen bg-slate-900 text-slate-100">
    <slot />
  </body>
</html>
`, name)
	}
	return fmt.Sprintf(`---
import '../styles/global.css';

interface Props {
  title?: string;
}

const { title = %q } = Astro.props;
---

<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{title}</title>
  </head>
  <body>
    <slot />
  </body>
</html>
`, name)
}

// AstroIndexPage produces src/pages/index.astro. The welcome copy lists
// only the integrations that are actually installed.
func AstroIndexPage(p AstroSourceParams, name string) string {
	var bullets []string
	if p.Tailwind {
		bullets = append(bullets, "<li>Tailwind CSS for styling</li>")
	}
	if p.MDX {
		bullets = append(bullets, "<li>MDX for rich content</li>")
	}
	if p.Sitemap {
		bullets = append(bullets, "<li>Automatic sitemap generation</li>")
	}
	bullets = append(bullets, "<li>Zero JavaScript by default</li>")

	main := `  <main>
    <h1>Welcome to %s</h1>
    <p>Edit <code>src/pages/index.astro</code> to get started.</p>
    <ul>
      %s
    </ul>
  </main>`
	if p.Tailwind {
		main = `  <main class="flex flex-col items-center gap-4 p-8">
    <h1 class="text-3xl font-bold">Welcome to %s</h1>
    <p class="text-slate-400">Edit <code>src/pages/index.astro</code> to get started.</p>
    <ul class="list-disc text-slate-300">
      %s
    </ul>
  </main>`
	}

	return fmt.Sprintf(`---
import Base from '../layouts/Base.astro';
---

<Base>
`+main+`
</Base>
`, name, strings.Join(bullets, "\n      "))
}

// AstroMDXPage produces src/pages/hello.mdx, only emitted with MDX.
func AstroMDXPage() string {
	return "---\n" +
		"layout: ../layouts/Base.astro\n" +
		"title: Hello MDX\n" +
		"---\n\n" +
		"# Hello MDX\n\n" +
		"This page is written in **MDX**. You can mix Markdown with components.\n\n" +
		"- Markdown lists work\n" +
		"- So do inline `code spans`\n"
}

// AstroGlobalCSS produces src/styles/global.css for non-Tailwind projects.
// Tailwind projects get their styles through the integration instead.
func AstroGlobalCSS() string {
	return `:root {
  font-family: system-ui, sans-serif;
  color: #e2e8f0;
  background-color: #0f172a;
}

body {
  margin: 0;
  min-height: 100vh;
}

main {
  display: flex;
  flex-direction: column;
  align-items: center;
  gap: 1rem;
  padding: 2rem;
}

a {
  color: #38bdf8;
}
`
}
