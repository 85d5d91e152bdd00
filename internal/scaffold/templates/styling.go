package templates

import (
	"fmt"
	"strings"
)

// TailwindConfig produces tailwind.config.js. contentGlobs must cover
// every directory the framework emits source files into; esm selects
// between "export default" and "module.exports" to match the project's
// module type.
func TailwindConfig(contentGlobs []string, esm bool) string {
	quoted := make([]string, len(contentGlobs))
	for i, g := range contentGlobs {
		quoted[i] = fmt.Sprintf("    %q,", g)
	}

	export := "module.exports ="
	if esm {
		export = "export default"
	}

	return fmt.Sprintf(`/** @type {import('tailwindcss').Config} */
%s {
  content: [
%s
  ],
  theme: {
    extend: {},
  },
  plugins: [],
}
`, export, strings.Join(quoted, "\n"))
}

// PostcssConfig produces postcss.config.js wiring Tailwind and Autoprefixer.
func PostcssConfig(esm bool) string {
	export := "module.exports ="
	if esm {
		export = "export default"
	}
	return export + ` {
  plugins: {
    tailwindcss: {},
    autoprefixer: {},
  },
}
`
}

// tailwindDirectives is the stylesheet preamble for Tailwind projects.
const tailwindDirectives = `@tailwind base;
@tailwind components;
@tailwind utilities;
`
