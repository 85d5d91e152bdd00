package registry

// fallbackVersions pins a known-good version for every package the
// generators can emit. It is consulted when the live registry lookup
// fails or the registry is unreachable. Seeded at startup, never mutated.
var fallbackVersions = map[string]string{
	// React family
	"react":     "^19.1.0",
	"react-dom": "^19.1.0",

	// Vite
	"vite":                 "^7.1.2",
	"@vitejs/plugin-react": "^5.0.0",
	"react-router-dom":     "^7.8.0",
	"zustand":              "^5.0.7",

	// Styling
	"tailwindcss":  "^3.4.17",
	"postcss":      "^8.5.3",
	"autoprefixer": "^10.4.20",

	// Astro
	"astro":             "^5.12.0",
	"@astrojs/mdx":      "^4.3.0",
	"@astrojs/sitemap":  "^3.4.1",
	"@astrojs/tailwind": "^6.0.2",

	// Next.js
	"next":               "^15.4.5",
	"typescript":         "^5.9.2",
	"@types/react":       "^19.1.9",
	"@types/react-dom":   "^19.1.7",
	"@types/node":        "^24.2.0",
	"eslint":             "^9.32.0",
	"eslint-config-next": "^15.4.5",

	// Express
	"express":            "^4.21.2",
	"cors":               "^2.8.5",
	"helmet":             "^8.1.0",
	"morgan":             "^1.10.0",
	"dotenv":             "^17.2.1",
	"nodemon":            "^3.1.10",
	"prisma":             "^6.13.0",
	"@prisma/client":     "^6.13.0",
	"mongoose":           "^8.17.0",
	"jsonwebtoken":       "^9.0.2",
	"bcryptjs":           "^3.0.2",
	"swagger-jsdoc":      "^6.2.8",
	"swagger-ui-express": "^5.0.1",
}
