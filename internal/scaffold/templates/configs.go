package templates

import "github.com/stackgen-dev/stackgen/internal/config"

// TypecheckConfig produces the type-checker configuration emitted at the
// project root: tsconfig.json for the TypeScript frameworks (Astro, Next)
// and jsconfig.json for the JavaScript ones (Vite, Express).
func TypecheckConfig(f config.Framework) string {
	switch f {
	case config.FrameworkVite:
		return `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "ESNext",
    "moduleResolution": "bundler",
    "jsx": "react-jsx",
    "checkJs": true,
    "baseUrl": "."
  },
  "include": ["src"]
}
`
	case config.FrameworkAstro:
		return `{
  "extends": "astro/tsconfigs/strict",
  "include": [".astro/types.d.ts", "**/*"],
  "exclude": ["dist"]
}
`
	case config.FrameworkNext:
		return `{
  "compilerOptions": {
    "target": "ES2022",
    "lib": ["dom", "dom.iterable", "esnext"],
    "allowJs": true,
    "skipLibCheck": true,
    "strict": true,
    "noEmit": true,
    "esModuleInterop": true,
    "module": "esnext",
    "moduleResolution": "bundler",
    "resolveJsonModule": true,
    "isolatedModules": true,
    "jsx": "preserve",
    "incremental": true,
    "plugins": [
      {
        "name": "next"
      }
    ],
    "paths": {
      "@/*": ["./src/*"]
    }
  },
  "include": ["next-env.d.ts", "**/*.ts", "**/*.tsx", ".next/types/**/*.ts"],
  "exclude": ["node_modules"]
}
`
	case config.FrameworkExpress:
		return `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "NodeNext",
    "moduleResolution": "NodeNext",
    "checkJs": true,
    "baseUrl": "."
  },
  "include": ["src"]
}
`
	}
	return unknownEnum("framework", f)
}

// TypecheckConfigName returns the root filename for TypecheckConfig's output.
func TypecheckConfigName(f config.Framework) string {
	switch f {
	case config.FrameworkVite, config.FrameworkExpress:
		return "jsconfig.json"
	case config.FrameworkAstro, config.FrameworkNext:
		return "tsconfig.json"
	}
	return unknownEnum("framework", f)
}

// NextEnvDTS produces next-env.d.ts, the ambient declarations Next.js
// expects alongside tsconfig.json.
func NextEnvDTS() string {
	return `/// <reference types="next" />
/// <reference types="next/image-types/global" />

// NOTE: This file should not be edited
// see https://nextjs.org/docs/app/building-your-application/configuring/typescript for more information.
`
}
