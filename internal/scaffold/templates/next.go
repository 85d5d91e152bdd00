package templates

import "fmt"

// NextSourceParams is the flag tuple the Next.js source bodies are keyed by.
type NextSourceParams struct {
	Tailwind bool
	Store    bool
}

// NextConfig produces next.config.mjs.
func NextConfig() string {
	return `/** @type {import('next').NextConfig} */
const nextConfig = {
  reactStrictMode: true,
};

export default nextConfig;
`
}

// NextLayout produces src/app/layout.tsx.
func NextLayout(p NextSourceParams, name string) string {
	body := `<body>{children}</body>`
	if p.Tailwind {
		body = `<body className="min-h-screen bg-slate-900 text-slate-100">{children}</body>`
	}
	return fmt.Sprintf(`import type { Metadata } from 'next';
import './globals.css';

export const metadata: Metadata = {
  title: %q,
  description: 'Scaffolded with stackgen',
};

export default function RootLayout({
  children,
}: Readonly<{ children: React.ReactNode }>) {
  return (
    <html lang="en">
      %s
    </html>
  );
}
`, name, body)
}

// NextPage produces src/app/page.tsx. Four distinct bodies over
// tailwind × store; the store variants are client components because
// zustand hooks only run client side.
func NextPage(p NextSourceParams) string {
	switch {
	case p.Tailwind && p.Store:
		return `'use client';

import { useCounterStore } from '@/lib/store';

export default function Home() {
  const { count, increment, reset } = useCounterStore();

  return (
    <main className="flex flex-col items-center gap-4 p-8">
      <h1 className="text-3xl font-bold">Count: {count}</h1>
      <div className="flex gap-2">
        <button className="rounded-lg border border-slate-600 px-5 py-2 hover:border-sky-400" onClick={increment}>
          Increment
        </button>
        <button className="rounded-lg border border-slate-600 px-5 py-2 hover:border-sky-400" onClick={reset}>
          Reset
        </button>
      </div>
    </main>
  );
}
`
	case p.Tailwind && !p.Store:
		return `export default function Home() {
  return (
    <main className="flex flex-col items-center gap-4 p-8">
      <h1 className="text-3xl font-bold">Welcome to Next.js</h1>
      <p className="text-slate-400">
        Edit <code className="rounded bg-slate-800 px-1">src/app/page.tsx</code> to get started.
      </p>
    </main>
  );
}
`
	case !p.Tailwind && p.Store:
		return `'use client';

import { useCounterStore } from '@/lib/store';

export default function Home() {
  const { count, increment, reset } = useCounterStore();

  return (
    <main className="page">
      <h1>Count: {count}</h1>
      <button onClick={increment}>Increment</button>
      <button onClick={reset}>Reset</button>
    </main>
  );
}
`
	default:
		return `export default function Home() {
  return (
    <main className="page">
      <h1>Welcome to Next.js</h1>
      <p>
        Edit <code>src/app/page.tsx</code> to get started.
      </p>
    </main>
  );
}
`
	}
}

// NextStore produces src/lib/store.ts, only emitted with the store flag.
func NextStore() string {
	return `import { create } from 'zustand';

interface CounterState {
  count: number;
  increment: () => void;
  reset: () => void;
}

export const useCounterStore = create<CounterState>((set) => ({
  count: 0,
  increment: () => set((state) => ({ count: state.count + 1 })),
  reset: () => set({ count: 0 }),
}));
`
}

// NextGlobalsCSS produces src/app/globals.css.
func NextGlobalsCSS(tailwind bool) string {
	if tailwind {
		return tailwindDirectives
	}
	return `:root {
  font-family: system-ui, sans-serif;
  color: #e2e8f0;
  background-color: #0f172a;
}

body {
  margin: 0;
  min-height: 100vh;
}

.page {
  display: flex;
  flex-direction: column;
  align-items: center;
  gap: 1rem;
  padding: 2rem;
}

button {
  padding: 0.5rem 1.25rem;
  border: 1px solid #334155;
  border-radius: 0.5rem;
  background-color: #1e293b;
  color: inherit;
  cursor: pointer;
}
`
}
