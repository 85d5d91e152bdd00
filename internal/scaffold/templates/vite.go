package templates

import "fmt"

// ViteSourceParams is the flag tuple the Vite source bodies are keyed by.
type ViteSourceParams struct {
	Tailwind bool
	Router   bool
	Store    bool
}

// ViteIndexHTML produces the Vite HTML entry document.
func ViteIndexHTML(name string) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/main.jsx"></script>
  </body>
</html>
`, name)
}

// ViteConfig produces vite.config.js with the React plugin.
func ViteConfig() string {
	return `import { defineConfig } from 'vite'
import react from '@vitejs/plugin-react'

export default defineConfig({
  plugins: [react()],
})
`
}

// ViteMain produces src/main.jsx. The router variant wraps the app in a
// BrowserRouter; the import only appears when the routing flag added
// react-router-dom to the manifest.
func ViteMain(p ViteSourceParams) string {
	if p.Router {
		return `import { StrictMode } from 'react'
import { createRoot } from 'react-dom/client'
import { BrowserRouter } from 'react-router-dom'
import App from './App.jsx'
import './index.css'

createRoot(document.getElementById('root')).render(
  <StrictMode>
    <BrowserRouter>
      <App />
    </BrowserRouter>
  </StrictMode>,
)
`
	}
	return `import { StrictMode } from 'react'
import { createRoot } from 'react-dom/client'
import App from './App.jsx'
import './index.css'

createRoot(document.getElementById('root')).render(
  <StrictMode>
    <App />
  </StrictMode>,
)
`
}

// ViteApp produces src/App.jsx. Without routing it is the counter demo
// (four bodies over tailwind × store); with routing it is the route shell
// and the counter demo moves to the Home page.
func ViteApp(p ViteSourceParams) string {
	if !p.Router {
		return viteCounter(p.Tailwind, p.Store, "App", "./store/counter.js")
	}
	if p.Tailwind {
		return `import { Routes, Route, Link } from 'react-router-dom'
import Home from './pages/Home.jsx'
import About from './pages/About.jsx'

function App() {
  return (
    <div className="min-h-screen bg-slate-900 text-slate-100">
      <nav className="flex gap-4 p-4 border-b border-slate-700">
        <Link className="hover:text-sky-400" to="/">Home</Link>
        <Link className="hover:text-sky-400" to="/about">About</Link>
      </nav>
      <Routes>
        <Route path="/" element={<Home />} />
        <Route path="/about" element={<About />} />
      </Routes>
    </div>
  )
}

export default App
`
	}
	return `import { Routes, Route, Link } from 'react-router-dom'
import Home from './pages/Home.jsx'
import About from './pages/About.jsx'

function App() {
  return (
    <div className="app">
      <nav className="nav">
        <Link to="/">Home</Link>
        <Link to="/about">About</Link>
      </nav>
      <Routes>
        <Route path="/" element={<Home />} />
        <Route path="/about" element={<About />} />
      </Routes>
    </div>
  )
}

export default App
`
}

// ViteHomePage produces src/pages/Home.jsx, only emitted with routing.
func ViteHomePage(p ViteSourceParams) string {
	return viteCounter(p.Tailwind, p.Store, "Home", "../store/counter.js")
}

// ViteAboutPage produces src/pages/About.jsx, only emitted with routing.
func ViteAboutPage(p ViteSourceParams) string {
	if p.Tailwind {
		return `function About() {
  return (
    <main className="flex flex-col items-center gap-2 p-8">
      <h1 className="text-3xl font-bold">About</h1>
      <p className="text-slate-400">This page is served by React Router.</p>
    </main>
  )
}

export default About
`
	}
	return `function About() {
  return (
    <main className="page">
      <h1>About</h1>
      <p>This page is served by React Router.</p>
    </main>
  )
}

export default About
`
}

// ViteStore produces src/store/counter.js, only emitted with the store flag.
func ViteStore() string {
	return `import { create } from 'zustand'

export const useCounterStore = create((set) => ({
  count: 0,
  increment: () => set((state) => ({ count: state.count + 1 })),
  reset: () => set({ count: 0 }),
}))
`
}

// ViteCSS produces src/index.css: the Tailwind directives, or a small
// vanilla stylesheet covering the class names the plain bodies use.
func ViteCSS(tailwind bool) string {
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

.app,
.page {
  display: flex;
  flex-direction: column;
  align-items: center;
  gap: 0.5rem;
  padding: 2rem;
}

.nav {
  display: flex;
  gap: 1rem;
  padding: 1rem;
  border-bottom: 1px solid #334155;
}

.nav a {
  color: #38bdf8;
  text-decoration: none;
}

button {
  padding: 0.5rem 1.25rem;
  border: 1px solid #334155;
  border-radius: 0.5rem;
  background-color: #1e293b;
  color: inherit;
  cursor: pointer;
}

button:hover {
  border-color: #38bdf8;
}
`
}

// viteCounter returns the counter demo component. The body is keyed by
// the (tailwind, store) tuple; each of the four combinations is a
// distinct, fixed text. storeImport is the relative path to the zustand
// store from the emitting file's directory.
func viteCounter(tailwind, store bool, name, storeImport string) string {
	switch {
	case tailwind && store:
		return fmt.Sprintf(`import { useCounterStore } from '%s'

function %s() {
  const { count, increment, reset } = useCounterStore()

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
  )
}

export default %s
`, storeImport, name, name)
	case tailwind && !store:
		return fmt.Sprintf(`import { useState } from 'react'

function %s() {
  const [count, setCount] = useState(0)

  return (
    <main className="flex min-h-screen flex-col items-center gap-4 bg-slate-900 p-8 text-slate-100">
      <h1 className="text-3xl font-bold">Count: {count}</h1>
      <button className="rounded-lg border border-slate-600 px-5 py-2 hover:border-sky-400" onClick={() => setCount(count + 1)}>
        Increment
      </button>
    </main>
  )
}

export default %s
`, name, name)
	case !tailwind && store:
		return fmt.Sprintf(`import { useCounterStore } from '%s'

function %s() {
  const { count, increment, reset } = useCounterStore()

  return (
    <main className="page">
      <h1>Count: {count}</h1>
      <button onClick={increment}>Increment</button>
      <button onClick={reset}>Reset</button>
    </main>
  )
}

export default %s
`, storeImport, name, name)
	default:
		return fmt.Sprintf(`import { useState } from 'react'

function %s() {
  const [count, setCount] = useState(0)

  return (
    <main className="page">
      <h1>Count: {count}</h1>
      <button onClick={() => setCount(count + 1)}>Increment</button>
    </main>
  )
}

export default %s
`, name, name)
	}
}
