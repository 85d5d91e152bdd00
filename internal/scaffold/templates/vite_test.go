package templates

import (
	"strings"
	"testing"
)

// TestViteCounterBodies checks all four (tailwind, store) combinations of
// the counter component: every body must reference exactly the packages
// its flags provisioned.
func TestViteCounterBodies(t *testing.T) {
	t.Parallel()

	for _, tailwind := range []bool{false, true} {
		for _, store := range []bool{false, true} {
			p := ViteSourceParams{Tailwind: tailwind, Store: store}
			got := ViteApp(p)

			if hasStore := strings.Contains(got, "useCounterStore"); hasStore != store {
				t.Errorf("tailwind=%v store=%v: zustand usage = %v, want %v", tailwind, store, hasStore, store)
			}
			if hasState := strings.Contains(got, "useState"); hasState == store {
				t.Errorf("tailwind=%v store=%v: exactly one of useState/useCounterStore must appear", tailwind, store)
			}
			if hasTw := strings.Contains(got, "text-3xl font-bold"); hasTw != tailwind {
				t.Errorf("tailwind=%v store=%v: tailwind classes = %v, want %v", tailwind, store, hasTw, tailwind)
			}
			if strings.Contains(got, "react-router-dom") {
				t.Errorf("tailwind=%v store=%v: router import without routing", tailwind, store)
			}
			if got != ViteApp(p) {
				t.Errorf("tailwind=%v store=%v: body not deterministic", tailwind, store)
			}
		}
	}
}

func TestViteAppRouterShell(t *testing.T) {
	t.Parallel()

	got := ViteApp(ViteSourceParams{Router: true, Store: true})
	if !strings.Contains(got, "react-router-dom") {
		t.Error("router shell missing react-router-dom import")
	}
	if !strings.Contains(got, "./pages/Home.jsx") || !strings.Contains(got, "./pages/About.jsx") {
		t.Error("router shell missing page imports")
	}
	// With routing the counter lives in the Home page, not the shell.
	if strings.Contains(got, "useCounterStore") {
		t.Error("router shell pulls in the store directly")
	}
}

// TestViteStoreImportPaths checks the relative store path differs between
// the root component and the pages directory.
func TestViteStoreImportPaths(t *testing.T) {
	t.Parallel()

	app := ViteApp(ViteSourceParams{Store: true})
	if !strings.Contains(app, "from './store/counter.js'") {
		t.Errorf("App.jsx store import path wrong:\n%s", app)
	}

	home := ViteHomePage(ViteSourceParams{Router: true, Store: true})
	if !strings.Contains(home, "from '../store/counter.js'") {
		t.Errorf("Home.jsx store import path wrong:\n%s", home)
	}
}

func TestViteMain(t *testing.T) {
	t.Parallel()

	with := ViteMain(ViteSourceParams{Router: true})
	if !strings.Contains(with, "BrowserRouter") {
		t.Error("router main missing BrowserRouter")
	}
	without := ViteMain(ViteSourceParams{})
	if strings.Contains(without, "BrowserRouter") {
		t.Error("plain main references BrowserRouter")
	}
}

func TestViteCSS(t *testing.T) {
	t.Parallel()

	if got := ViteCSS(true); !strings.Contains(got, "@tailwind base;") {
		t.Error("tailwind CSS missing directives")
	}
	if got := ViteCSS(false); strings.Contains(got, "@tailwind") {
		t.Error("vanilla CSS contains tailwind directives")
	}
}

func TestViteIndexHTML(t *testing.T) {
	t.Parallel()

	got := ViteIndexHTML("demo")
	if !strings.Contains(got, "<title>demo</title>") {
		t.Error("missing project title")
	}
	if !strings.Contains(got, "/src/main.jsx") {
		t.Error("missing module entry script")
	}
}
