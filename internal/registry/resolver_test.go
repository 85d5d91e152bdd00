package registry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// newRegistryServer serves /<pkg>/latest from the given version map and
// 404s everything else.
func newRegistryServer(t *testing.T, versions map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/"), "/latest")
		if v, ok := versions[name]; ok {
			_ = json.NewEncoder(w).Encode(map[string]string{"version": v})
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveFromRegistry(t *testing.T) {
	t.Parallel()

	srv := newRegistryServer(t, map[string]string{"react": "19.1.0"})
	r := NewResolver(srv.URL, srv.Client(), nil)

	if got := r.Resolve(context.Background(), "react"); got != "^19.1.0" {
		t.Errorf("Resolve(react) = %q, want ^19.1.0", got)
	}
}

func TestResolveScopedPackage(t *testing.T) {
	t.Parallel()

	srv := newRegistryServer(t, map[string]string{"@prisma/client": "6.13.0"})
	r := NewResolver(srv.URL, srv.Client(), nil)

	if got := r.Resolve(context.Background(), "@prisma/client"); got != "^6.13.0" {
		t.Errorf("Resolve(@prisma/client) = %q, want ^6.13.0", got)
	}
}

func TestResolveFallsBackOnNotFound(t *testing.T) {
	t.Parallel()

	srv := newRegistryServer(t, nil)
	r := NewResolver(srv.URL, srv.Client(), nil)

	// "react" is in the fallback table; an unknown name is not.
	if got := r.Resolve(context.Background(), "react"); got != fallbackVersions["react"] {
		t.Errorf("Resolve(react) = %q, want table entry %q", got, fallbackVersions["react"])
	}
	if got := r.Resolve(context.Background(), "no-such-package-xyz"); got != FallbackVersion {
		t.Errorf("Resolve(unknown) = %q, want %q", got, FallbackVersion)
	}
}

func TestResolveFallsBackOnMalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version": "not a version"}`))
	}))
	t.Cleanup(srv.Close)
	r := NewResolver(srv.URL, srv.Client(), nil)

	if got := r.Resolve(context.Background(), "react"); got != fallbackVersions["react"] {
		t.Errorf("Resolve(react) = %q, want fallback %q", got, fallbackVersions["react"])
	}
}

func TestResolveCachesLookups(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"version": "1.0.0"})
	}))
	t.Cleanup(srv.Close)
	r := NewResolver(srv.URL, srv.Client(), nil)

	ctx := context.Background()
	first := r.Resolve(ctx, "vite")
	second := r.Resolve(ctx, "vite")

	if first != second {
		t.Errorf("cached result differs: %q then %q", first, second)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("registry hit %d times, want 1", got)
	}
}

func TestResolveAll(t *testing.T) {
	t.Parallel()

	srv := newRegistryServer(t, map[string]string{
		"react":     "19.1.0",
		"react-dom": "19.1.0",
		"vite":      "7.1.2",
	})
	r := NewResolver(srv.URL, srv.Client(), nil)

	got := r.ResolveAll(context.Background(), []string{"react", "react-dom", "vite"})
	want := map[string]string{
		"react":     "^19.1.0",
		"react-dom": "^19.1.0",
		"vite":      "^7.1.2",
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("ResolveAll()[%s] = %q, want %q", name, got[name], v)
		}
	}
}

func TestResolveAllOffline(t *testing.T) {
	t.Parallel()

	// A closed server: the reachability probe fails and the whole batch
	// must come from the fallback table without per-package lookups.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := srv.Client()
	url := srv.URL
	srv.Close()

	r := NewResolver(url, client, nil)
	got := r.ResolveAll(context.Background(), []string{"express", "no-such-package-xyz"})

	if got["express"] != fallbackVersions["express"] {
		t.Errorf("offline express = %q, want %q", got["express"], fallbackVersions["express"])
	}
	if got["no-such-package-xyz"] != FallbackVersion {
		t.Errorf("offline unknown = %q, want %q", got["no-such-package-xyz"], FallbackVersion)
	}
}

func TestOnline(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	t.Cleanup(srv.Close)

	r := NewResolver(srv.URL, srv.Client(), nil)
	if !r.Online(context.Background()) {
		t.Error("Online() = false for a responding server")
	}

	dead := NewResolver("http://127.0.0.1:1", nil, nil)
	if dead.Online(context.Background()) {
		t.Error("Online() = true for an unreachable endpoint")
	}
}

func TestFallbackTableEntriesAreCaretRanges(t *testing.T) {
	t.Parallel()

	for name, v := range fallbackVersions {
		if !strings.HasPrefix(v, "^") {
			t.Errorf("fallback for %s = %q, want caret range", name, v)
		}
	}
}
