// Package registry resolves npm package versions. Resolution is layered:
// an in-process cache, then a live registry lookup with a short timeout,
// then a static fallback table, and finally the literal "latest" tag.
// Network failures are never surfaced as errors; a scaffolder must not
// fail because the registry is slow or unreachable.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	goversion "github.com/hashicorp/go-version"
)

// DefaultBaseURL is the public npm registry endpoint.
const DefaultBaseURL = "https://registry.npmjs.org"

// lookupTimeout bounds a single registry request.
const lookupTimeout = 3 * time.Second

// FallbackVersion is returned when a package is absent from both the
// registry and the static fallback table.
const FallbackVersion = "latest"

// packument is the subset of the registry's /<pkg>/latest response we read.
type packument struct {
	Version string `json:"version"`
}

// Resolver maps package names to semantic version strings.
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewResolver creates a Resolver querying baseURL (DefaultBaseURL when
// empty). Pass an httptest.Server URL and its client for testing. A nil
// client gets a default with the lookup timeout applied.
func NewResolver(baseURL string, client *http.Client, logger *slog.Logger) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: lookupTimeout}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
		cache:   make(map[string]string),
	}
}

// Resolve returns the version string for name: cached value, live lookup
// ("^" + latest dist-tag), static fallback table entry, or "latest".
func (r *Resolver) Resolve(ctx context.Context, name string) string {
	r.mu.Lock()
	if v, ok := r.cache[name]; ok {
		r.mu.Unlock()
		return v
	}
	r.mu.Unlock()

	v, err := r.lookup(ctx, name)
	if err != nil {
		r.logger.Debug("registry lookup failed, using fallback", "package", name, "error", err)
		v = fallbackFor(name)
	}

	r.mu.Lock()
	r.cache[name] = v
	r.mu.Unlock()
	return v
}

// ResolveAll resolves names concurrently and returns a name→version map.
// When the registry is unreachable the whole batch short-circuits to the
// fallback table instead of waiting out one timeout per package.
func (r *Resolver) ResolveAll(ctx context.Context, names []string) map[string]string {
	versions := make(map[string]string, len(names))

	if !r.Online(ctx) {
		r.logger.Debug("registry unreachable, resolving batch from fallback table", "packages", len(names))
		r.mu.Lock()
		for _, name := range names {
			if v, ok := r.cache[name]; ok {
				versions[name] = v
				continue
			}
			v := fallbackFor(name)
			r.cache[name] = v
			versions[name] = v
		}
		r.mu.Unlock()
		return versions
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			v := r.Resolve(ctx, name)
			mu.Lock()
			versions[name] = v
			mu.Unlock()
		}(name)
	}
	wg.Wait()
	return versions
}

// Online reports whether the registry endpoint answers at all. Any HTTP
// response, including an error status, counts as reachable.
func (r *Resolver) Online(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL, nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return true
}

// lookup fetches the latest dist-tag for name and returns it caret-prefixed.
func (r *Resolver) lookup(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s/latest", r.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("registry: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "stackgen")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("registry: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("registry: unexpected status %d for %s", resp.StatusCode, name)
	}

	var pkg packument
	if err := json.NewDecoder(resp.Body).Decode(&pkg); err != nil {
		return "", fmt.Errorf("registry: decode response for %s: %w", name, err)
	}
	if _, err := goversion.NewSemver(pkg.Version); err != nil {
		return "", fmt.Errorf("registry: invalid version %q for %s: %w", pkg.Version, name, err)
	}
	return "^" + pkg.Version, nil
}

// fallbackFor returns the pinned fallback version for name, or "latest".
func fallbackFor(name string) string {
	if v, ok := fallbackVersions[name]; ok {
		return v
	}
	return FallbackVersion
}
