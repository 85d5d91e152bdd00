package templates

// PackageJSON models the npm manifest. Field order matches the JSON
// field order of hand-written manifests; map keys are emitted sorted by
// encoding/json, which matches npm's own normalization.
type PackageJSON struct {
	Name            string            `json:"name"`
	Private         bool              `json:"private"`
	Version         string            `json:"version"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// ManifestVersion is the version every scaffolded project starts at.
const ManifestVersion = "0.1.0"

// NewPackageJSON creates a manifest skeleton for name. moduleType is
// "module" for ESM projects (Vite, Express) and empty for the frameworks
// that manage module semantics themselves.
func NewPackageJSON(name, moduleType string) *PackageJSON {
	return &PackageJSON{
		Name:            name,
		Private:         true,
		Version:         ManifestVersion,
		Type:            moduleType,
		Scripts:         make(map[string]string),
		Dependencies:    make(map[string]string),
		DevDependencies: make(map[string]string),
	}
}

// AddScript registers a package.json script.
func (p *PackageJSON) AddScript(name, command string) {
	p.Scripts[name] = command
}

// AddDependency registers a runtime dependency with its resolved version.
func (p *PackageJSON) AddDependency(name, version string) {
	p.Dependencies[name] = version
}

// AddDevDependency registers a development dependency with its resolved version.
func (p *PackageJSON) AddDevDependency(name, version string) {
	p.DevDependencies[name] = version
}

// DependencyNames returns all dependency and devDependency names, for
// batch version resolution before the manifest is finalized.
func (p *PackageJSON) DependencyNames() []string {
	names := make([]string, 0, len(p.Dependencies)+len(p.DevDependencies))
	for name := range p.Dependencies {
		names = append(names, name)
	}
	for name := range p.DevDependencies {
		names = append(names, name)
	}
	return names
}

// Has reports whether name is present as a dependency or devDependency.
func (p *PackageJSON) Has(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}
