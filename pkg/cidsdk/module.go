package cidsdk

// ProjectModule is a buildable unit discovered in the project. Modules form
// a tree through Submodules, a module owns its submodules.
type ProjectModule struct {
	ProjectDir        string                   `json:"project_dir"`
	ModuleDir         string                   `json:"module_dir"`
	Discovery         []ProjectModuleDiscovery `json:"discovery"`
	Name              string                   `json:"name"`
	Slug              string                   `json:"slug"`
	BuildSystem       string                   `json:"build_system"`
	BuildSystemSyntax string                   `json:"build_system_syntax"`
	Language          map[string]string        `json:"language,omitzero"`
	Dependencies      []ProjectDependency      `json:"dependencies,omitzero"`
	Submodules        []ProjectModule          `json:"submodules,omitzero"`
	Files             []string                 `json:"files"`
}

// ProjectModuleDiscovery names the file a module was discovered by.
type ProjectModuleDiscovery struct {
	File string `json:"file"`
}

// ProjectDependency is a dependency declared by a module.
type ProjectDependency struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Version string `json:"version"`
}

// Walk calls fn for m and all of its submodules, depth first. depth is 0
// for m itself. Returning false from fn skips the submodules of that module.
func (m *ProjectModule) Walk(fn func(module *ProjectModule, depth int) bool) {
	m.walk(fn, 0)
}

func (m *ProjectModule) walk(fn func(*ProjectModule, int) bool, depth int) {
	if !fn(m, depth) {
		return
	}
	for i := range m.Submodules {
		m.Submodules[i].walk(fn, depth+1)
	}
}

// FindModule searches the module trees for a module by slug.
func FindModule(modules []ProjectModule, slug string) *ProjectModule {
	var found *ProjectModule
	for i := range modules {
		modules[i].Walk(func(m *ProjectModule, _ int) bool {
			if found != nil {
				return false
			}
			if m.Slug == slug {
				found = m
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}
