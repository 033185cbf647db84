package toolcall

import (
	"fmt"
	"regexp"

	"github.com/cloudwego/eino/schema"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/pkg/logger"
)

var toolNameRE = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// CatalogEntry is one row of the tool catalog exposed for model selection.
type CatalogEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry is the in-memory tool table. Registration happens sequentially at
// startup; afterwards the registry is read-only and safe for concurrent
// lookups without locking.
type Registry struct {
	defs  map[string]*Definition
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]*Definition)}
}

// Register adds a tool definition. The name must be lowercase snake_case; a
// schema without the identity field is accepted but logged loudly, since such
// a tool cannot enforce ownership.
func (r *Registry) Register(def *Definition) error {
	if !toolNameRE.MatchString(def.Name) {
		return fmt.Errorf("%w: %q must be lowercase snake_case", errno.ErrInvalidToolName, def.Name)
	}
	if _, exists := r.defs[def.Name]; exists {
		return fmt.Errorf("%w: %q already registered", errno.ErrInvalidToolName, def.Name)
	}
	if def.Handler == nil {
		return fmt.Errorf("%w: %q has no handler", errno.ErrInvalidToolName, def.Name)
	}

	if _, ok := def.Params[IdentityParam]; !ok {
		logger.Warn("[ToolRegistry] tool %q input schema is missing the %q field; ownership cannot be enforced",
			def.Name, IdentityParam)
	}

	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)
	logger.Info("[ToolRegistry] registered tool %q", def.Name)
	return nil
}

// Lookup returns the definition for name, if registered.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Catalog lists registered tools with descriptions, in registration order.
func (r *Registry) Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(r.order))
	for _, name := range r.order {
		entries = append(entries, CatalogEntry{
			Name:        name,
			Description: r.defs[name].Description,
		})
	}
	return entries
}

// ToolInfos renders the catalog as Eino tool schemas, in registration order.
// Identity parameters are already stripped by Definition.ToolInfo.
func (r *Registry) ToolInfos() []*schema.ToolInfo {
	infos := make([]*schema.ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, r.defs[name].ToolInfo())
	}
	return infos
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.defs)
}
