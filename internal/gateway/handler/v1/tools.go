package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
	"github.com/kiosk404/taskmind/internal/pkg/core"
)

// ToolsHandler handles GET /api/v1/tools: the catalog of registered tools,
// identity parameters excluded.
type ToolsHandler struct {
	registry *toolcall.Registry
}

// NewToolsHandler creates a new ToolsHandler.
func NewToolsHandler(registry *toolcall.Registry) *ToolsHandler {
	return &ToolsHandler{registry: registry}
}

// List returns the registered tools in registration order.
func (h *ToolsHandler) List(c *gin.Context) {
	catalog := h.registry.Catalog()

	entries := make([]ToolCatalogEntry, 0, len(catalog))
	for _, item := range catalog {
		entries = append(entries, ToolCatalogEntry{
			Name:        item.Name,
			Description: item.Description,
		})
	}

	core.WriteResponse(c, nil, gin.H{"tools": entries, "count": len(entries)})
}
