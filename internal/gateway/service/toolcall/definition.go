package toolcall

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// IdentityParam is the input field that carries the verified caller identity.
// The dispatcher injects it on every invocation; it is never part of the
// catalog exposed to the model and never trusted from raw arguments.
const IdentityParam = "user_id"

// Handler executes one tool invocation. Arguments arrive validated only for
// shape (a JSON object); the handler owns domain validation and returns a
// Result for every business outcome. Handlers must be stateless: one storage
// unit of work per call, nothing retained between calls.
type Handler func(ctx context.Context, args map[string]any) *Result

// Definition describes a registered tool: its wire name, the description the
// model selects on, the full input schema (identity field included), and the
// handler that executes it.
type Definition struct {
	// Name is the tool name (lowercase snake_case).
	Name string
	// Description is the natural-language description exposed to the model.
	Description string
	// Params is the input schema, keyed by parameter name. It must include
	// IdentityParam; Registry.Register warns when it does not.
	Params map[string]*schema.ParameterInfo
	// Handler implements the tool.
	Handler Handler
}

// ToolInfo renders the definition as an Eino tool schema for the model
// catalog. The identity parameter is stripped: the model neither sees nor
// supplies it.
func (d *Definition) ToolInfo() *schema.ToolInfo {
	params := make(map[string]*schema.ParameterInfo, len(d.Params))
	for name, info := range d.Params {
		if name == IdentityParam {
			continue
		}
		params[name] = info
	}
	return &schema.ToolInfo{
		Name:        d.Name,
		Desc:        d.Description,
		ParamsOneOf: schema.NewParamsOneOfByParams(params),
	}
}
