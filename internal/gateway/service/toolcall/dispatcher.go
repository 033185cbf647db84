package toolcall

import (
	"context"
	"fmt"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/pkg/logger"
	"github.com/kiosk404/taskmind/pkg/utils/json"
)

// Dispatcher routes tool invocations through the registry, injecting the
// verified caller identity and normalizing handler faults into structured
// results.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Invoke executes one tool call on behalf of callerIdentity.
//
// An unregistered tool name is a programming error and returns
// errno.ErrToolNotRegistered to the caller; every other failure, including
// a panicking handler, is converted into a failure Result. The injected
// identity always overwrites an identity-shaped key in rawArgs: a
// caller-supplied identity must never reach a handler.
func (d *Dispatcher) Invoke(ctx context.Context, name string, rawArgs map[string]any, callerIdentity string) (*Result, error) {
	def, ok := d.registry.Lookup(name)
	if !ok {
		logger.Error("[ToolDispatcher] tool %q not registered", name)
		return nil, fmt.Errorf("%w: %q", errno.ErrToolNotRegistered, name)
	}

	args := make(map[string]any, len(rawArgs)+1)
	for k, v := range rawArgs {
		args[k] = v
	}
	args[IdentityParam] = callerIdentity

	result := d.execute(ctx, def, args)
	d.audit(name, rawArgs, result)
	return result, nil
}

// execute runs the handler, recovering panics into a structured error so the
// dispatcher never lets a handler fault escape for a registered tool.
func (d *Dispatcher) execute(ctx context.Context, def *Definition, args map[string]any) (result *Result) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("[ToolDispatcher] tool %q panicked: %v", def.Name, rec)
			result = Fail(CodeToolExecutionError, fmt.Sprintf("tool %q execution failed: %v", def.Name, rec))
		}
	}()

	result = def.Handler(ctx, args)
	if result == nil {
		result = Fail(CodeToolExecutionError, fmt.Sprintf("tool %q returned no result", def.Name))
	}
	return result
}

// audit logs the invocation with the identity field redacted. Logging is
// best-effort and never affects the returned result.
func (d *Dispatcher) audit(name string, rawArgs map[string]any, result *Result) {
	redacted := make(map[string]any, len(rawArgs))
	for k, v := range rawArgs {
		if k == IdentityParam {
			continue
		}
		redacted[k] = v
	}

	argsJSON, err := json.MarshalString(redacted)
	if err != nil {
		argsJSON = "<unserializable>"
	}

	if result.Success {
		logger.Info("[ToolDispatcher] tool=%s args=%s success=true", name, argsJSON)
		return
	}
	logger.Info("[ToolDispatcher] tool=%s args=%s success=false code=%s", name, argsJSON, result.ErrorCode())
}
