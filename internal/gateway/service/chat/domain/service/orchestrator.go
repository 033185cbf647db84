package service

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/kiosk404/taskmind/internal/gateway/service/chat/domain/entity"
	"github.com/kiosk404/taskmind/internal/gateway/service/toolcall"
	"github.com/kiosk404/taskmind/pkg/logger"
	"github.com/kiosk404/taskmind/pkg/utils/json"
)

// ToolCallLog is one audit entry of the invocation: which tool ran, with
// which arguments (identity redacted), and whether it succeeded.
type ToolCallLog struct {
	Tool    string         `json:"tool"`
	Args    map[string]any `json:"args"`
	Success bool           `json:"success"`
}

// InvocationResult is the outcome of one orchestration pass. Constructed
// fresh per invocation and never retained: the orchestrator holds no state
// between turns beyond what the caller passes in.
type InvocationResult struct {
	// Message is the user-facing reply.
	Message string `json:"message"`

	// ToolCalls is the ordered audit log of dispatched tools.
	ToolCalls []ToolCallLog `json:"tool_calls"`

	// Error carries the technical failure detail for logging. Empty on
	// success; never shown to the user.
	Error string `json:"error,omitempty"`
}

// Orchestrator drives one agent turn: build context, call the model exactly
// once with the tool catalog, dispatch any requested tool calls in order,
// and render a single reply.
//
// Tool results are not fed back into a second model call: when the model
// requests tools, the reply is the rendered confirmation of the last call.
type Orchestrator struct {
	chatModel    model.ToolCallingChatModel
	registry     *toolcall.Registry
	dispatcher   *toolcall.Dispatcher
	historyLimit int
}

// NewOrchestrator creates an Orchestrator. chatModel may be nil when no
// model provider is configured; the coordinator checks Configured before
// invoking.
func NewOrchestrator(chatModel model.ToolCallingChatModel, registry *toolcall.Registry, dispatcher *toolcall.Dispatcher, historyLimit int) *Orchestrator {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	return &Orchestrator{
		chatModel:    chatModel,
		registry:     registry,
		dispatcher:   dispatcher,
		historyLimit: historyLimit,
	}
}

// Configured reports whether a model provider is wired in.
func (o *Orchestrator) Configured() bool {
	return o.chatModel != nil
}

// HistoryLimit returns the maximum history turns included per pass.
func (o *Orchestrator) HistoryLimit() int {
	return o.historyLimit
}

// Invoke runs one orchestration pass for userID. Faults during the model
// call or dispatch never escape: they degrade to a generic apology with the
// technical detail in the Error field.
func (o *Orchestrator) Invoke(ctx context.Context, userMessage string, history []*entity.Turn, userID string) *InvocationResult {
	messages := o.buildMessages(userMessage, history)

	tcm, err := o.chatModel.WithTools(o.registry.ToolInfos())
	if err != nil {
		logger.Error("[Orchestrator] failed to bind tools: %v", err)
		return &InvocationResult{Message: msgApology, Error: err.Error()}
	}

	// Exactly one model call per turn.
	response, err := tcm.Generate(ctx, messages)
	if err != nil {
		logger.Error("[Orchestrator] model call failed for user %s: %v", userID, err)
		return &InvocationResult{Message: msgApology, Error: err.Error()}
	}

	if len(response.ToolCalls) > 0 {
		return o.dispatchToolCalls(ctx, response.ToolCalls, userID)
	}

	reply := response.Content
	if reply == "" {
		reply = msgFallback
	}
	return &InvocationResult{Message: reply}
}

// buildMessages assembles the prompt: fixed system instructions, the bounded
// history window, then the new user message.
func (o *Orchestrator) buildMessages(userMessage string, history []*entity.Turn) []*schema.Message {
	if len(history) > o.historyLimit {
		history = history[len(history)-o.historyLimit:]
	}

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	for _, turn := range history {
		switch turn.Role {
		case entity.RoleUser:
			messages = append(messages, schema.UserMessage(turn.Content))
		case entity.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
		}
	}
	return append(messages, schema.UserMessage(userMessage))
}

// dispatchToolCalls executes the requested calls strictly in the order the
// model issued them. Every call is logged; the reply and the error status
// both reflect the last call, so an early fault followed by a successful
// call reads as a success.
func (o *Orchestrator) dispatchToolCalls(ctx context.Context, calls []schema.ToolCall, userID string) *InvocationResult {
	logger.Info("[Orchestrator] model requested %d tool call(s) for user %s", len(calls), userID)

	result := &InvocationResult{}
	var reply string

	for _, call := range calls {
		name := call.Function.Name

		var rawArgs map[string]any
		if call.Function.Arguments != "" {
			if err := json.UnmarshalString(call.Function.Arguments, &rawArgs); err != nil {
				logger.Error("[Orchestrator] malformed arguments for tool %q: %v", name, err)
				result.ToolCalls = append(result.ToolCalls, ToolCallLog{Tool: name, Success: false})
				reply = msgApology
				result.Error = fmt.Sprintf("malformed tool arguments for %q: %v", name, err)
				continue
			}
		}

		toolResult, err := o.dispatcher.Invoke(ctx, name, rawArgs, userID)
		if err != nil {
			// Unregistered tool: a configuration fault, loud in logs,
			// apologetic to the user.
			logger.Error("[Orchestrator] dispatch failed for tool %q: %v", name, err)
			result.ToolCalls = append(result.ToolCalls, ToolCallLog{Tool: name, Args: redactIdentity(rawArgs), Success: false})
			reply = msgApology
			result.Error = err.Error()
			continue
		}

		result.ToolCalls = append(result.ToolCalls, ToolCallLog{
			Tool:    name,
			Args:    redactIdentity(rawArgs),
			Success: toolResult.Success,
		})

		reply = renderToolResult(name, toolResult)
		result.Error = ""
	}

	result.Message = reply
	return result
}

// redactIdentity strips any identity-shaped key before the arguments are
// recorded in the audit trail.
func redactIdentity(args map[string]any) map[string]any {
	redacted := make(map[string]any, len(args))
	for k, v := range args {
		if k == toolcall.IdentityParam {
			continue
		}
		redacted[k] = v
	}
	return redacted
}
