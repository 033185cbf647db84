package toolcall

// Error codes surfaced in Result.Error.Code. Handlers use the first three
// for expected business outcomes; the dispatcher uses the last one when a
// handler faults.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeToolExecutionError = "TOOL_EXECUTION_ERROR"
)

// Error is the structured failure branch of a Result.
type Error struct {
	// Code is a machine-readable error code (uppercase snake_case).
	Code string `json:"code"`
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

// Result is the outcome of a tool invocation. Exactly one branch is set:
// Success=true with Data, or Success=false with Error. Business failures
// ("not found", bad input) are Results, never Go errors; errors are
// reserved for faults like invoking an unregistered tool.
type Result struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   *Error         `json:"error,omitempty"`
}

// OK builds a success result.
func OK(data map[string]any) *Result {
	return &Result{Success: true, Data: data}
}

// Fail builds a failure result with the given code and message.
func Fail(code, message string) *Result {
	return &Result{Success: false, Error: &Error{Code: code, Message: message}}
}

// ErrorCode returns the error code, or "" for a success result.
func (r *Result) ErrorCode() string {
	if r == nil || r.Error == nil {
		return ""
	}
	return r.Error.Code
}
