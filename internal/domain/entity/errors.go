package entity

// OperationError represents a terminal failure of one access-layer
// operation. StatusCode is 0 when the failure could not be classified.
// Details carries free-form context, at minimum the operation/target
// that failed under the "context" key.
type OperationError struct {
	Message    string
	StatusCode int
	Details    map[string]string
}

// Error returns the human-readable failure message.
func (e *OperationError) Error() string {
	return e.Message
}

// ErrNotInitialized is returned by every tool when the Medium access
// layer was never constructed, typically because startup configuration
// failed. It is an OperationError so the tool surface reports it with
// the upstream-error prefix rather than crashing.
var ErrNotInitialized = &OperationError{
	Message: "Medium MCP server not initialized. Check your RAPIDAPI_KEY environment variable.",
}
