package contract

// ToolRequest is a single tool invocation requested by the language model.
type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is the uniform envelope handed back to the conversation loop.
// Result carries the tool-specific payload; Error is set only when dispatch
// itself failed (unknown tool, broken arguments). Domain failures such as
// "restaurant not found" or "invalid party size" live inside Result so the
// model can read the message and relay it conversationally.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
