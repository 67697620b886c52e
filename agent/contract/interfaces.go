package contract

import "context"

// ToolGateway executes tool requests on behalf of the conversation loop.
type ToolGateway interface {
	Execute(ctx context.Context, reqs []ToolRequest) ([]ToolResult, error)
}
