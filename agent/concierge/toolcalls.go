package concierge

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/Kaztic/foodiespot-reservation-agent/agent/contract"
)

func toToolRequests(calls []schema.ToolCall) ([]contractx.ToolRequest, error) {
	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		tool := strings.TrimSpace(call.Function.Name)
		if tool == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		rawArgs := strings.TrimSpace(call.Function.Arguments)
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
			}
		}

		reqs = append(reqs, contractx.ToolRequest{
			Tool: tool,
			Args: args,
		})
	}
	return reqs, nil
}

// renderToolResult serializes one tool result as the tool-message content
// the model reads. Dispatch failures keep the same error-envelope shape the
// tools themselves use, so the model can relay them the same way.
func renderToolResult(res contractx.ToolResult) string {
	var payload any = res.Result
	if res.Error != "" {
		payload = map[string]any{
			"error":   true,
			"message": res.Error,
		}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		raw = []byte(fmt.Sprintf(`{"error":true,"message":"An error occurred while trying to execute the %s action."}`, res.Tool))
	}
	return string(raw)
}
