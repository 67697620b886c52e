package concierge

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/Kaztic/foodiespot-reservation-agent/agent/contract"
)

type TurnInput struct {
	SessionID string
	Text      string
}

type TurnOutput struct {
	Reply string
}

type turnState struct {
	SessionID string
	Text      string

	History []*schema.Message
	Reply   string
}

func (s *Service) compileTurnGraph(
	ctx context.Context,
) (compose.Runnable[TurnInput, TurnOutput], error) {
	graph := compose.NewGraph[TurnInput, TurnOutput]()

	if err := graph.AddLambdaNode("validate_turn",
		compose.InvokableLambda(func(ctx context.Context, in TurnInput) (*turnState, error) {
			return validateTurn(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_turn: %w", err)
	}

	if err := graph.AddLambdaNode("load_history",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (*turnState, error) {
			in.History = s.history(in.SessionID)
			return in, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node load_history: %w", err)
	}

	if err := graph.AddLambdaNode("generate_reply",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (*turnState, error) {
			return s.generateReply(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node generate_reply: %w", err)
	}

	if err := graph.AddLambdaNode("save_history",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (*turnState, error) {
			s.appendHistory(in.SessionID,
				schema.UserMessage(in.Text),
				schema.AssistantMessage(in.Reply, nil),
			)
			return in, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node save_history: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (TurnOutput, error) {
			return TurnOutput{Reply: in.Reply}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_turn"},
		{"validate_turn", "load_history"},
		{"load_history", "generate_reply"},
		{"generate_reply", "save_history"},
		{"save_history", "finalize_reply"},
		{"finalize_reply", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("concierge.handle_message"))
	if err != nil {
		return nil, fmt.Errorf("compile concierge graph: %w", err)
	}
	return runner, nil
}

func validateTurn(in TurnInput) (*turnState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}
	return &turnState{SessionID: sessionID, Text: text}, nil
}

// generateReply runs the model/tool loop for one turn. Each round either
// yields a final reply or a batch of tool calls whose results are appended
// as tool messages for the next round.
func (s *Service) generateReply(ctx context.Context, in *turnState) (*turnState, error) {
	convo := make([]*schema.Message, 0, len(in.History)+2)
	convo = append(convo, schema.SystemMessage(s.systemPrompt))
	convo = append(convo, in.History...)
	convo = append(convo, schema.UserMessage(in.Text))

	for round := 0; round < s.maxToolRounds; round++ {
		msg, err := s.model.Generate(ctx, convo)
		if err != nil {
			return nil, fmt.Errorf("%w: generate reply: %v", contractx.ErrModelInvoke, err)
		}
		if msg == nil {
			return nil, fmt.Errorf("%w: model returned no message", contractx.ErrSchemaViolation)
		}

		if len(msg.ToolCalls) == 0 {
			reply := strings.TrimSpace(msg.Content)
			if reply == "" {
				return nil, fmt.Errorf("%w: model returned an empty reply", contractx.ErrSchemaViolation)
			}
			in.Reply = reply
			return in, nil
		}

		convo = append(convo, msg)
		toolMsgs, err := s.executeToolCalls(ctx, msg.ToolCalls)
		if err != nil {
			return nil, err
		}
		convo = append(convo, toolMsgs...)
	}

	return nil, fmt.Errorf("%w: tool rounds exhausted without a final reply", contractx.ErrSchemaViolation)
}

func (s *Service) executeToolCalls(ctx context.Context, calls []schema.ToolCall) ([]*schema.Message, error) {
	reqs, err := toToolRequests(calls)
	if err != nil {
		return nil, err
	}

	results, err := s.tools.Execute(ctx, reqs)
	if err != nil {
		return nil, fmt.Errorf("%w: execute tools: %v", contractx.ErrModelInvoke, err)
	}
	if len(results) != len(calls) {
		return nil, fmt.Errorf("%w: got %d tool results for %d calls", contractx.ErrSchemaViolation, len(results), len(calls))
	}

	msgs := make([]*schema.Message, 0, len(results))
	for i, res := range results {
		msgs = append(msgs, schema.ToolMessage(renderToolResult(res), calls[i].ID))
	}
	return msgs, nil
}
