package concierge

import (
	"context"
	"errors"
	"sync"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/Kaztic/foodiespot-reservation-agent/agent/contract"
	promptx "github.com/Kaztic/foodiespot-reservation-agent/agent/prompt"
)

var (
	ErrInvalidSession = errors.New("session id is empty")
	ErrInvalidMessage = errors.New("message is empty")
)

const defaultMaxToolRounds = 4

// Config tunes the conversation loop.
type Config struct {
	// MaxToolRounds bounds model/tool round-trips within a single turn.
	MaxToolRounds int
}

// Service drives one conversation turn: it sends the user message to the
// tool-bound chat model, executes any requested tool calls through the
// gateway, feeds results back, and returns the final reply. History is kept
// in memory per session for the process lifetime.
type Service struct {
	model         einomodel.ToolCallingChatModel
	tools         contractx.ToolGateway
	systemPrompt  string
	maxToolRounds int

	graphRunner compose.Runnable[TurnInput, TurnOutput]

	mu       sync.Mutex
	sessions map[string][]*schema.Message
}

func New(
	chatModel einomodel.ToolCallingChatModel,
	infos []*schema.ToolInfo,
	tools contractx.ToolGateway,
	cfg Config,
) (*Service, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}
	if tools == nil {
		return nil, errors.New("tool gateway is required")
	}

	toolModel, err := chatModel.WithTools(infos)
	if err != nil {
		return nil, err
	}

	maxToolRounds := cfg.MaxToolRounds
	if maxToolRounds <= 0 {
		maxToolRounds = defaultMaxToolRounds
	}

	s := &Service{
		model:         toolModel,
		tools:         tools,
		systemPrompt:  promptx.Persona(),
		maxToolRounds: maxToolRounds,
		sessions:      make(map[string][]*schema.Message),
	}

	graphRunner, err := s.compileTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	s.graphRunner = graphRunner

	return s, nil
}

// HandleMessage processes one user message inside the given session and
// returns the assistant reply.
func (s *Service) HandleMessage(ctx context.Context, sessionID string, text string) (string, error) {
	out, err := s.graphRunner.Invoke(ctx, TurnInput{
		SessionID: sessionID,
		Text:      text,
	})
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}

func (s *Service) history(sessionID string) []*schema.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*schema.Message(nil), s.sessions[sessionID]...)
}

func (s *Service) appendHistory(sessionID string, msgs ...*schema.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], msgs...)
}
