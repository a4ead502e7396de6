package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// ApologyReply is the only text a caller sees when a turn fails internally.
const ApologyReply = "I apologize, but I'm having trouble processing your request right now. Please try again."

// MessageHandler is the conversation loop consumed by the service.
type MessageHandler interface {
	HandleMessage(ctx context.Context, text string) (string, error)
}

// Service is the stateless per-request entry point. Every collaborator is
// injected once at startup; there is no cross-request memory.
type Service struct {
	orch MessageHandler
}

func NewService(orch MessageHandler) (*Service, error) {
	if orch == nil {
		return nil, errors.New("message handler is required")
	}
	return &Service{orch: orch}, nil
}

// ProcessMessage runs one user turn. It never returns an error: any failure
// is logged and translated to the fixed apology reply.
func (s *Service) ProcessMessage(ctx context.Context, text string) string {
	log.Info().Str("user_message", text).Msg("processing chat message")

	reply, err := s.orch.HandleMessage(ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("chat turn failed")
		return ApologyReply
	}
	if strings.TrimSpace(reply) == "" {
		log.Error().Msg("chat turn produced an empty reply")
		return ApologyReply
	}

	log.Info().Int("reply_len", len(reply)).Msg("chat turn completed")
	return reply
}
