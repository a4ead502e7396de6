package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/nileshdh/restaurant-agent/agent/contract"
	toolx "github.com/nileshdh/restaurant-agent/agent/tool"
)

const defaultMaxRoundTrips = 10

// FallbackReply is returned when a conversation hits the round-trip bound.
const FallbackReply = "I'm sorry, I wasn't able to complete that request. Could you please try asking in a different way?"

type Config struct {
	// MaxRoundTrips caps model-call/tool-dispatch cycles per request so a
	// model that never stops requesting tools cannot loop forever.
	MaxRoundTrips int
}

// GraphInput is one incoming user turn.
type GraphInput struct {
	Text string
}

// GraphOutput carries the final assistant reply.
type GraphOutput struct {
	Reply string
}

// graphState is the per-request conversation state. It is owned exclusively
// by one HandleMessage call and never shared or persisted.
type graphState struct {
	History []*schema.Message
	Reply   string
}

// Orchestrator runs the tool-calling conversation loop: ask the model for
// the next action, execute any requested tools, feed results back, repeat
// until the model answers in plain text or the round-trip bound is hit.
type Orchestrator struct {
	model         einomodel.ToolCallingChatModel
	tools         *toolx.Registry
	systemPrompt  string
	maxRoundTrips int

	graphRunner compose.Runnable[GraphInput, GraphOutput]
}

func New(
	chatModel einomodel.ToolCallingChatModel,
	tools *toolx.Registry,
	systemPrompt string,
	cfg Config,
) (*Orchestrator, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}
	if tools == nil {
		return nil, errors.New("tool registry is required")
	}
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, errors.New("system prompt is required")
	}

	boundModel, err := chatModel.WithTools(toolx.Infos())
	if err != nil {
		return nil, fmt.Errorf("%w: bind tools: %v", contractx.ErrModelInvoke, err)
	}

	maxRoundTrips := cfg.MaxRoundTrips
	if maxRoundTrips <= 0 {
		maxRoundTrips = defaultMaxRoundTrips
	}

	o := &Orchestrator{
		model:         boundModel,
		tools:         tools,
		systemPrompt:  systemPrompt,
		maxRoundTrips: maxRoundTrips,
	}

	graphRunner, err := o.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// HandleMessage processes one stateless user turn and returns the final
// assistant text.
func (o *Orchestrator) HandleMessage(ctx context.Context, text string) (string, error) {
	out, err := o.graphRunner.Invoke(ctx, GraphInput{Text: text})
	if err != nil {
		return "", err
	}
	return out.Reply, nil
}
