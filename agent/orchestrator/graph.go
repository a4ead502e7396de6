package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/nileshdh/restaurant-agent/agent/contract"
)

func (o *Orchestrator) compileHandleMessageGraph(
	ctx context.Context,
) (compose.Runnable[GraphInput, GraphOutput], error) {
	graph := compose.NewGraph[GraphInput, GraphOutput]()

	if err := graph.AddLambdaNode("seed_history",
		compose.InvokableLambda(func(ctx context.Context, in GraphInput) (*graphState, error) {
			text := strings.TrimSpace(in.Text)
			if text == "" {
				return nil, fmt.Errorf("%w: message is empty", contractx.ErrValidation)
			}
			return &graphState{
				History: []*schema.Message{
					schema.SystemMessage(o.systemPrompt),
					schema.UserMessage(text),
				},
			}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node seed_history: %w", err)
	}

	if err := graph.AddLambdaNode("run_loop",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (*graphState, error) {
			return o.runLoop(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node run_loop: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *graphState) (GraphOutput, error) {
			if in == nil {
				return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
			}
			reply := strings.TrimSpace(in.Reply)
			if reply == "" {
				return GraphOutput{}, fmt.Errorf("%w: model returned an empty reply", contractx.ErrValidation)
			}
			return GraphOutput{Reply: reply}, nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "seed_history"},
		{"seed_history", "run_loop"},
		{"run_loop", "finalize_reply"},
		{"finalize_reply", compose.END},
	}
	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("orchestrator.handle_message"))
	if err != nil {
		return nil, fmt.Errorf("compile orchestrator graph: %w", err)
	}
	return runner, nil
}
