package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/nileshdh/restaurant-agent/agent/contract"
)

// runLoop drives the two-state machine: AWAITING_MODEL calls the model with
// the full history, AWAITING_TOOLS answers every requested tool call exactly
// once before the next model call. Terminal when an assistant message
// carries no tool calls.
func (o *Orchestrator) runLoop(ctx context.Context, st *graphState) (*graphState, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	for trip := 0; trip < o.maxRoundTrips; trip++ {
		resp, err := o.model.Generate(ctx, st.History)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
		}
		st.History = append(st.History, resp)

		if len(resp.ToolCalls) == 0 {
			st.Reply = resp.Content
			return st, nil
		}

		st.History = append(st.History, o.dispatch(ctx, resp.ToolCalls)...)
	}

	log.Warn().
		Int("max_round_trips", o.maxRoundTrips).
		Err(contractx.ErrRoundTripLimit).
		Msg("conversation did not converge, answering with fallback")
	st.Reply = FallbackReply
	return st, nil
}

// dispatch answers every tool call of one assistant turn. Independent calls
// run concurrently; results are reinserted in the original call order.
func (o *Orchestrator) dispatch(ctx context.Context, calls []schema.ToolCall) []*schema.Message {
	results := make([]*schema.Message, len(calls))
	if len(calls) == 1 {
		results[0] = o.answerCall(ctx, calls[0])
		return results
	}

	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(i int, call schema.ToolCall) {
			defer wg.Done()
			results[i] = o.answerCall(ctx, call)
		}(i, call)
	}
	wg.Wait()
	return results
}

// answerCall produces exactly one tool-role message for one tool call. Any
// failure becomes an error string in the result so the model can recover;
// nothing escapes as a Go error.
func (o *Orchestrator) answerCall(ctx context.Context, call schema.ToolCall) *schema.Message {
	name := strings.TrimSpace(call.Function.Name)

	args := map[string]any{}
	if raw := strings.TrimSpace(call.Function.Arguments); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			return schema.ToolMessage(
				fmt.Sprintf("Error: tool %q was called with arguments that are not valid JSON.", name),
				call.ID,
			)
		}
	}

	result, err := o.tools.Call(ctx, name, args)
	if err != nil {
		if errors.Is(err, contractx.ErrUnknownTool) {
			return schema.ToolMessage(
				fmt.Sprintf("Error: tool %q is not available. Use only the provided tools.", name),
				call.ID,
			)
		}
		return schema.ToolMessage("Error: the tool could not be executed.", call.ID)
	}
	return schema.ToolMessage(result, call.ID)
}
