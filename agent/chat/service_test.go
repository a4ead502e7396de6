package chat

import (
	"context"
	"errors"
	"testing"
)

type fakeHandler struct {
	reply string
	err   error
	calls int
	last  string
}

func (f *fakeHandler) HandleMessage(ctx context.Context, text string) (string, error) {
	f.calls++
	f.last = text
	return f.reply, f.err
}

func TestNewServiceRequiresHandler(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil handler")
	}
}

func TestProcessMessagePassesReplyThrough(t *testing.T) {
	t.Parallel()

	handler := &fakeHandler{reply: "We close at 11pm."}
	s, err := NewService(handler)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got := s.ProcessMessage(context.Background(), "what time do you close?")
	if got != "We close at 11pm." {
		t.Fatalf("unexpected reply: %q", got)
	}
	if handler.calls != 1 || handler.last != "what time do you close?" {
		t.Fatalf("handler called %d times with %q", handler.calls, handler.last)
	}
}

func TestProcessMessageHidesHandlerErrors(t *testing.T) {
	t.Parallel()

	handler := &fakeHandler{err: errors.New("model invoke failed: upstream 500")}
	s, err := NewService(handler)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got := s.ProcessMessage(context.Background(), "hello")
	if got != ApologyReply {
		t.Fatalf("expected apology, got %q", got)
	}
}

func TestProcessMessageRejectsBlankReply(t *testing.T) {
	t.Parallel()

	handler := &fakeHandler{reply: "   "}
	s, err := NewService(handler)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	got := s.ProcessMessage(context.Background(), "hello")
	if got != ApologyReply {
		t.Fatalf("expected apology for blank reply, got %q", got)
	}
}
