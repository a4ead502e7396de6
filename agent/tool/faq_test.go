package tool

import (
	"context"
	"strings"
	"testing"

	storex "github.com/nileshdh/restaurant-agent/agent/store"
)

func faqFixtures() map[string][]storex.Record {
	return map[string][]storex.Record{
		storex.CollectionFAQs: {
			{"Question": "How do I cancel my order?", "Answer": "Call us within 10 minutes.", "Category": "Orders"},
			{"Question": "What are your timings?", "Answer": "11am to 11pm daily.", "Category": "General"},
			{"Question": "Do you deliver?", "Answer": "Yes, you can cancel delivery anytime.", "Category": "Delivery"},
		},
	}
}

func TestSearchFAQsFiltersComposeWithAND(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t, &fakeStore{collections: faqFixtures()})
	out, err := r.Call(context.Background(), ToolSearchFAQs, map[string]any{
		"category": "Orders",
		"query":    "cancel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "How do I cancel my order?") {
		t.Fatalf("expected matching FAQ, got %q", out)
	}
	// The Delivery FAQ also mentions "cancel" but fails the category filter.
	if strings.Contains(out, "Do you deliver?") {
		t.Fatalf("category filter not ANDed with query: %q", out)
	}
}

func TestSearchFAQsQueryMatchesAnswers(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t, &fakeStore{collections: faqFixtures()})
	out, err := r.Call(context.Background(), ToolSearchFAQs, map[string]any{"query": "11pm"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "What are your timings?") {
		t.Fatalf("expected answer-text match, got %q", out)
	}
}

func TestSearchFAQsNoMatches(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t, &fakeStore{collections: faqFixtures()})
	out, err := r.Call(context.Background(), ToolSearchFAQs, map[string]any{
		"category": "Orders",
		"query":    "parking",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "No FAQs found matching your query." {
		t.Fatalf("expected empty-result message, got %q", out)
	}
}
