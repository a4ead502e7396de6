package tool

import (
	"context"
	"fmt"
	"strings"

	storex "github.com/nileshdh/restaurant-agent/agent/store"
)

func (r *Registry) searchFAQs(ctx context.Context, args map[string]any) string {
	records, err := r.store.Records(ctx, storex.CollectionFAQs)
	if err != nil {
		return "Unable to fetch FAQs right now. Please try again later."
	}

	// Category and query filters compose with logical AND.
	if category := textArg(args, "category"); category != "" {
		filtered := records[:0:0]
		for _, rec := range records {
			if strings.EqualFold(rec.Text(storex.FieldCategory, ""), category) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if query := textArg(args, "query"); query != "" {
		needle := strings.ToLower(query)
		filtered := records[:0:0]
		for _, rec := range records {
			question := strings.ToLower(rec.Text(storex.FieldQuestion, ""))
			answer := strings.ToLower(rec.Text(storex.FieldAnswer, ""))
			if strings.Contains(question, needle) || strings.Contains(answer, needle) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	if len(records) == 0 {
		return "No FAQs found matching your query."
	}

	var b strings.Builder
	b.WriteString("**Frequently Asked Questions:**\n\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "**Q: %s**\n", rec.Text(storex.FieldQuestion, "N/A"))
		fmt.Fprintf(&b, "A: %s\n", rec.Text(storex.FieldAnswer, "N/A"))
		fmt.Fprintf(&b, "_(Category: %s)_\n\n", rec.Text(storex.FieldCategory, "N/A"))
	}
	return b.String()
}
