package prompt

import (
	"strings"
	"testing"
)

func TestSystemPromptIsEmbedded(t *testing.T) {
	t.Parallel()

	sys := System()
	if sys == "" {
		t.Fatal("system prompt is empty")
	}
	if sys != strings.TrimSpace(sys) {
		t.Fatal("system prompt has leading or trailing whitespace")
	}
}

func TestSystemPromptCarriesRefusalPolicy(t *testing.T) {
	t.Parallel()

	sys := System()
	if !strings.Contains(sys, RefusalReply) {
		t.Fatal("system prompt does not contain the exact refusal reply")
	}
}

func TestSystemPromptNamesEveryTool(t *testing.T) {
	t.Parallel()

	sys := System()
	for _, name := range []string{
		"lookup_menu",
		"check_food_stock",
		"get_order_status",
		"place_order",
		"search_faqs",
		"update_food_stock",
	} {
		if !strings.Contains(sys, name) {
			t.Fatalf("system prompt does not mention tool %s", name)
		}
	}
}
