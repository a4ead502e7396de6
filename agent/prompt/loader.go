package prompt

import (
	_ "embed"
	"strings"
)

//go:embed template/system.txt
var systemRaw string

// RefusalReply is the fixed answer for anything outside the restaurant
// domain. The system template instructs the model to use it verbatim.
const RefusalReply = "I apologize, but I'm specifically designed to help with our restaurant services only. I can assist you with our menu, orders, timings, and food-related questions. How may I help you with that?"

// System returns the persona and boundary policy seeded as the first
// message of every conversation.
func System() string {
	return strings.TrimSpace(systemRaw)
}
