package tool

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Argument values arrive as decoded JSON from model output; shapes are not
// guaranteed, so readers coerce instead of asserting.

func textArg(args map[string]any, key string) string {
	v, ok := args[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func floatArg(args map[string]any, key string) (float64, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func intArg(args map[string]any, key string) (int, bool) {
	f, ok := floatArg(args, key)
	if !ok {
		return 0, false
	}
	return int(f), true
}
