package contract

import "errors"

var (
	// ErrConfiguration marks missing credentials or settings. It is the only
	// error allowed to abort process startup.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnknownTool is returned when the model requests a tool name that is
	// not registered. The loop feeds it back as an error tool-result.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrRoundTripLimit is returned when a conversation exceeds the maximum
	// number of model round trips.
	ErrRoundTripLimit = errors.New("round trip limit exceeded")

	// ErrModelInvoke marks a failed chat model call.
	ErrModelInvoke = errors.New("model invoke failed")

	// ErrValidation marks malformed input or state.
	ErrValidation = errors.New("validation failed")
)
