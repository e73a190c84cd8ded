package domain

import "errors"

// Errors that invalidate the whole run. Per-scene failures (asset binding,
// audio synthesis) never surface as errors; they are resolved with fallbacks.
var (
	ErrNoFragments          = errors.New("no text fragments to work with")
	ErrNarrationUnavailable = errors.New("narration generation produced no usable result")
	ErrSceneScriptInvalid   = errors.New("scene script response is not a parseable JSON array")
)
