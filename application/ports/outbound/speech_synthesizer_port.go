package outbound

import "context"

// SpeechSynthesizerPort turns narration text into encoded audio bytes.
// Language, voice and speaking rate are adapter configuration.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
