package outbound

import "context"

// TextGeneratorPort is the single-shot text-generation model behind narration
// and scene-script generation. One call, one response, no retry policy here.
type TextGeneratorPort interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
