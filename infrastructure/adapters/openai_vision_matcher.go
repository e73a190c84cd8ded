package adapters

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
)

type openAIVisionMatcher struct {
	logger          outbound.LoggerPort
	client          openai.Client
	model           string
	noMatchSentinel string
}

func NewOpenAIVisionMatcher(logger outbound.LoggerPort, openAIConfig *config.OpenAIConfig,
	pipelineConfig *config.PipelineConfig) outbound.ImageMatcherPort {
	return &openAIVisionMatcher{
		logger:          logger,
		client:          openai.NewClient(option.WithAPIKey(openAIConfig.ApiKey)),
		model:           openAIConfig.VisionModel,
		noMatchSentinel: pipelineConfig.NoMatchSentinel,
	}
}

// Match sends the scene's descriptive fields plus the candidate images and
// expects exactly one file name back, or the sentinel. Low temperature keeps
// the answer deterministic enough to match against the pool.
func (m *openAIVisionMatcher) Match(ctx context.Context, req outbound.MatchImageRequest) (string, error) {
	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(m.buildInstruction(req)),
	}
	for i, candidate := range req.Candidates {
		parts = append(parts,
			openai.TextContentPart(fmt.Sprintf("Image %d file name: %s", i+1, candidate.FileName)),
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
				URL: imageDataURL(candidate.FileName, candidate.Content),
			}),
		)
	}
	parts = append(parts, openai.TextContentPart("--- End of available images ---\n\nFile name of the best-matching image (follow the instructions above):"))

	completion, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(parts),
		},
		Model:       m.model,
		Temperature: openai.Float(0.2),
	})
	if err != nil {
		m.logger.ErrorWithFields(err, "Image matching request failed", map[string]interface{}{
			"scene": req.SceneNumber,
		})
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("image matching returned no choices")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (m *openAIVisionMatcher) buildInstruction(req outbound.MatchImageRequest) string {
	return fmt.Sprintf(`Pick the image to use for one scene (scene %d) of a short product video.
Scene details:
- Recommended image description: %q
- Scene narration: %q
- Scene subtitle: %q

Several images follow, each preceded by its file name. Look at their content and
reply with the exact file name of the single image that fits the scene best.

Rules:
1. Avoid images dominated by dense text, complex tables or spec sheets.
2. Prefer shots of the product itself, usage examples and appetizing or visually striking images.
3. Never pick shipping, returns, contact, customer-service or payment-screen images.
4. Relevance to the scene beats everything else.

Reply with the file name only, no other words. If no image fits the rules,
reply exactly %q.

--- Available images ---`,
		req.SceneNumber, req.ImageDescription, req.Narration, req.Subtitle, m.noMatchSentinel)
}

func imageDataURL(fileName string, content []byte) string {
	mime := "image/jpeg"
	switch {
	case strings.HasSuffix(strings.ToLower(fileName), ".png"):
		mime = "image/png"
	case strings.HasSuffix(strings.ToLower(fileName), ".webp"):
		mime = "image/webp"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(content))
}
