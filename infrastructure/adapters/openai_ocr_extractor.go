package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/json_utils"
)

const ocrPrompt = `The image below is a product detail page or poster.
Return every piece of text it contains as JSON, each entry with its 2D box
coordinates, in exactly this shape:

[
  {"box_2d": [x1, y1, x2, y2], "label": "text content"},
  ...
]

Do not describe, comment on or reason about the image. Output only the JSON
array of recognized text and coordinates.`

type ocrEntry struct {
	Box2D []int  `json:"box_2d"`
	Label string `json:"label"`
}

type openAIOCRExtractor struct {
	logger outbound.LoggerPort
	client openai.Client
	model  string
}

func NewOpenAIOCRExtractor(logger outbound.LoggerPort, openAIConfig *config.OpenAIConfig) outbound.OCRExtractorPort {
	return &openAIOCRExtractor{
		logger: logger,
		client: openai.NewClient(option.WithAPIKey(openAIConfig.ApiKey)),
		model:  openAIConfig.VisionModel,
	}
}

func (e *openAIOCRExtractor) ExtractLabels(ctx context.Context, imagePath string) ([]string, error) {
	content, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, err
	}

	completion, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(ocrPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageDataURL(filepath.Base(imagePath), content),
				}),
			}),
		},
		Model: e.model,
	})
	if err != nil {
		e.logger.ErrorWithFields(err, "OCR request failed", map[string]interface{}{
			"image": imagePath,
		})
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("OCR returned no choices")
	}

	return e.parseLabels(completion.Choices[0].Message.Content, imagePath)
}

func (e *openAIOCRExtractor) parseLabels(response string, imagePath string) ([]string, error) {
	payload, ok := json_utils.ExtractJSONArray(response)
	if !ok {
		e.logger.WarnWithFields("OCR response is not a JSON array", map[string]interface{}{
			"image": imagePath,
		})
		return nil, fmt.Errorf("OCR response is not a JSON array")
	}

	var entries []ocrEntry
	if err := json.Unmarshal([]byte(payload), &entries); err != nil {
		e.logger.ErrorWithFields(err, "Failed to unmarshal OCR JSON", map[string]interface{}{
			"image": imagePath,
		})
		return nil, err
	}

	labels := make([]string, 0, len(entries))
	for _, entry := range entries {
		label := strings.TrimSpace(entry.Label)
		if label != "" {
			labels = append(labels, label)
		}
	}
	e.logger.DebugWithFields("OCR labels extracted", map[string]interface{}{
		"image":  filepath.Base(imagePath),
		"labels": len(labels),
	})

	return labels, nil
}
