package adapters

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
)

type openAITextGenerator struct {
	logger outbound.LoggerPort
	client openai.Client
	model  string
}

func NewOpenAITextGenerator(logger outbound.LoggerPort, openAIConfig *config.OpenAIConfig) outbound.TextGeneratorPort {
	return &openAITextGenerator{
		logger: logger,
		client: openai.NewClient(option.WithAPIKey(openAIConfig.ApiKey)),
		model:  openAIConfig.TextModel,
	}
}

func (g *openAITextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model: g.model,
	})
	if err != nil {
		g.logger.Error(err, "Text generation request failed")
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("text generation returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
