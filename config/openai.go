package config

import (
	"fmt"
	"os"
)

type OpenAIConfig struct {
	ApiKey      string
	TextModel   string
	VisionModel string
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	textModel := os.Getenv("OPENAI_TEXT_MODEL")
	if textModel == "" {
		return nil, fmt.Errorf("OPENAI_TEXT_MODEL must be set")
	}
	visionModel := os.Getenv("OPENAI_VISION_MODEL")
	if visionModel == "" {
		return nil, fmt.Errorf("OPENAI_VISION_MODEL must be set")
	}

	return &OpenAIConfig{
		ApiKey:      apiKey,
		TextModel:   textModel,
		VisionModel: visionModel,
	}, nil
}
