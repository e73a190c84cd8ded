package config

import (
	"fmt"
	"os"
)

const defaultTTSApiUrl = "https://texttospeech.googleapis.com/v1/text:synthesize"

type TTSConfig struct {
	ApiUrl       string
	ApiKey       string
	LanguageCode string
	VoiceName    string
	SpeakingRate float64
}

func GetTTSConfig() (*TTSConfig, error) {
	apiKey := os.Getenv("TTS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("TTS_API_KEY must be set")
	}
	speakingRate, err := envFloatOr("TTS_SPEAKING_RATE", 1.0)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTS_SPEAKING_RATE")
	}

	return &TTSConfig{
		ApiUrl:       envOr("TTS_API_URL", defaultTTSApiUrl),
		ApiKey:       apiKey,
		LanguageCode: envOr("TTS_LANGUAGE_CODE", "ko-KR"),
		VoiceName:    envOr("TTS_VOICE_NAME", "ko-KR-Neural2-B"),
		SpeakingRate: speakingRate,
	}, nil
}
