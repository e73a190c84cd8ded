package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
)

type ttsSynthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string  `json:"audioEncoding"`
		SpeakingRate  float64 `json:"speakingRate"`
	} `json:"audioConfig"`
}

type ttsSynthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

type googleTTSSynthesizer struct {
	ContentFetcher
	logger    outbound.LoggerPort
	ttsConfig *config.TTSConfig
}

func NewGoogleTTSSynthesizer(contentFetcher ContentFetcher, ttsConfig *config.TTSConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &googleTTSSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		ttsConfig:      ttsConfig,
	}
}

func (g *googleTTSSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req, err := g.getRequest(ctx, text)
	if err != nil {
		g.logger.Error(err, "Failed to construct the speech synthesis request")
		return nil, err
	}

	rawRes, err := g.FetchContent(req)
	if err != nil {
		return nil, err
	}

	var ttsRes ttsSynthesizeResponse
	if err := json.Unmarshal(rawRes, &ttsRes); err != nil {
		g.logger.Error(err, "Failed to unmarshal the speech synthesis response")
		return nil, err
	}

	audio, err := base64.StdEncoding.DecodeString(ttsRes.AudioContent)
	if err != nil {
		g.logger.Error(err, "Failed to decode the synthesized audio")
		return nil, err
	}

	return audio, nil
}

func (g *googleTTSSynthesizer) getRequest(ctx context.Context, text string) (*http.Request, error) {
	var reqBody ttsSynthesizeRequest
	reqBody.Input.Text = text
	reqBody.Voice.LanguageCode = g.ttsConfig.LanguageCode
	reqBody.Voice.Name = g.ttsConfig.VoiceName
	reqBody.AudioConfig.AudioEncoding = "MP3"
	reqBody.AudioConfig.SpeakingRate = g.ttsConfig.SpeakingRate

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?key=%s", g.ttsConfig.ApiUrl, g.ttsConfig.ApiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
