package services

import (
	"context"
	"fmt"
	"strings"

	"product-shorts-pipeline/application/ports/inbound"
	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/domain"
)

type narrationGenerator struct {
	logger         outbound.LoggerPort
	textGenerator  outbound.TextGeneratorPort
	artifactStore  outbound.ArtifactStorePort
	pipelineConfig *config.PipelineConfig
}

func NewNarrationGenerator(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort,
	artifactStore outbound.ArtifactStorePort, pipelineConfig *config.PipelineConfig) inbound.NarrationGeneratorPort {
	return &narrationGenerator{
		logger:         logger,
		textGenerator:  textGenerator,
		artifactStore:  artifactStore,
		pipelineConfig: pipelineConfig,
	}
}

func (g *narrationGenerator) Generate(ctx context.Context, productName string, fragments []string) (string, error) {
	if len(fragments) == 0 {
		g.logger.Warn("No OCR fragments available, skipping narration generation")
		return "", domain.ErrNoFragments
	}

	prompt := g.buildPrompt(productName, fragments)

	response, err := g.textGenerator.GenerateText(ctx, prompt)
	if err != nil {
		g.logger.ErrorWithFields(err, "Narration generation call failed", map[string]interface{}{
			"product": productName,
		})
		return "", fmt.Errorf("%w: %v", domain.ErrNarrationUnavailable, err)
	}

	narration := strings.TrimSpace(response)
	if narration == "" {
		return "", domain.ErrNarrationUnavailable
	}

	if path, err := g.artifactStore.SaveNarration(productName, narration); err != nil {
		g.logger.Error(err, "Failed to persist narration artifact")
	} else {
		g.logger.InfoWithFields("Narration persisted", map[string]interface{}{
			"path": path,
		})
	}

	return narration, nil
}

func (g *narrationGenerator) buildPrompt(productName string, fragments []string) string {
	excerpt := truncateRunes(strings.Join(fragments, "\n"), g.pipelineConfig.PromptExcerptLimit)

	return fmt.Sprintf(`You are a creative copywriter for short-form vertical product videos.
The following text was extracted from the detail-page images of the product '%s'.
Write the full narration script for a shorts video that makes viewers curious and
eager to buy, based on this text.
The finished video must run between %.0f and %.0f seconds; size the narration accordingly.

Requirements:
- Use a friendly, natural tone, like a real user recommending the product, not an ad.
- Emphasize the product's core strengths (taste, usage, special ingredients) clearly and concisely.
- Leave out shipping, returns, contact and payment details; focus on the product itself.
- Build a flow that makes viewers want to see what comes next.
- If parts of the extracted text are unclear, drop them or replace them with a general positive phrase.
- Reply with the narration text only, no titles or explanations.

Extracted text (partially filtered):
---
%s
---
Full narration script (%.0f-%.0f second target):`,
		productName,
		g.pipelineConfig.TargetMinSeconds, g.pipelineConfig.TargetMaxSeconds,
		excerpt,
		g.pipelineConfig.TargetMinSeconds, g.pipelineConfig.TargetMaxSeconds)
}

// truncateRunes bounds the prompt excerpt without splitting a multi-byte
// character; most fragments are Korean.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
