package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"product-shorts-pipeline/application/ports/inbound"
	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/domain"
	"product-shorts-pipeline/json_utils"
)

// sceneWire mirrors the JSON array the model is asked to produce. Only the
// script-authored fields appear here; media bindings are added later.
type sceneWire struct {
	SceneNumber      int     `json:"scene_number" jsonschema_description:"1-based presentation order of the scene"`
	ImageDescription string  `json:"recommended_image_description" jsonschema_description:"Short visual description of the image that should back this scene"`
	Narration        string  `json:"narration" jsonschema_description:"The slice of the full narration spoken during this scene"`
	Subtitle         string  `json:"subtitle" jsonschema_description:"Short on-screen caption, may be empty"`
	DeclaredDuration float64 `json:"duration_seconds" jsonschema_description:"Estimated scene length in seconds"`
}

type sceneScriptGenerator struct {
	logger         outbound.LoggerPort
	textGenerator  outbound.TextGeneratorPort
	artifactStore  outbound.ArtifactStorePort
	pipelineConfig *config.PipelineConfig
	sceneSchema    string
}

func NewSceneScriptGenerator(logger outbound.LoggerPort, textGenerator outbound.TextGeneratorPort,
	artifactStore outbound.ArtifactStorePort, pipelineConfig *config.PipelineConfig) inbound.SceneScriptGeneratorPort {
	return &sceneScriptGenerator{
		logger:         logger,
		textGenerator:  textGenerator,
		artifactStore:  artifactStore,
		pipelineConfig: pipelineConfig,
		sceneSchema:    generateSceneSchema(),
	}
}

func (g *sceneScriptGenerator) Generate(ctx context.Context, productName string, narration string) (domain.SceneList, error) {
	if narration == "" {
		g.logger.Warn("No narration available, skipping scene script generation")
		return nil, domain.ErrNarrationUnavailable
	}

	response, err := g.textGenerator.GenerateText(ctx, g.buildPrompt(productName, narration))
	if err != nil {
		g.logger.ErrorWithFields(err, "Scene script generation call failed", map[string]interface{}{
			"product": productName,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrSceneScriptInvalid, err)
	}

	scenes, err := g.parseScenes(response)
	if err != nil {
		return nil, err
	}

	g.validateDurationBand(scenes)

	if path, err := g.artifactStore.SaveSceneScript(productName, scenes); err != nil {
		g.logger.Error(err, "Failed to persist scene script artifact")
	} else {
		g.logger.InfoWithFields("Scene script persisted", map[string]interface{}{
			"path":   path,
			"scenes": len(scenes),
		})
	}

	return scenes, nil
}

// parseScenes applies the two-step policy: extract the JSON array (fenced
// block, else the whole trimmed body), then unmarshal against the scene wire
// shape. Anything that fails either step is rejected, never patched up.
func (g *sceneScriptGenerator) parseScenes(response string) (domain.SceneList, error) {
	payload, ok := json_utils.ExtractJSONArray(response)
	if !ok {
		g.logger.WarnWithFields("Scene script response is not a JSON array", map[string]interface{}{
			"head": truncateRunes(response, 200),
		})
		return nil, domain.ErrSceneScriptInvalid
	}

	var wires []sceneWire
	if err := json.Unmarshal([]byte(payload), &wires); err != nil {
		g.logger.Error(err, "Failed to unmarshal scene script JSON")
		return nil, fmt.Errorf("%w: %v", domain.ErrSceneScriptInvalid, err)
	}
	if len(wires) == 0 {
		return nil, domain.ErrSceneScriptInvalid
	}

	scenes := make(domain.SceneList, 0, len(wires))
	for _, wire := range wires {
		scenes = append(scenes, domain.Scene{
			SceneNumber:      wire.SceneNumber,
			ImageDescription: wire.ImageDescription,
			Narration:        wire.Narration,
			Subtitle:         wire.Subtitle,
			DeclaredDuration: wire.DeclaredDuration,
		})
	}
	scenes.Renumber()

	return scenes, nil
}

// validateDurationBand checks the declared total against the configured band.
// Model output is authoritative even when it misses the band; correction, if
// any, belongs to the duration reconciler.
func (g *sceneScriptGenerator) validateDurationBand(scenes domain.SceneList) {
	total := scenes.DeclaredTotal()
	if total < g.pipelineConfig.TargetMinSeconds || total > g.pipelineConfig.HardCeilingSeconds {
		g.logger.WarnWithFields("Declared scene durations miss the target band", map[string]interface{}{
			"declared_total": total,
			"target_min":     g.pipelineConfig.TargetMinSeconds,
			"target_max":     g.pipelineConfig.TargetMaxSeconds,
			"hard_ceiling":   g.pipelineConfig.HardCeilingSeconds,
		})
	}
}

func (g *sceneScriptGenerator) buildPrompt(productName string, narration string) string {
	return fmt.Sprintf(`You are a shorts video editor.
Below is the full narration script written for a shorts video about the product '%s'.
Split the narration naturally into scenes and reply with a JSON array where each
element carries the recommended image description, the scene's narration slice, an
on-screen subtitle and an estimated duration in seconds.
The sum of all duration_seconds values must land between %.0f and %.0f seconds.

Full narration script:
---
%s
---

Requirements:
- The narration field of each scene distributes the full script in order; keep its flow.
- recommended_image_description is a short, concrete description of a visual that suits the scene.
- subtitle is a short catchy caption for the screen.
- Choose duration_seconds per scene so the total stays inside the band.
- Reply with nothing but the JSON array.

Each array element must satisfy this schema:
%s`,
		productName,
		g.pipelineConfig.TargetMinSeconds, g.pipelineConfig.TargetMaxSeconds,
		narration,
		g.sceneSchema)
}

func generateSceneSchema() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(&sceneWire{})
	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return ""
	}
	return string(raw)
}
