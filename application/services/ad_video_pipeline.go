package services

import (
	"context"
	"fmt"

	"product-shorts-pipeline/application/ports/inbound"
	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/domain"
)

type adVideoPipeline struct {
	logger             outbound.LoggerPort
	workspace          outbound.WorkspacePort
	ocrExtractor       outbound.OCRExtractorPort
	textFilter         inbound.TextFilterPort
	narrationGenerator inbound.NarrationGeneratorPort
	sceneScript        inbound.SceneScriptGeneratorPort
	audioSynthesizer   inbound.SceneAudioSynthesizerPort
	assetBinder        inbound.SceneAssetBinderPort
	reconciler         inbound.DurationReconcilerPort
	composer           outbound.VideoComposerPort
	publisher          outbound.VideoPublisherPort
	sceneCache         outbound.SceneCachePort
}

func NewAdVideoPipeline(
	logger outbound.LoggerPort,
	workspace outbound.WorkspacePort,
	ocrExtractor outbound.OCRExtractorPort,
	textFilter inbound.TextFilterPort,
	narrationGenerator inbound.NarrationGeneratorPort,
	sceneScript inbound.SceneScriptGeneratorPort,
	audioSynthesizer inbound.SceneAudioSynthesizerPort,
	assetBinder inbound.SceneAssetBinderPort,
	reconciler inbound.DurationReconcilerPort,
	composer outbound.VideoComposerPort,
	publisher outbound.VideoPublisherPort,
	sceneCache outbound.SceneCachePort) inbound.AdVideoPipelinePort {
	return &adVideoPipeline{
		logger:             logger,
		workspace:          workspace,
		ocrExtractor:       ocrExtractor,
		textFilter:         textFilter,
		narrationGenerator: narrationGenerator,
		sceneScript:        sceneScript,
		audioSynthesizer:   audioSynthesizer,
		assetBinder:        assetBinder,
		reconciler:         reconciler,
		composer:           composer,
		publisher:          publisher,
		sceneCache:         sceneCache,
	}
}

// Run drives a full product run. Stage failures that invalidate the run
// (no narration, no parseable scene script) halt it with a stage-naming
// error; everything already persisted stays in place for diagnostics.
// Per-scene problems are resolved with fallbacks inside the stages.
func (p *adVideoPipeline) Run(ctx context.Context, params inbound.RunPipelineParams) (*inbound.RunPipelineResult, error) {
	pool := domain.NewAssetPool(params.ImagePaths)
	p.logger.InfoWithFields("Pipeline run started", map[string]interface{}{
		"run_id":  params.RunID,
		"product": params.ProductName,
		"images":  pool.Len(),
	})

	if err := p.workspace.Initialize(); err != nil {
		return nil, fmt.Errorf("workspace initialization: %w", err)
	}

	fragments := p.collectFragments(ctx, pool)
	filtered := p.textFilter.Filter(fragments)

	narration, err := p.narrationGenerator.Generate(ctx, params.ProductName, filtered)
	if err != nil {
		return nil, fmt.Errorf("narration stage: %w", err)
	}

	scenes, err := p.sceneScript.Generate(ctx, params.ProductName, narration)
	if err != nil {
		return nil, fmt.Errorf("scene script stage: %w", err)
	}

	scenes = p.audioSynthesizer.Synthesize(ctx, scenes, params.ProductName)
	scenes = p.assetBinder.BindAll(ctx, scenes, pool)
	scenes, total := p.reconciler.ReconcileAll(scenes)

	p.cacheScenes(ctx, scenes, params.RunID)

	videoFileName, err := p.composer.Compose(scenes, params.ProductName)
	if err != nil {
		return nil, fmt.Errorf("composition stage: %w", err)
	}

	published, err := p.publisher.Publish(ctx, outbound.PublishVideoRequest{
		VideoFileName: videoFileName,
		ProductName:   params.ProductName,
		RunID:         params.RunID,
	})
	if err != nil {
		return nil, fmt.Errorf("publication stage: %w", err)
	}

	p.logger.InfoWithFields("Pipeline run finished", map[string]interface{}{
		"run_id":     params.RunID,
		"video":      videoFileName,
		"total_secs": total,
	})

	return &inbound.RunPipelineResult{
		RunID:         params.RunID,
		VideoFileName: videoFileName,
		VideoKey:      published.VideoKey,
		VideoRegion:   published.StoreRegion,
		Scenes:        scenes,
		TotalDuration: total,
	}, nil
}

// collectFragments gathers OCR labels across the pool. A failing image
// contributes nothing; OCR quality problems never stop the run this early.
func (p *adVideoPipeline) collectFragments(ctx context.Context, pool *domain.AssetPool) []string {
	var fragments []string
	for _, path := range pool.Paths() {
		labels, err := p.ocrExtractor.ExtractLabels(ctx, path)
		if err != nil {
			p.logger.WarnWithFields("OCR extraction failed for image", map[string]interface{}{
				"path": path,
			})
			continue
		}
		fragments = append(fragments, labels...)
	}
	return fragments
}

func (p *adVideoPipeline) cacheScenes(ctx context.Context, scenes domain.SceneList, runID string) {
	for _, scene := range scenes {
		if err := p.sceneCache.Save(ctx, scene, runID); err != nil {
			p.logger.ErrorWithFields(err, "Failed to cache scene metadata", map[string]interface{}{
				"run_id": runID,
				"scene":  scene.SceneNumber,
			})
		}
	}
}
