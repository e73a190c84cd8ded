package services

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"product-shorts-pipeline/application/ports/inbound"
	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/domain"
)

type sceneAssetBinder struct {
	logger         outbound.LoggerPort
	matcher        outbound.ImageMatcherPort
	placeholder    outbound.PlaceholderImagePort
	workerPool     outbound.TaskDispatcher
	pipelineConfig *config.PipelineConfig
}

func NewSceneAssetBinder(logger outbound.LoggerPort, matcher outbound.ImageMatcherPort,
	placeholder outbound.PlaceholderImagePort, workerPool outbound.TaskDispatcher,
	pipelineConfig *config.PipelineConfig) inbound.SceneAssetBinderPort {
	return &sceneAssetBinder{
		logger:         logger,
		matcher:        matcher,
		placeholder:    placeholder,
		workerPool:     workerPool,
		pipelineConfig: pipelineConfig,
	}
}

// Bind resolves the scene's image and effective duration. It is total: every
// scene comes back bound to a pool member, or to the placeholder when the
// pool is empty. Matching errors never propagate.
func (b *sceneAssetBinder) Bind(ctx context.Context, scene domain.Scene, pool *domain.AssetPool) domain.Scene {
	scene.ResolvedImagePath = b.resolveWithFallback(ctx, scene, pool)
	scene.ResolveEffectiveDuration(b.pipelineConfig.DurationFloorSeconds)
	return scene
}

// BindAll binds every scene over the worker pool. Scenes share only the
// read-only pool, so ordering cannot change outcomes.
func (b *sceneAssetBinder) BindAll(ctx context.Context, scenes domain.SceneList, pool *domain.AssetPool) domain.SceneList {
	out := make(domain.SceneList, len(scenes))
	copy(out, scenes)

	var wg sync.WaitGroup
	for i := range out {
		idx := i
		wg.Add(1)
		err := b.workerPool.Submit(func() {
			defer wg.Done()
			out[idx] = b.Bind(ctx, out[idx], pool)
		})
		if err != nil {
			wg.Done()
			b.logger.Error(err, "Failed to submit binding task to worker pool")
			out[idx] = b.Bind(ctx, out[idx], pool)
		}
	}
	wg.Wait()

	return out
}

// resolveWithFallback is the single fallback policy shared by every binding
// path: placeholder for an empty pool, first asset when there is nothing to
// match on or the matcher cannot produce a usable file name.
func (b *sceneAssetBinder) resolveWithFallback(ctx context.Context, scene domain.Scene, pool *domain.AssetPool) string {
	if pool.Empty() {
		path, err := b.placeholder.Ensure()
		if err != nil {
			b.logger.ErrorWithFields(err, "Failed to create placeholder image", map[string]interface{}{
				"scene": scene.SceneNumber,
			})
		}
		return path
	}

	if !scene.HasDescriptiveFields() {
		b.logger.WarnWithFields("Scene carries no descriptive fields, using first asset", map[string]interface{}{
			"scene": scene.SceneNumber,
		})
		return pool.First()
	}

	req := b.buildMatchRequest(scene, pool)
	if len(req.Candidates) == 0 {
		b.logger.WarnWithFields("No readable candidate images, using first asset", map[string]interface{}{
			"scene": scene.SceneNumber,
		})
		return pool.First()
	}

	reply, err := b.matcher.Match(ctx, req)
	if err != nil {
		b.logger.ErrorWithFields(err, "Image matching failed, using first asset", map[string]interface{}{
			"scene": scene.SceneNumber,
		})
		return pool.First()
	}

	if reply == b.pipelineConfig.NoMatchSentinel {
		b.logger.InfoWithFields("Matcher found no suitable image, using first asset", map[string]interface{}{
			"scene": scene.SceneNumber,
		})
		return pool.First()
	}

	path, ok := pool.FindByFileName(reply)
	if !ok {
		b.logger.WarnWithFields("Matcher named a file outside the pool, using first asset", map[string]interface{}{
			"scene": scene.SceneNumber,
			"reply": reply,
		})
		return pool.First()
	}

	return path
}

// buildMatchRequest loads up to the configured number of candidate images.
// Unreadable files are skipped rather than reported; asset problems are never
// fatal to binding.
func (b *sceneAssetBinder) buildMatchRequest(scene domain.Scene, pool *domain.AssetPool) outbound.MatchImageRequest {
	paths := pool.Candidates(b.pipelineConfig.MaxMatchCandidates)
	candidates := make([]outbound.ImageCandidate, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			b.logger.WarnWithFields("Failed to read candidate image, skipping", map[string]interface{}{
				"scene": scene.SceneNumber,
				"path":  path,
			})
			continue
		}
		candidates = append(candidates, outbound.ImageCandidate{
			FileName: filepath.Base(path),
			Content:  content,
		})
	}

	return outbound.MatchImageRequest{
		SceneNumber:      scene.SceneNumber,
		ImageDescription: scene.ImageDescription,
		Narration:        scene.Narration,
		Subtitle:         scene.Subtitle,
		Candidates:       candidates,
	}
}
