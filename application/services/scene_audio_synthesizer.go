package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"product-shorts-pipeline/application/ports/inbound"
	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/domain"
)

type sceneAudioSynthesizer struct {
	logger      outbound.LoggerPort
	synthesizer outbound.SpeechSynthesizerPort
	prober      outbound.AudioProberPort
	clipStore   outbound.AudioClipStorePort
	workerPool  outbound.TaskDispatcher
}

func NewSceneAudioSynthesizer(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort,
	prober outbound.AudioProberPort, clipStore outbound.AudioClipStorePort,
	workerPool outbound.TaskDispatcher) inbound.SceneAudioSynthesizerPort {
	return &sceneAudioSynthesizer{
		logger:      logger,
		synthesizer: synthesizer,
		prober:      prober,
		clipStore:   clipStore,
		workerPool:  workerPool,
	}
}

// Synthesize voices every scene in parallel. Each scene writes only its own
// fields and the clip name is derived from the scene number, so completion
// order does not matter. Failures downgrade the scene to its declared
// duration instead of failing the run.
func (s *sceneAudioSynthesizer) Synthesize(ctx context.Context, scenes domain.SceneList, productName string) domain.SceneList {
	out := make(domain.SceneList, len(scenes))
	copy(out, scenes)

	var wg sync.WaitGroup
	for i := range out {
		idx := i
		wg.Add(1)
		err := s.workerPool.Submit(func() {
			defer wg.Done()
			out[idx] = s.synthesizeScene(ctx, out[idx], productName)
		})
		if err != nil {
			wg.Done()
			s.logger.Error(err, "Failed to submit synthesis task to worker pool")
		}
	}
	wg.Wait()

	var total float64
	for _, scene := range out {
		total += scene.MeasuredAudioDuration
	}
	s.logger.InfoWithFields("Audio synthesis finished", map[string]interface{}{
		"scenes":              len(out),
		"measured_total_secs": total,
	})

	return out
}

func (s *sceneAudioSynthesizer) synthesizeScene(ctx context.Context, scene domain.Scene, productName string) domain.Scene {
	if scene.Narration == "" {
		s.logger.WarnWithFields("Scene has no narration, skipping synthesis", map[string]interface{}{
			"scene": scene.SceneNumber,
		})
		return scene
	}

	content, err := s.synthesizer.Synthesize(ctx, scene.Narration)
	if err != nil {
		s.logger.ErrorWithFields(err, "Speech synthesis failed, scene keeps declared duration", map[string]interface{}{
			"scene": scene.SceneNumber,
		})
		return scene
	}

	fileName := clipFileName(productName, scene.SceneNumber)
	path, err := s.clipStore.Save(fileName, content)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to save audio clip, scene keeps declared duration", map[string]interface{}{
			"scene": scene.SceneNumber,
			"file":  fileName,
		})
		return scene
	}
	scene.AudioFilePath = path

	duration, err := s.prober.Duration(path)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to measure audio duration", map[string]interface{}{
			"scene": scene.SceneNumber,
			"file":  path,
		})
		return scene
	}
	scene.MeasuredAudioDuration = duration

	return scene
}

func clipFileName(productName string, sceneNumber int) string {
	return fmt.Sprintf("%s_scene_%02d.mp3", sanitizeProductName(productName), sceneNumber)
}

// sanitizeProductName keeps clip names filesystem-safe: the first 20 runes of
// the product name with everything non-alphanumeric replaced by underscores.
func sanitizeProductName(productName string) string {
	runes := []rune(productName)
	if len(runes) > 20 {
		runes = runes[:20]
	}
	var builder strings.Builder
	for _, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteRune('_')
		}
	}
	return builder.String()
}
