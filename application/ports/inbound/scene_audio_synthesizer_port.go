package inbound

import (
	"context"
	"product-shorts-pipeline/domain"
)

// SceneAudioSynthesizerPort voices every scene's narration. A failed scene
// keeps an empty audio path and later falls back to its declared duration;
// synthesis never fails the run.
type SceneAudioSynthesizerPort interface {
	Synthesize(ctx context.Context, scenes domain.SceneList, productName string) domain.SceneList
}
