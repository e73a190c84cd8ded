package outbound

import "product-shorts-pipeline/domain"

// VideoComposerPort renders the finalized scene list into a single vertical
// video file. Scenes arrive read-only with image, audio and effective duration
// already resolved.
type VideoComposerPort interface {
	Compose(scenes domain.SceneList, productName string) (string, error)
}
