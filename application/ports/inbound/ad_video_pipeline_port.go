package inbound

import (
	"context"
	"product-shorts-pipeline/domain"
)

type RunPipelineParams struct {
	RunID       string
	ProductName string
	ImagePaths  []string
}

type RunPipelineResult struct {
	RunID         string
	VideoFileName string
	VideoKey      string
	VideoRegion   string
	Scenes        domain.SceneList
	TotalDuration float64
}

// AdVideoPipelinePort runs the whole product-ad generation pipeline: OCR text
// collection, filtering, narration, scene scripting, audio synthesis, asset
// binding, duration reconciliation, composition and publication.
type AdVideoPipelinePort interface {
	Run(ctx context.Context, params RunPipelineParams) (*RunPipelineResult, error)
}
