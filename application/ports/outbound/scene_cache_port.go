package outbound

import (
	"context"
	"product-shorts-pipeline/domain"
)

// SceneCachePort records reconciled per-scene metadata for a run.
type SceneCachePort interface {
	Save(ctx context.Context, scene domain.Scene, runID string) error
}
