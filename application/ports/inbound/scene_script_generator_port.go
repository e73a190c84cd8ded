package inbound

import (
	"context"
	"product-shorts-pipeline/domain"
)

// SceneScriptGeneratorPort splits a narration into an ordered scene list.
// Scene numbers are always 1..n in order on return. A declared-duration total
// outside the configured band is a warning, never an error.
type SceneScriptGeneratorPort interface {
	Generate(ctx context.Context, productName string, narration string) (domain.SceneList, error)
}
