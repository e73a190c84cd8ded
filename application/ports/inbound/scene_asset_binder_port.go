package inbound

import (
	"context"
	"product-shorts-pipeline/domain"
)

// SceneAssetBinderPort resolves one image and the effective duration for each
// scene. Bind is total: every scene comes back with a resolved image path, a
// pool member or the placeholder. Bindings are independent across scenes;
// BindAll may run them in parallel without changing outcomes.
type SceneAssetBinderPort interface {
	Bind(ctx context.Context, scene domain.Scene, pool *domain.AssetPool) domain.Scene
	BindAll(ctx context.Context, scenes domain.SceneList, pool *domain.AssetPool) domain.SceneList
}
