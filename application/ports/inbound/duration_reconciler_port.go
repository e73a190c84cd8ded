package inbound

import "product-shorts-pipeline/domain"

// DurationReconcilerPort compares declared against measured durations and
// watches the running total. Everything it finds is warning-level; scene
// content is never corrected mid-pipeline.
type DurationReconcilerPort interface {
	Reconcile(scene domain.Scene) domain.Scene
	ReconcileAll(scenes domain.SceneList) (domain.SceneList, float64)
}
