package outbound

import "product-shorts-pipeline/domain"

// ArtifactStorePort persists the audit trail of a run: the generated narration
// and the validated scene script, keyed by product name. Nothing downstream
// reads these back; they exist for diagnostics.
type ArtifactStorePort interface {
	SaveNarration(productName string, narration string) (string, error)
	SaveSceneScript(productName string, scenes domain.SceneList) (string, error)
}
