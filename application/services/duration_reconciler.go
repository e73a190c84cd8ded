package services

import (
	"math"

	"product-shorts-pipeline/application/ports/inbound"
	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/domain"
)

type durationReconciler struct {
	logger         outbound.LoggerPort
	pipelineConfig *config.PipelineConfig
}

func NewDurationReconciler(logger outbound.LoggerPort, pipelineConfig *config.PipelineConfig) inbound.DurationReconcilerPort {
	return &durationReconciler{
		logger:         logger,
		pipelineConfig: pipelineConfig,
	}
}

// Reconcile flags declared-vs-measured drift beyond the tolerance. The scene
// is returned unchanged; re-prompting the model mid-pipeline is not an option
// here, so drift is observability, not correction.
func (r *durationReconciler) Reconcile(scene domain.Scene) domain.Scene {
	if scene.MeasuredAudioDuration > 0 {
		drift := math.Abs(scene.MeasuredAudioDuration - scene.DeclaredDuration)
		if drift > r.pipelineConfig.DriftToleranceSeconds {
			r.logger.WarnWithFields("Scene duration drifts from the script", map[string]interface{}{
				"scene":    scene.SceneNumber,
				"declared": scene.DeclaredDuration,
				"measured": scene.MeasuredAudioDuration,
				"drift":    drift,
			})
		}
	}
	return scene
}

// ReconcileAll walks the list in scene order, accumulating the effective
// total, and warns when the total breaks the hard ceiling. The caller decides
// whether to proceed or abort on an oversized video.
func (r *durationReconciler) ReconcileAll(scenes domain.SceneList) (domain.SceneList, float64) {
	var total float64
	for i, scene := range scenes {
		scenes[i] = r.Reconcile(scene)
		total += scene.EffectiveDuration
	}

	if total > r.pipelineConfig.HardCeilingSeconds {
		r.logger.WarnWithFields("Total effective duration exceeds the hard ceiling", map[string]interface{}{
			"total_secs":   total,
			"hard_ceiling": r.pipelineConfig.HardCeilingSeconds,
		})
	} else if total < r.pipelineConfig.TargetMinSeconds || total > r.pipelineConfig.TargetMaxSeconds {
		r.logger.WarnWithFields("Total effective duration misses the target band", map[string]interface{}{
			"total_secs": total,
			"target_min": r.pipelineConfig.TargetMinSeconds,
			"target_max": r.pipelineConfig.TargetMaxSeconds,
		})
	}

	return scenes, total
}
