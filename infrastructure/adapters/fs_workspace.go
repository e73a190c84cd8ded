package adapters

import (
	"os"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
)

type fsWorkspace struct {
	logger       outbound.LoggerPort
	outputConfig *config.OutputConfig
}

func NewFSWorkspace(logger outbound.LoggerPort, outputConfig *config.OutputConfig) outbound.WorkspacePort {
	return &fsWorkspace{
		logger:       logger,
		outputConfig: outputConfig,
	}
}

// Initialize clears the per-run folders and ensures the shared ones exist.
// A single active run is assumed; concurrent runs against the same output
// tree are unsupported.
func (w *fsWorkspace) Initialize() error {
	for _, dir := range []string{w.outputConfig.AudioClipsDir(), w.outputConfig.VideosDir()} {
		if err := os.RemoveAll(dir); err != nil {
			return err
		}
	}
	for _, dir := range []string{
		w.outputConfig.ImagesRawDir(),
		w.outputConfig.ExtractedTextsDir(),
		w.outputConfig.AudioClipsDir(),
		w.outputConfig.VideosDir(),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	w.logger.DebugWithFields("Output folders initialized", map[string]interface{}{
		"root": w.outputConfig.RootDir,
	})
	return nil
}
