package adapters

import (
	"os"
	"path/filepath"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
)

type fsAudioClipStore struct {
	logger outbound.LoggerPort
	dir    string
}

func NewFSAudioClipStore(logger outbound.LoggerPort, outputConfig *config.OutputConfig) outbound.AudioClipStorePort {
	return &fsAudioClipStore{
		logger: logger,
		dir:    outputConfig.AudioClipsDir(),
	}
}

func (s *fsAudioClipStore) Save(fileName string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	s.logger.DebugWithFields("Audio clip written", map[string]interface{}{
		"path": path,
	})
	return path, nil
}
