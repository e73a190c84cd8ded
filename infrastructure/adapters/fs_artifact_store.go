package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/domain"
)

type fsArtifactStore struct {
	logger outbound.LoggerPort
	dir    string
}

func NewFSArtifactStore(logger outbound.LoggerPort, outputConfig *config.OutputConfig) outbound.ArtifactStorePort {
	return &fsArtifactStore{
		logger: logger,
		dir:    outputConfig.ExtractedTextsDir(),
	}
}

func (s *fsArtifactStore) SaveNarration(productName string, narration string) (string, error) {
	fileName := fmt.Sprintf("%s_initial_narration.txt", artifactKey(productName))
	return s.write(fileName, []byte(narration))
}

// SaveSceneScript pretty-prints the scene list with HTML escaping disabled so
// Korean text stays literal in the artifact.
func (s *fsArtifactStore) SaveSceneScript(productName string, scenes domain.SceneList) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(scenes); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s_scene_script.json", artifactKey(productName))
	return s.write(fileName, buf.Bytes())
}

func (s *fsArtifactStore) write(fileName string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func artifactKey(productName string) string {
	return strings.ReplaceAll(productName, " ", "_")
}
