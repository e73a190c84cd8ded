package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"product-shorts-pipeline/config"
	"product-shorts-pipeline/domain"
)

type testLogger struct{}

func (testLogger) Info(string)                                           {}
func (testLogger) InfoWithFields(string, map[string]interface{})         {}
func (testLogger) Error(error, string)                                   {}
func (testLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (testLogger) Debug(string)                                          {}
func (testLogger) DebugWithFields(string, map[string]interface{})        {}
func (testLogger) Warn(string)                                           {}
func (testLogger) WarnWithFields(string, map[string]interface{})         {}

func testOutputConfig(t *testing.T) *config.OutputConfig {
	t.Helper()
	return &config.OutputConfig{
		RootDir:     t.TempDir(),
		VideoWidth:  720,
		VideoHeight: 1280,
		VideoFPS:    24,
	}
}

func TestSaveNarration(t *testing.T) {
	cfg := testOutputConfig(t)
	store := NewFSArtifactStore(testLogger{}, cfg)

	path, err := store.SaveNarration("수제 쿠키", "한 입이면 멈출 수 없어요")
	if err != nil {
		t.Fatalf("SaveNarration() error = %v", err)
	}
	if filepath.Base(path) != "수제_쿠키_initial_narration.txt" {
		t.Fatalf("narration file name = %q", filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "한 입이면 멈출 수 없어요" {
		t.Fatalf("narration content = %q", content)
	}
}

func TestSaveSceneScript(t *testing.T) {
	cfg := testOutputConfig(t)
	store := NewFSArtifactStore(testLogger{}, cfg)

	scenes := domain.SceneList{
		{SceneNumber: 1, Narration: "달콤함 <그 이상>", Subtitle: "수제 쿠키", DeclaredDuration: 8},
	}
	path, err := store.SaveSceneScript("수제 쿠키", scenes)
	if err != nil {
		t.Fatalf("SaveSceneScript() error = %v", err)
	}
	if filepath.Base(path) != "수제_쿠키_scene_script.json" {
		t.Fatalf("scene script file name = %q", filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(content)
	if !strings.Contains(body, "달콤함 <그 이상>") {
		t.Error("angle brackets were escaped in the artifact")
	}
	if !strings.Contains(body, "\n  {") {
		t.Error("scene script is not pretty-printed")
	}
}

func TestArtifactKey(t *testing.T) {
	if got := artifactKey("handmade choco cookie"); got != "handmade_choco_cookie" {
		t.Fatalf("artifactKey() = %q", got)
	}
}
