package services

import (
	"context"
	"errors"
	"testing"

	"product-shorts-pipeline/domain"
)

func TestGenerateSceneScriptFromFencedResponse(t *testing.T) {
	textGen := &fakeTextGenerator{response: "Here is the scene script:\n```json\n[{\"scene_number\": 3, \"recommended_image_description\": \"쿠키 클로즈업\", \"narration\": \"한 입 베어물면\", \"subtitle\": \"수제 쿠키\", \"duration_seconds\": 8.5}]\n```"}
	store := newFakeArtifactStore()
	generator := NewSceneScriptGenerator(noopLogger{}, textGen, store, testPipelineConfig())

	scenes, err := generator.Generate(context.Background(), "수제 쿠키", "한 입 베어물면 멈출 수 없는 수제 쿠키")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(scenes) != 1 {
		t.Fatalf("expected one scene, got %d", len(scenes))
	}

	scene := scenes[0]
	if scene.SceneNumber != 1 {
		t.Errorf("SceneNumber = %d, want renumbered to 1", scene.SceneNumber)
	}
	if scene.ImageDescription != "쿠키 클로즈업" {
		t.Errorf("ImageDescription = %q", scene.ImageDescription)
	}
	if scene.DeclaredDuration != 8.5 {
		t.Errorf("DeclaredDuration = %v", scene.DeclaredDuration)
	}

	if _, ok := store.sceneScripts["수제 쿠키"]; !ok {
		t.Error("scene script artifact was not persisted")
	}
}

func TestGenerateSceneScriptRenumbersSequentially(t *testing.T) {
	textGen := &fakeTextGenerator{response: `[
		{"scene_number": 0, "narration": "a", "duration_seconds": 14},
		{"scene_number": 7, "narration": "b", "duration_seconds": 15},
		{"scene_number": 7, "narration": "c", "duration_seconds": 16}
	]`}
	generator := NewSceneScriptGenerator(noopLogger{}, textGen, newFakeArtifactStore(), testPipelineConfig())

	scenes, err := generator.Generate(context.Background(), "product", "narration")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for i, scene := range scenes {
		if scene.SceneNumber != i+1 {
			t.Fatalf("scene %d has number %d, want %d", i, scene.SceneNumber, i+1)
		}
	}
}

func TestGenerateSceneScriptNoNarration(t *testing.T) {
	textGen := &fakeTextGenerator{response: "unused"}
	generator := NewSceneScriptGenerator(noopLogger{}, textGen, newFakeArtifactStore(), testPipelineConfig())

	_, err := generator.Generate(context.Background(), "product", "")
	if !errors.Is(err, domain.ErrNarrationUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrNarrationUnavailable", err)
	}
	if len(textGen.prompts) != 0 {
		t.Fatal("model must not be called without a narration")
	}
}

func TestGenerateSceneScriptRejectsMalformedResponse(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"prose", "I could not produce a script."},
		{"object not array", `{"scene_number": 1}`},
		{"broken json", `[{"scene_number": 1,]`},
		{"empty array", `[]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			textGen := &fakeTextGenerator{response: tc.response}
			generator := NewSceneScriptGenerator(noopLogger{}, textGen, newFakeArtifactStore(), testPipelineConfig())

			_, err := generator.Generate(context.Background(), "product", "narration")
			if !errors.Is(err, domain.ErrSceneScriptInvalid) {
				t.Fatalf("Generate() error = %v, want ErrSceneScriptInvalid", err)
			}
		})
	}
}

func TestGenerateSceneScriptShortTotalIsWarningOnly(t *testing.T) {
	textGen := &fakeTextGenerator{response: `[
		{"scene_number": 1, "narration": "a", "duration_seconds": 10},
		{"scene_number": 2, "narration": "b", "duration_seconds": 15},
		{"scene_number": 3, "narration": "c", "duration_seconds": 12}
	]`}
	logger := &recordingLogger{}
	generator := NewSceneScriptGenerator(logger, textGen, newFakeArtifactStore(), testPipelineConfig())

	scenes, err := generator.Generate(context.Background(), "product", "narration")
	if err != nil {
		t.Fatalf("Generate() error = %v, want band misses tolerated", err)
	}
	if len(scenes) != 3 {
		t.Fatalf("expected all 3 scenes, got %d", len(scenes))
	}
	if total := scenes.DeclaredTotal(); total != 37 {
		t.Fatalf("DeclaredTotal() = %v, want 37", total)
	}
	if len(logger.warnings) == 0 {
		t.Fatal("expected a warning for a declared total outside the band")
	}
}
