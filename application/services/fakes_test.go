package services

import (
	"context"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/domain"
)

func testPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		TargetMinSeconds:      40,
		TargetMaxSeconds:      50,
		HardCeilingSeconds:    55,
		DriftToleranceSeconds: 1.5,
		DurationFloorSeconds:  0.5,
		PromptExcerptLimit:    2500,
		MaxMatchCandidates:    10,
		NoMatchSentinel:       "없음",
	}
}

// Hand-rolled fakes shared by the service tests.

// recordingLogger keeps warning messages so tests can assert that a condition
// is surfaced without failing the run.
type recordingLogger struct {
	noopLogger
	warnings []string
}

func (l *recordingLogger) Warn(msg string) {
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) WarnWithFields(msg string, _ map[string]interface{}) {
	l.warnings = append(l.warnings, msg)
}

type noopLogger struct{}

func (noopLogger) Info(string)                                        {}
func (noopLogger) InfoWithFields(string, map[string]interface{})      {}
func (noopLogger) Error(error, string)                                {}
func (noopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (noopLogger) Debug(string)                                       {}
func (noopLogger) DebugWithFields(string, map[string]interface{})     {}
func (noopLogger) Warn(string)                                        {}
func (noopLogger) WarnWithFields(string, map[string]interface{})      {}

type fakeWorkspace struct {
	initialized int
	err         error
}

func (f *fakeWorkspace) Initialize() error {
	f.initialized++
	return f.err
}

// syncDispatcher runs tasks inline, keeping tests deterministic.
type syncDispatcher struct{}

func (syncDispatcher) Submit(task func()) error {
	task()
	return nil
}

type fakeTextGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeTextGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeArtifactStore struct {
	narrations   map[string]string
	sceneScripts map[string]domain.SceneList
	err          error
}

func newFakeArtifactStore() *fakeArtifactStore {
	return &fakeArtifactStore{
		narrations:   make(map[string]string),
		sceneScripts: make(map[string]domain.SceneList),
	}
}

func (f *fakeArtifactStore) SaveNarration(productName string, narration string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.narrations[productName] = narration
	return productName + "_initial_narration.txt", nil
}

func (f *fakeArtifactStore) SaveSceneScript(productName string, scenes domain.SceneList) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sceneScripts[productName] = scenes
	return productName + "_scene_script.json", nil
}

type fakeMatcher struct {
	reply    string
	err      error
	requests []outbound.MatchImageRequest
}

func (f *fakeMatcher) Match(_ context.Context, req outbound.MatchImageRequest) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakePlaceholder struct {
	path string
}

func (f fakePlaceholder) Ensure() (string, error) {
	return f.path, nil
}

type fakeSynthesizer struct {
	content []byte
	err     error
}

func (f fakeSynthesizer) Synthesize(context.Context, string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.content, nil
}

type fakeProber struct {
	duration float64
	err      error
}

func (f fakeProber) Duration(string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.duration, nil
}

type fakeClipStore struct {
	saved map[string][]byte
}

func newFakeClipStore() *fakeClipStore {
	return &fakeClipStore{saved: make(map[string][]byte)}
}

func (f *fakeClipStore) Save(fileName string, content []byte) (string, error) {
	f.saved[fileName] = content
	return "/tmp/audio/" + fileName, nil
}
