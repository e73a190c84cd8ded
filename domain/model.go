package domain

import "path/filepath"

// Scene is one segment of the final video, carrying the fields produced by the
// scene-script model plus the media bindings resolved later in the pipeline.
// The json tags are the wire contract with the model and the audit artifacts.
type Scene struct {
	SceneNumber           int     `json:"scene_number"`
	ImageDescription      string  `json:"recommended_image_description"`
	Narration             string  `json:"narration"`
	Subtitle              string  `json:"subtitle"`
	DeclaredDuration      float64 `json:"duration_seconds"`
	AudioFilePath         string  `json:"audio_file_path,omitempty"`
	MeasuredAudioDuration float64 `json:"actual_audio_duration_seconds,omitempty"`
	ResolvedImagePath     string  `json:"resolved_image_path,omitempty"`
	EffectiveDuration     float64 `json:"effective_duration_seconds,omitempty"`
}

// HasDescriptiveFields reports whether the scene carries anything the image
// matcher could work with.
func (s Scene) HasDescriptiveFields() bool {
	return s.ImageDescription != "" || s.Narration != "" || s.Subtitle != ""
}

// ResolveEffectiveDuration picks the authoritative duration for the scene:
// the measured audio duration when one exists, else the declared duration,
// clamped to floor so downstream compositing never sees a non-positive length.
func (s *Scene) ResolveEffectiveDuration(floor float64) {
	duration := s.DeclaredDuration
	if s.MeasuredAudioDuration > 0 {
		duration = s.MeasuredAudioDuration
	}
	if duration < floor {
		duration = floor
	}
	s.EffectiveDuration = duration
}

type SceneList []Scene

// Renumber rewrites scene numbers sequentially from 1 in list order, whatever
// the model supplied.
func (l SceneList) Renumber() {
	for i := range l {
		l[i].SceneNumber = i + 1
	}
}

func (l SceneList) DeclaredTotal() float64 {
	var total float64
	for _, scene := range l {
		total += scene.DeclaredDuration
	}
	return total
}

func (l SceneList) EffectiveTotal() float64 {
	var total float64
	for _, scene := range l {
		total += scene.EffectiveDuration
	}
	return total
}

// AssetPool is the deduplicated, ordered set of product image paths available
// to scene binding. It is immutable once built; concurrent reads are safe.
type AssetPool struct {
	paths []string
}

func NewAssetPool(paths []string) *AssetPool {
	seen := make(map[string]struct{}, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		deduped = append(deduped, path)
	}
	return &AssetPool{paths: deduped}
}

func (p *AssetPool) Empty() bool {
	return len(p.paths) == 0
}

func (p *AssetPool) Len() int {
	return len(p.paths)
}

// First returns the first asset in pool order, the fallback used whenever
// matching cannot produce a usable answer.
func (p *AssetPool) First() string {
	if len(p.paths) == 0 {
		return ""
	}
	return p.paths[0]
}

func (p *AssetPool) Paths() []string {
	out := make([]string, len(p.paths))
	copy(out, p.paths)
	return out
}

// Candidates returns up to max assets in pool order.
func (p *AssetPool) Candidates(max int) []string {
	if max <= 0 || max >= len(p.paths) {
		return p.Paths()
	}
	out := make([]string, max)
	copy(out, p.paths[:max])
	return out
}

// FindByFileName resolves a bare file name, as returned by the matching model,
// back to a full pool path.
func (p *AssetPool) FindByFileName(name string) (string, bool) {
	for _, path := range p.paths {
		if filepath.Base(path) == name {
			return path, true
		}
	}
	return "", false
}
