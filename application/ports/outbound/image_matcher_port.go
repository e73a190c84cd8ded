package outbound

import "context"

type ImageCandidate struct {
	FileName string
	Content  []byte
}

type MatchImageRequest struct {
	SceneNumber      int
	ImageDescription string
	Narration        string
	Subtitle         string
	Candidates       []ImageCandidate
}

// ImageMatcherPort asks a vision-capable model to pick exactly one candidate
// file name for a scene. The reply is the raw model text: a file name, or the
// configured no-match sentinel. Interpretation is the binder's job.
type ImageMatcherPort interface {
	Match(ctx context.Context, req MatchImageRequest) (string, error)
}
