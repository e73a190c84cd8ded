package outbound

import "context"

// OCRExtractorPort returns the text labels recognized on one image, in the
// order the model reported them. Box coordinates are discarded at this
// boundary; the pipeline only consumes the label strings.
type OCRExtractorPort interface {
	ExtractLabels(ctx context.Context, imagePath string) ([]string, error)
}
