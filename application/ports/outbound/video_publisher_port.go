package outbound

import "context"

type PublishVideoRequest struct {
	VideoFileName string
	ProductName   string
	RunID         string
}

type PublishVideoResponse struct {
	VideoKey    string
	StoreRegion string
}

// VideoPublisherPort uploads the finished video to durable storage.
type VideoPublisherPort interface {
	Publish(ctx context.Context, req PublishVideoRequest) (*PublishVideoResponse, error)
}
