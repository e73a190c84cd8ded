package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
)

type s3VideoPublisher struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3VideoPublisher(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.VideoPublisherPort {
	return &s3VideoPublisher{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3VideoPublisher) Publish(ctx context.Context, req outbound.PublishVideoRequest) (*outbound.PublishVideoResponse, error) {
	itemKey := s.getItemKey(req)

	file, err := os.Open(req.VideoFileName)
	if err != nil {
		s.logger.Error(err, "Failed to open video file")
		return nil, err
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			s.logger.Error(err, "Failed to close video file")
		}
	}(file)

	putInput := &s3.PutObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(itemKey),
		Body:   file,
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload video to S3", map[string]interface{}{
			"bucket": s.s3Config.BucketName,
			"key":    itemKey,
		})
		return nil, err
	}

	s.logger.InfoWithFields("Video published", map[string]interface{}{
		"bucket": s.s3Config.BucketName,
		"key":    itemKey,
	})

	return &outbound.PublishVideoResponse{
		VideoKey:    itemKey,
		StoreRegion: s.s3Config.Region,
	}, nil
}

func (s *s3VideoPublisher) getItemKey(req outbound.PublishVideoRequest) string {
	return fmt.Sprintf("runs/%s/video/%s", req.RunID, filepath.Base(req.VideoFileName))
}
