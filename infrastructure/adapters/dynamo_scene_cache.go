package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/domain"
)

type dynamoSceneItem struct {
	RunID             string  `dynamodbav:"run_id"`
	SceneNumber       int     `dynamodbav:"scene_number"`
	Narration         string  `dynamodbav:"narration"`
	Subtitle          string  `dynamodbav:"subtitle"`
	ResolvedImagePath string  `dynamodbav:"resolved_image_path"`
	DeclaredDuration  float64 `dynamodbav:"duration_seconds"`
	EffectiveDuration float64 `dynamodbav:"effective_duration_seconds"`
	TTL               int64   `dynamodbav:"ttl"`
}

type dynamoSceneCache struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoSceneCache(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	dynamoConfig *config.DynamoConfig) outbound.SceneCachePort {
	return &dynamoSceneCache{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (c *dynamoSceneCache) Save(ctx context.Context, scene domain.Scene, runID string) error {
	item := dynamoSceneItem{
		RunID:             runID,
		SceneNumber:       scene.SceneNumber,
		Narration:         scene.Narration,
		Subtitle:          scene.Subtitle,
		ResolvedImagePath: scene.ResolvedImagePath,
		DeclaredDuration:  scene.DeclaredDuration,
		EffectiveDuration: scene.EffectiveDuration,
		TTL:               time.Now().Add(time.Duration(c.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal scene item", map[string]interface{}{
			"run_id": runID,
			"scene":  scene.SceneNumber,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	if _, err := c.dynamoSvc.PutItemWithContext(ctx, input); err != nil {
		c.logger.ErrorWithFields(err, "Failed to save scene item", map[string]interface{}{
			"run_id": runID,
			"scene":  scene.SceneNumber,
		})
		return err
	}

	return nil
}
