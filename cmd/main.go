package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"product-shorts-pipeline/application/services"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/infrastructure/adapters"
	"product-shorts-pipeline/infrastructure/gin_interface/controllers"
	"product-shorts-pipeline/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using ambient environment")
	}

	openAIConfig, err := config.GetOpenAIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get OpenAI config")
	}

	ttsConfig, err := config.GetTTSConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get TTS config")
	}

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	outputConfig, err := config.GetOutputConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get output config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	jwksUrl := os.Getenv("JWKS_URL")
	if jwksUrl == "" {
		log.Fatal().Msg("JWKS_URL is not set!")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(32, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))
	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	textGenerator := adapters.NewOpenAITextGenerator(zeroLogger, openAIConfig)
	visionMatcher := adapters.NewOpenAIVisionMatcher(zeroLogger, openAIConfig, pipelineConfig)
	ocrExtractor := adapters.NewOpenAIOCRExtractor(zeroLogger, openAIConfig)
	speechSynthesizer := adapters.NewGoogleTTSSynthesizer(contentFetcher, ttsConfig, zeroLogger)

	workspace := adapters.NewFSWorkspace(zeroLogger, outputConfig)
	audioProber := adapters.NewFFprobeAudioProber(zeroLogger)
	audioClipStore := adapters.NewFSAudioClipStore(zeroLogger, outputConfig)
	artifactStore := adapters.NewFSArtifactStore(zeroLogger, outputConfig)
	placeholder := adapters.NewPlaceholderImageGenerator(zeroLogger, outputConfig)
	composer := adapters.NewFFmpegSceneCompositor(zeroLogger, outputConfig)

	videoPublisher := adapters.NewS3VideoPublisher(zeroLogger, s3Client, s3Config)
	sceneCache := adapters.NewDynamoSceneCache(zeroLogger, dynamoClient, dynamoConfig)

	textFilter := services.NewTextFilter(zeroLogger, pipelineConfig.FilterKeywords)
	narrationGenerator := services.NewNarrationGenerator(zeroLogger, textGenerator, artifactStore, pipelineConfig)
	sceneScriptGenerator := services.NewSceneScriptGenerator(zeroLogger, textGenerator, artifactStore, pipelineConfig)
	audioSynthesizer := services.NewSceneAudioSynthesizer(zeroLogger, speechSynthesizer, audioProber, audioClipStore, workerPool)
	assetBinder := services.NewSceneAssetBinder(zeroLogger, visionMatcher, placeholder, workerPool, pipelineConfig)
	reconciler := services.NewDurationReconciler(zeroLogger, pipelineConfig)

	pipeline := services.NewAdVideoPipeline(zeroLogger, workspace, ocrExtractor, textFilter, narrationGenerator,
		sceneScriptGenerator, audioSynthesizer, assetBinder, reconciler, composer, videoPublisher, sceneCache)

	adVideoController := controllers.NewAdVideoController(zeroLogger, pipeline)

	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	authHandler, err := middleware.NewAuthHandler(jwksUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth handler!")
	}
	router.Use(authHandler.AuthMiddleware())

	adVideoController.RegisterRoutes(router)

	if err := router.Run(":8080"); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
