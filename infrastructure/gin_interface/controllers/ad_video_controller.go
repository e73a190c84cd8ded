package controllers

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"product-shorts-pipeline/application/ports/inbound"
	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/domain"
	"product-shorts-pipeline/infrastructure/gin_interface/dto"
)

var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".webp": {},
}

type AdVideoController interface {
	CreateVideo(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type adVideoController struct {
	logger   outbound.LoggerPort
	pipeline inbound.AdVideoPipelinePort
}

func NewAdVideoController(logger outbound.LoggerPort, pipeline inbound.AdVideoPipelinePort) AdVideoController {
	return &adVideoController{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (a *adVideoController) CreateVideo(c *gin.Context) {
	var req dto.CreateVideoRequest
	newCtx, cancel := context.WithCancel(c)
	defer cancel()

	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.AbortWithError(http.StatusBadRequest, err); err != nil {
			a.logger.Error(err, "failed to abort with error")
		}
		return
	}

	imagePaths := req.ImagePaths
	if req.ImageDir != "" {
		dirPaths, err := collectImagePaths(req.ImageDir)
		if err != nil {
			if err := c.AbortWithError(http.StatusBadRequest, err); err != nil {
				a.logger.Error(err, "failed to abort with error")
			}
			return
		}
		imagePaths = append(imagePaths, dirPaths...)
	}

	runID := uuid.NewString()

	res, err := a.pipeline.Run(newCtx, inbound.RunPipelineParams{
		RunID:       runID,
		ProductName: req.ProductName,
		ImagePaths:  imagePaths,
	})
	if err != nil {
		a.logger.ErrorWithFields(err, "Pipeline run failed", map[string]interface{}{
			"run_id": runID,
		})
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrNoFragments) || errors.Is(err, domain.ErrNarrationUnavailable) ||
			errors.Is(err, domain.ErrSceneScriptInvalid) {
			status = http.StatusUnprocessableEntity
		}
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error(), "run_id": runID})
		return
	}

	c.JSON(http.StatusOK, dto.CreateVideoResponse{
		RunID:         res.RunID,
		VideoKey:      res.VideoKey,
		VideoRegion:   res.VideoRegion,
		SceneCount:    len(res.Scenes),
		TotalDuration: res.TotalDuration,
	})
}

func (a *adVideoController) RegisterRoutes(g *gin.Engine) {
	g.POST("/videos", a.CreateVideo)
	g.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
}

func collectImagePaths(dir string) ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if _, ok := imageExtensions[strings.ToLower(filepath.Ext(entry))]; ok {
			paths = append(paths, entry)
		}
	}
	return paths, nil
}
