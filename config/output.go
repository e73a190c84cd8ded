package config

import (
	"fmt"
	"path/filepath"
)

type OutputConfig struct {
	RootDir     string
	VideoWidth  int
	VideoHeight int
	VideoFPS    int
	FontPath    string
}

func GetOutputConfig() (*OutputConfig, error) {
	width, err := envIntOr("VIDEO_WIDTH", 720)
	if err != nil {
		return nil, fmt.Errorf("failed to parse VIDEO_WIDTH")
	}
	height, err := envIntOr("VIDEO_HEIGHT", 1280)
	if err != nil {
		return nil, fmt.Errorf("failed to parse VIDEO_HEIGHT")
	}
	fps, err := envIntOr("VIDEO_FPS", 24)
	if err != nil {
		return nil, fmt.Errorf("failed to parse VIDEO_FPS")
	}

	return &OutputConfig{
		RootDir:     envOr("OUTPUT_DIR", "output"),
		VideoWidth:  width,
		VideoHeight: height,
		VideoFPS:    fps,
		FontPath:    envOr("SUBTITLE_FONT_PATH", "/usr/share/fonts/truetype/nanum/NanumGothic.ttf"),
	}, nil
}

func (c *OutputConfig) ImagesRawDir() string {
	return filepath.Join(c.RootDir, "images_raw")
}

func (c *OutputConfig) ExtractedTextsDir() string {
	return filepath.Join(c.RootDir, "extracted_texts")
}

func (c *OutputConfig) AudioClipsDir() string {
	return filepath.Join(c.RootDir, "audio_clips")
}

func (c *OutputConfig) VideosDir() string {
	return filepath.Join(c.RootDir, "videos")
}
