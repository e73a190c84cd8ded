package adapters

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
	"product-shorts-pipeline/domain"
)

type ffmpegSceneCompositor struct {
	logger       outbound.LoggerPort
	outputConfig *config.OutputConfig
}

func NewFFmpegSceneCompositor(logger outbound.LoggerPort, outputConfig *config.OutputConfig) outbound.VideoComposerPort {
	return &ffmpegSceneCompositor{
		logger:       logger,
		outputConfig: outputConfig,
	}
}

// Compose renders each scene as a still-image clip at its effective duration,
// with its audio track and burned-in subtitle, then concatenates the clips.
func (c *ffmpegSceneCompositor) Compose(scenes domain.SceneList, productName string) (string, error) {
	if len(scenes) == 0 {
		return "", fmt.Errorf("no scenes to compose")
	}
	if err := os.MkdirAll(c.outputConfig.VideosDir(), 0o755); err != nil {
		return "", err
	}

	clipPaths := make([]string, 0, len(scenes))
	defer func() {
		for _, path := range clipPaths {
			if err := os.Remove(path); err != nil {
				c.logger.Error(err, "Failed to remove scene clip")
			}
		}
	}()

	for _, scene := range scenes {
		clipPath, err := c.renderScene(scene)
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to render scene clip", map[string]interface{}{
				"scene": scene.SceneNumber,
			})
			return "", err
		}
		clipPaths = append(clipPaths, clipPath)
	}

	return c.concatenate(clipPaths)
}

func (c *ffmpegSceneCompositor) renderScene(scene domain.Scene) (string, error) {
	clipPath := filepath.Join(c.outputConfig.VideosDir(), fmt.Sprintf("scene_%02d_%s.mp4", scene.SceneNumber, uuid.NewString()))

	args := []string{"-y", "-loop", "1", "-i", scene.ResolvedImagePath}
	hasAudio := scene.AudioFilePath != ""
	if hasAudio {
		args = append(args, "-i", scene.AudioFilePath)
	}

	args = append(args,
		"-t", fmt.Sprintf("%.3f", scene.EffectiveDuration),
		"-vf", c.buildFilter(scene.Subtitle),
		"-r", fmt.Sprintf("%d", c.outputConfig.VideoFPS),
		"-c:v", "libx264", "-tune", "stillimage", "-pix_fmt", "yuv420p",
	)
	if hasAudio {
		args = append(args, "-c:a", "aac", "-b:a", "192k", "-shortest")
	} else {
		args = append(args, "-an")
	}
	args = append(args, clipPath)

	cmd := exec.Command("ffmpeg", args...)
	if err := cmd.Run(); err != nil {
		return "", err
	}

	return clipPath, nil
}

// buildFilter fills the vertical frame (scale up, center crop) and burns the
// subtitle near the bottom when the scene has one.
func (c *ffmpegSceneCompositor) buildFilter(subtitle string) string {
	filter := fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d",
		c.outputConfig.VideoWidth, c.outputConfig.VideoHeight,
		c.outputConfig.VideoWidth, c.outputConfig.VideoHeight)
	if subtitle == "" {
		return filter
	}
	return fmt.Sprintf("%s,drawtext=fontfile=%s:text='%s':fontsize=50:fontcolor=white:bordercolor=black:borderw=2:x=(w-text_w)/2:y=h-text_h-80",
		filter, c.outputConfig.FontPath, escapeDrawtext(subtitle))
}

func (c *ffmpegSceneCompositor) concatenate(clipPaths []string) (finalFileName string, err error) {
	listFile, err := os.CreateTemp("", "scene-list-*.txt")
	if err != nil {
		c.logger.Error(err, "Failed to create clip list file")
		return "", err
	}
	defer func() {
		if err := os.Remove(listFile.Name()); err != nil {
			c.logger.Error(err, "Failed to remove clip list file")
		}
	}()

	writer := bufio.NewWriter(listFile)
	for _, path := range clipPaths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		if _, err := writer.WriteString(fmt.Sprintf("file '%s'\n", absPath)); err != nil {
			return "", err
		}
	}
	if err := writer.Flush(); err != nil {
		return "", err
	}
	if err := listFile.Close(); err != nil {
		return "", err
	}

	finalFileName = filepath.Join(c.outputConfig.VideosDir(), uuid.NewString()+".mp4")
	cmd := exec.Command("ffmpeg", "-y", "-f", "concat", "-safe", "0", "-i", listFile.Name(), "-c", "copy", finalFileName)
	if err := cmd.Run(); err != nil {
		c.logger.Error(err, "Failed to concatenate scene clips")
		return "", err
	}

	return finalFileName, nil
}

func escapeDrawtext(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, `:`, `\:`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return s
}
