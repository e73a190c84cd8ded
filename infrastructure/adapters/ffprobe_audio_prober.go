package adapters

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"product-shorts-pipeline/application/ports/outbound"
)

type ffprobeAudioProber struct {
	logger outbound.LoggerPort
}

func NewFFprobeAudioProber(logger outbound.LoggerPort) outbound.AudioProberPort {
	return &ffprobeAudioProber{
		logger: logger,
	}
}

func (p *ffprobeAudioProber) Duration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.Output()
	if err != nil {
		p.logger.ErrorWithFields(err, "ffprobe failed", map[string]interface{}{
			"file": path,
		})
		return 0, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe duration output %q: %w", strings.TrimSpace(string(out)), err)
	}

	return duration, nil
}
