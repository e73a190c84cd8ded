package adapters

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"product-shorts-pipeline/application/ports/outbound"
	"product-shorts-pipeline/config"
)

// Light grey, the same stand-in color the compositor expects.
var placeholderColor = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}

type placeholderImageGenerator struct {
	logger outbound.LoggerPort
	path   string
	width  int
	height int
	once   sync.Once
	err    error
}

func NewPlaceholderImageGenerator(logger outbound.LoggerPort, outputConfig *config.OutputConfig) outbound.PlaceholderImagePort {
	return &placeholderImageGenerator{
		logger: logger,
		path:   filepath.Join(outputConfig.ImagesRawDir(), "placeholder.png"),
		width:  outputConfig.VideoWidth,
		height: outputConfig.VideoHeight,
	}
}

// Ensure writes the solid-color placeholder at the video resolution exactly
// once per process; concurrent scene bindings share the same file.
func (g *placeholderImageGenerator) Ensure() (string, error) {
	g.once.Do(func() {
		g.err = g.generate()
	})
	return g.path, g.err
}

func (g *placeholderImageGenerator) generate() error {
	if err := os.MkdirAll(filepath.Dir(g.path), 0o755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.SetRGBA(x, y, placeholderColor)
		}
	}

	file, err := os.Create(g.path)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			g.logger.Error(err, "Failed to close placeholder file")
		}
	}()

	return png.Encode(file, img)
}
