package heatmap

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/xRyann2255/ICHack26-sub001/common"
)

// BuildTexture rasterizes a sample grid into the overlay texture the renderer
// maps onto the ground plane. Each sample becomes one texel colored through
// the density ramp; the grid is then upscaled with bilinear filtering to the
// requested texture edge length, which softens the texels into the blurred
// density field the layer is meant to read as.
//
// Parameters:
//   - samples: a row-major gridSize * gridSize sample grid
//   - gridSize: samples per grid edge
//   - textureSize: output texture edge length in pixels
//
// Returns:
//   - common.TextureStagingData: RGBA pixels ready for texture upload
//   - error: an error if the sample count does not match the grid size
func BuildTexture(samples []Sample, gridSize, textureSize int) (common.TextureStagingData, error) {
	if len(samples) != gridSize*gridSize {
		return common.TextureStagingData{}, fmt.Errorf("expected %d samples for grid size %d, got %d", gridSize*gridSize, gridSize, len(samples))
	}
	if textureSize < gridSize {
		textureSize = gridSize
	}

	src := image.NewRGBA(image.Rect(0, 0, gridSize, gridSize))
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			src.SetRGBA(col, row, RampColor(samples[row*gridSize+col].Intensity))
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, textureSize, textureSize))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return common.TextureStagingData{
		Pixels: dst.Pix,
		Width:  uint32(textureSize),
		Height: uint32(textureSize),
	}, nil
}
