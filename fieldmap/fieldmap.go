// Package fieldmap renders a standing wave over one full period as an image:
// position along x, phase θ ∈ [0, 2π) down y.
package fieldmap

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/colinrgodsey/cartesius/f64"
	"github.com/colinrgodsey/wave-daemon/field"
	"github.com/colinrgodsey/wave-daemon/physics"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	positiveHue = 0.0
	negativeHue = 220.0
)

// Render evaluates req over a width×height grid. req.Time is ignored.
func Render(req field.Request, width, height int) (*image.RGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: image size %vx%v", physics.ErrInvalidConfig, width, height)
	}
	fn, err := field.Function(req)
	if err != nil {
		return nil, err
	}

	size := f64.Vec2{float64(width), float64(height)}
	scale := f64.Vec2{req.Length / size[0], 2 * math.Pi / size[1]}
	pixel := f64.Function2D(func(pos f64.Vec2) (float64, error) {
		return fn(f64.Vec2{pos[0] * scale[0], pos[1] * scale[1]})
	})

	one := f64.Vec2{1, 1}
	positions := f64.Grid2DPositions(one.Mul(0.5), one, size)

	var samples []f64.Vec3
	var peak float64
	for sample := range pixel.Multi(positions) {
		peak = math.Max(peak, math.Abs(sample[2]))
		samples = append(samples, sample)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, sample := range samples {
		var z float64
		if peak > 0 {
			z = sample[2] / peak
		}
		img.Set(int(sample[0]), int(sample[1]), shade(z))
	}
	return img, nil
}

// shade maps z ∈ [-1, 1] to white at 0, saturated red or blue at the peaks.
func shade(z float64) colorful.Color {
	h := positiveHue
	if z < 0 {
		h = negativeHue
	}
	return colorful.Hsl(h, 1, 1-0.5*math.Abs(z)).Clamped()
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG renders req and writes it to path.
func SavePNG(path string, req field.Request, width, height int) error {
	img, err := Render(req, width, height)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, img)
}
