package assets

import (
	"embed"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GradientShader paints the vertical gradient behind the intro overlay
	GradientShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	gradientSrc, err := shaderFS.ReadFile("shaders/gradient.kage")
	if err != nil {
		return fmt.Errorf("read gradient shader: %w", err)
	}
	GradientShader, err = ebiten.NewShader(gradientSrc)
	if err != nil {
		return fmt.Errorf("compile gradient shader: %w", err)
	}

	return nil
}

// GradientUniforms builds the uniform map of the gradient shader
func GradientUniforms(top, bottom color.RGBA, height, opacity float64) map[string]any {
	return map[string]any{
		"Top":     rgbaVec(top),
		"Bottom":  rgbaVec(bottom),
		"Height":  float32(height),
		"Opacity": float32(opacity),
	}
}

func rgbaVec(c color.RGBA) []float32 {
	return []float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
