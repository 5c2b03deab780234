package eyeicon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alphaAt(img *image.RGBA, x, y int) uint8 {
	return img.RGBAAt(x, y).A
}

func TestRender_OpenEye(t *testing.T) {
	img := Render(Open, color.Black, 100)
	require.Equal(t, image.Rect(0, 0, 100, 100), img.Bounds())

	assert.Equal(t, uint8(0xFF), alphaAt(img, 50, 50), "pupil is filled")
	assert.Equal(t, uint8(0), alphaAt(img, 2, 2), "corner is transparent")
	assert.Equal(t, uint8(0), alphaAt(img, 20, 80), "below the eye is transparent")

	px := img.RGBAAt(50, 50)
	assert.Equal(t, uint8(0), px.R)
}

func TestRender_SlashedEye(t *testing.T) {
	open := Render(Open, color.White, 100)
	slashed := Render(Slashed, color.White, 100)

	assert.Equal(t, uint8(0), alphaAt(open, 20, 80))
	assert.Equal(t, uint8(0xFF), alphaAt(slashed, 20, 80), "slash crosses the lower left")
	assert.Equal(t, uint8(0xFF), slashed.RGBAAt(20, 80).R)
}

func TestRender_NonPositiveSize(t *testing.T) {
	img := Render(Open, color.Black, 0)
	assert.Equal(t, 1, img.Bounds().Dx())
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := range 10 {
		for x := range 10 {
			src.Set(x, y, color.RGBA{R: 0xFF, A: 0xFF})
		}
	}

	dst := Scale(src, 25, 40)
	require.Equal(t, image.Rect(0, 0, 25, 40), dst.Bounds())
	px := dst.RGBAAt(12, 20)
	assert.Equal(t, uint8(0xFF), px.R)
	assert.Equal(t, uint8(0xFF), px.A)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "slashed", Slashed.String())
	assert.Equal(t, "unknown", Shape(9).String())
}
