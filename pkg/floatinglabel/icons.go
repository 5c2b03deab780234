package floatinglabel

import (
	"image"
	"image/color"
	"strconv"

	"github.com/patrickmn/go-cache"

	"github.com/go-drift/floatinglabel/internal/eyeicon"
)

// IconAsset names one of the four built-in toggle icons.
type IconAsset string

const (
	// IconMakeVisibleWhite reveals masked text, light theme.
	IconMakeVisibleWhite IconAsset = "make-visible-white"
	// IconMakeInvisibleWhite masks revealed text, light theme.
	IconMakeInvisibleWhite IconAsset = "make-invisible-white"
	// IconMakeVisibleBlack reveals masked text, dark theme.
	IconMakeVisibleBlack IconAsset = "make-visible-black"
	// IconMakeInvisibleBlack masks revealed text, dark theme.
	IconMakeInvisibleBlack IconAsset = "make-invisible-black"
)

// IconAssets lists the built-in icons.
var IconAssets = []IconAsset{
	IconMakeVisibleWhite,
	IconMakeInvisibleWhite,
	IconMakeVisibleBlack,
	IconMakeInvisibleBlack,
}

type iconKey struct {
	dark   bool
	secure bool
}

var iconTable = map[iconKey]IconAsset{
	{dark: false, secure: true}:  IconMakeVisibleWhite,
	{dark: false, secure: false}: IconMakeInvisibleWhite,
	{dark: true, secure: true}:   IconMakeVisibleBlack,
	{dark: true, secure: false}:  IconMakeInvisibleBlack,
}

// SelectIcon returns the built-in icon for the theme and secure-text state.
func SelectIcon(darkTheme, secure bool) IconAsset {
	return iconTable[iconKey{dark: darkTheme, secure: secure}]
}

// Shape returns the glyph drawn for the asset.
func (a IconAsset) Shape() eyeicon.Shape {
	switch a {
	case IconMakeInvisibleWhite, IconMakeInvisibleBlack:
		return eyeicon.Slashed
	default:
		return eyeicon.Open
	}
}

// Color returns the glyph color of the asset.
func (a IconAsset) Color() color.Color {
	switch a {
	case IconMakeVisibleBlack, IconMakeInvisibleBlack:
		return color.Black
	default:
		return color.White
	}
}

// iconCache holds rasterized icons keyed by asset and size.
var iconCache = cache.New(cache.NoExpiration, cache.NoExpiration)

// Image rasterizes the asset at size×size pixels. Results are cached, so
// repeated calls return the same image.
func (a IconAsset) Image(size int) image.Image {
	key := string(a) + "@" + strconv.Itoa(size)
	if img, ok := iconCache.Get(key); ok {
		return img.(image.Image)
	}
	img := image.Image(eyeicon.Render(a.Shape(), a.Color(), size))
	if err := iconCache.Add(key, img, cache.NoExpiration); err != nil {
		// Lost a race with another renderer; keep the first image.
		if cached, ok := iconCache.Get(key); ok {
			return cached.(image.Image)
		}
	}
	return img
}

// iconRasterScale is the pixel density icons are rasterized at.
const iconRasterScale = 3

// IconPixels returns the raster size used for an icon box.
func IconPixels(s ToggleImageStyle) (w, h int) {
	return int(s.Width*iconRasterScale + 0.5), int(s.Height*iconRasterScale + 0.5)
}

// ScaleIcon resamples a caller-supplied icon to the raster size of the icon
// box. Images already at that size are returned unchanged.
func ScaleIcon(img image.Image, s ToggleImageStyle) image.Image {
	if img == nil {
		return nil
	}
	w, h := IconPixels(s)
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}
	return eyeicon.Scale(img, w, h)
}
