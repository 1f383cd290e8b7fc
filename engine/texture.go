package engine

import (
	"image"
	"image/color"
	"image/draw"
)

// -- texture

// Texture is a pre-decoded RGBA8 image. Texel lookups wrap: with a bitmask
// when the dimension is a power of two, by modulo otherwise. Floor and
// ceiling sampling assumes power-of-two textures so the mask path is taken.
type Texture struct {
	width  int
	height int
	pix    []byte
	maskX  int // width-1 when width is a power of two, else -1
	maskY  int
}

func NewTexture(width, height int, pix []byte) *Texture {
	t := &Texture{
		width:  width,
		height: height,
		pix:    pix,
		maskX:  wrapMask(width),
		maskY:  wrapMask(height),
	}
	return t
}

// NewTextureFromImage copies an already-decoded image into a Texture.
func NewTextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return NewTexture(bounds.Dx(), bounds.Dy(), rgba.Pix)
}

func wrapMask(dim int) int {
	if dim > 0 && dim&(dim-1) == 0 {
		return dim - 1
	}
	return -1
}

func (t *Texture) Width() int  { return t.width }
func (t *Texture) Height() int { return t.height }

func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.width, t.height)
}

// Texel returns the RGBA channels at the wrapped texel coordinates.
func (t *Texture) Texel(x, y int) (r, g, b, a byte) {
	if t.maskX >= 0 {
		x &= t.maskX
	} else {
		x = ((x % t.width) + t.width) % t.width
	}
	if t.maskY >= 0 {
		y &= t.maskY
	} else {
		y = ((y % t.height) + t.height) % t.height
	}
	i := (y*t.width + x) * 4
	return t.pix[i], t.pix[i+1], t.pix[i+2], t.pix[i+3]
}

// NewFlatTexture builds a single-color texture, used as the fallback for
// zero or unknown texture ids encountered mid-draw.
func NewFlatTexture(size int, c color.RGBA) *Texture {
	pix := make([]byte, size*size*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
	return NewTexture(size, size, pix)
}
