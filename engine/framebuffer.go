package engine

import (
	"image"
	"image/color"
)

// -- framebuffer

// FrameBuffer is a width*height RGBA8 pixel grid that all render passes draw
// into. It knows nothing about the scene; presentation of the finished buffer
// is left to the caller (e.g. an ebiten image via WritePixels).
type FrameBuffer struct {
	width  int
	height int
	pix    []byte
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

// Pixels returns the underlying RGBA8 buffer in row-major order.
func (fb *FrameBuffer) Pixels() []byte { return fb.pix }

// Resize reallocates the pixel grid. Must not be called mid-draw.
func (fb *FrameBuffer) Resize(width, height int) {
	fb.width = width
	fb.height = height
	fb.pix = make([]byte, width*height*4)
}

// Fill sets every pixel to the given color.
func (fb *FrameBuffer) Fill(c color.RGBA) {
	for i := 0; i < len(fb.pix); i += 4 {
		fb.pix[i] = c.R
		fb.pix[i+1] = c.G
		fb.pix[i+2] = c.B
		fb.pix[i+3] = c.A
	}
}

func (fb *FrameBuffer) set(x, y int, r, g, b, a byte) {
	i := (y*fb.width + x) * 4
	fb.pix[i] = r
	fb.pix[i+1] = g
	fb.pix[i+2] = b
	fb.pix[i+3] = a
}

// DrawPixel writes one pixel, silently ignoring out of bounds coordinates.
func (fb *FrameBuffer) DrawPixel(c color.RGBA, x, y int) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.set(x, y, c.R, c.G, c.B, c.A)
}

// DrawVerticalLine draws a line of the given height starting at (x, top),
// clipped to the viewport. Returns the number of pixels actually drawn, or -1
// if the line lies entirely outside the buffer.
func (fb *FrameBuffer) DrawVerticalLine(c color.RGBA, x, top, height int) int {
	if x < 0 || x >= fb.width {
		return -1
	}
	y0 := clampInt(top, 0, fb.height)
	y1 := clampInt(top+height, 0, fb.height)
	if y0 >= y1 {
		return -1
	}
	for y := y0; y < y1; y++ {
		fb.set(x, y, c.R, c.G, c.B, c.A)
	}
	return y1 - y0
}

// DrawHorizontalLine is the horizontal counterpart of DrawVerticalLine with
// the same clipping and sentinel contract.
func (fb *FrameBuffer) DrawHorizontalLine(c color.RGBA, left, y, width int) int {
	if y < 0 || y >= fb.height {
		return -1
	}
	x0 := clampInt(left, 0, fb.width)
	x1 := clampInt(left+width, 0, fb.width)
	if x0 >= x1 {
		return -1
	}
	for x := x0; x < x1; x++ {
		fb.set(x, y, c.R, c.G, c.B, c.A)
	}
	return x1 - x0
}

// DrawRect fills a rectangle, built from vertical lines.
func (fb *FrameBuffer) DrawRect(c color.RGBA, x, y, width, height int) {
	for i := 0; i < width; i++ {
		fb.DrawVerticalLine(c, x+i, y, height)
	}
}

// DrawLine draws an arbitrary line with Bresenham's algorithm, dispatching on
// slope. Every pixel is bounds checked so endpoints may lie off screen.
// Returns the number of pixels written, 0 when the line misses the viewport.
func (fb *FrameBuffer) DrawLine(c color.RGBA, x1, y1, x2, y2 int) int {
	if absInt(y2-y1) < absInt(x2-x1) {
		if x1 > x2 {
			return fb.drawLineLow(c, x2, y2, x1, y1)
		}
		return fb.drawLineLow(c, x1, y1, x2, y2)
	}
	if y1 > y2 {
		return fb.drawLineHigh(c, x2, y2, x1, y1)
	}
	return fb.drawLineHigh(c, x1, y1, x2, y2)
}

func (fb *FrameBuffer) setClipped(c color.RGBA, x, y int) int {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	fb.set(x, y, c.R, c.G, c.B, c.A)
	return 1
}

func (fb *FrameBuffer) drawLineLow(c color.RGBA, x1, y1, x2, y2 int) int {
	dx := x2 - x1
	dy := y2 - y1
	yStep := 1
	if dy < 0 {
		yStep = -1
		dy = -dy
	}
	err := 2*dy - dx
	y := y1
	drawn := 0
	for x := x1; x <= x2; x++ {
		drawn += fb.setClipped(c, x, y)
		if err > 0 {
			y += yStep
			err += 2 * (dy - dx)
		} else {
			err += 2 * dy
		}
	}
	return drawn
}

func (fb *FrameBuffer) drawLineHigh(c color.RGBA, x1, y1, x2, y2 int) int {
	dx := x2 - x1
	dy := y2 - y1
	xStep := 1
	if dx < 0 {
		xStep = -1
		dx = -dx
	}
	err := 2*dx - dy
	x := x1
	drawn := 0
	for y := y1; y <= y2; y++ {
		drawn += fb.setClipped(c, x, y)
		if err > 0 {
			x += xStep
			err += 2 * (dx - dy)
		} else {
			err += 2 * dx
		}
	}
	return drawn
}

// DrawTexture blits the whole texture to (x, y) scaled to width*height using
// nearest-neighbor sampling. Destination pixels outside the viewport are
// skipped.
func (fb *FrameBuffer) DrawTexture(tex *Texture, x, y, width, height int) {
	fb.DrawSubTexture(tex, tex.Bounds(), x, y, width, height)
}

// DrawSubTexture blits the sub rectangle of the texture to (x, y) scaled to
// width*height.
func (fb *FrameBuffer) DrawSubTexture(tex *Texture, sub image.Rectangle, x, y, width, height int) {
	fb.drawSubTextureShaded(tex, sub, x, y, width, height, 1.0)
}

func (fb *FrameBuffer) drawSubTextureShaded(tex *Texture, sub image.Rectangle, x, y, width, height int, shade float64) {
	if width <= 0 || height <= 0 || sub.Dx() <= 0 || sub.Dy() <= 0 {
		return
	}
	xScale := float64(sub.Dx()) / float64(width)
	yScale := float64(sub.Dy()) / float64(height)

	// clip the destination range up front so the loop cost is bounded by the
	// viewport, not by the requested strip size
	cyStart := clampInt(-y, 0, height)
	cyEnd := clampInt(fb.height-y, 0, height)
	cxStart := clampInt(-x, 0, width)
	cxEnd := clampInt(fb.width-x, 0, width)

	for cy := cyStart; cy < cyEnd; cy++ {
		dy := y + cy
		srcY := sub.Min.Y + int(float64(cy)*yScale)
		for cx := cxStart; cx < cxEnd; cx++ {
			dx := x + cx
			srcX := sub.Min.X + int(float64(cx)*xScale)
			r, g, b, a := tex.Texel(srcX, srcY)
			if a == 0 {
				// transparent texels leave the destination untouched
				continue
			}
			if shade < 1.0 {
				r = byte(float64(r) * shade)
				g = byte(float64(g) * shade)
				b = byte(float64(b) * shade)
			}
			fb.set(dx, dy, r, g, b, a)
		}
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
