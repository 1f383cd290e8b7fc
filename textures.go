package main

import (
	"image"
	"image/color"
	"log"
	"os"

	// decoders for the texture formats the loader accepts
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"maze3d/engine"
)

// -- texture loading

// fixed texture table layout: wall cell value v selects id v-1
const (
	texBrick = iota
	texStone
	texFloor
	texCeiling
	texSprite
	texProjectile
	texCount
)

const texSize = 64

// loadTextures builds the texture table from the configured files, falling
// back to generated textures for anything missing or undecodable. Floor and
// ceiling entries must be power-of-two sized for wrap-mask sampling.
func loadTextures(cfg *Config) []*engine.Texture {
	textures := make([]*engine.Texture, texCount)
	textures[texBrick] = brickTexture(color.RGBA{170, 74, 68, 255})
	textures[texStone] = brickTexture(color.RGBA{110, 110, 120, 255})
	textures[texFloor] = checkerTexture(color.RGBA{70, 60, 50, 255}, color.RGBA{90, 80, 66, 255})
	textures[texCeiling] = checkerTexture(color.RGBA{40, 44, 56, 255}, color.RGBA{52, 56, 70, 255})
	textures[texSprite] = orbTexture(color.RGBA{60, 160, 70, 255})
	textures[texProjectile] = orbTexture(color.RGBA{240, 200, 60, 255})

	for i, path := range cfg.WallTextures {
		if i >= 2 {
			break
		}
		replaceTexture(textures, texBrick+i, path)
	}
	replaceTexture(textures, texFloor, cfg.FloorTexture)
	replaceTexture(textures, texCeiling, cfg.CeilingTexture)
	replaceTexture(textures, texSprite, cfg.SpriteTexture)
	replaceTexture(textures, texProjectile, cfg.ProjectileTexture)

	return textures
}

func replaceTexture(textures []*engine.Texture, id int, path string) {
	if path == "" {
		return
	}
	tex, err := loadTextureFile(path)
	if err != nil {
		log.Printf("textures: using generated fallback for %q: %v", path, err)
		return
	}
	textures[id] = tex
}

func loadTextureFile(path string) (*engine.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return engine.NewTextureFromImage(img), nil
}

// -- generated textures

func brickTexture(base color.RGBA) *engine.Texture {
	mortar := color.RGBA{190, 184, 176, 255}
	pix := make([]byte, texSize*texSize*4)
	for y := 0; y < texSize; y++ {
		row := y / 16
		for x := 0; x < texSize; x++ {
			c := base
			// stagger every other course by half a brick
			bx := x
			if row%2 == 1 {
				bx += 16
			}
			if y%16 == 0 || bx%32 == 0 {
				c = mortar
			} else if (x*31+y*17)%23 == 0 {
				// speckle
				c = color.RGBA{c.R - c.R/8, c.G - c.G/8, c.B - c.B/8, 255}
			}
			setPix(pix, x, y, c)
		}
	}
	return engine.NewTexture(texSize, texSize, pix)
}

func checkerTexture(a, b color.RGBA) *engine.Texture {
	pix := make([]byte, texSize*texSize*4)
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			c := a
			if (x/8+y/8)%2 == 1 {
				c = b
			}
			setPix(pix, x, y, c)
		}
	}
	return engine.NewTexture(texSize, texSize, pix)
}

// orbTexture is a filled circle on a transparent background, for billboards.
func orbTexture(c color.RGBA) *engine.Texture {
	pix := make([]byte, texSize*texSize*4)
	r := texSize / 2
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			dx, dy := x-r, y-r
			if dx*dx+dy*dy <= (r-2)*(r-2) {
				setPix(pix, x, y, c)
			}
		}
	}
	return engine.NewTexture(texSize, texSize, pix)
}

func setPix(pix []byte, x, y int, c color.RGBA) {
	i := (y*texSize + x) * 4
	pix[i] = c.R
	pix[i+1] = c.G
	pix[i+2] = c.B
	pix[i+3] = c.A
}
