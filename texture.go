package main

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"neilpa.me/go-stbi"
)

// loadTexture uploads the block texture. A missing or unreadable file falls back
// to a generated grass pattern so the world still renders.
func loadTexture(path string) uint32 {
	img, err := stbi.Load(path)
	if err != nil {
		slog.Warn("block texture unavailable, using generated one", "path", path, "err", err)
		img = fallbackTexture()
	}
	return uploadTexture(img, blockSampling)
}

func fallbackTexture() *image.RGBA {
	const size = 16
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 106, G: 170, B: 64, A: 255}
	dark := color.RGBA{R: 86, G: 140, B: 52, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := light
			if (x/4+y/4)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// sampling is the filter and wrap mode a texture is created with.
type sampling struct {
	minFilter, magFilter int32
	wrap                 int32
}

var (
	// blocks stay pixelated up close and never bleed across the tile edge
	blockSampling   = sampling{minFilter: gl.NEAREST, magFilter: gl.NEAREST, wrap: gl.CLAMP_TO_EDGE}
	overlaySampling = sampling{minFilter: gl.LINEAR, magFilter: gl.LINEAR, wrap: gl.CLAMP_TO_EDGE}
)

func uploadTexture(img *image.RGBA, s sampling) uint32 {
	size := img.Rect.Size()

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	params := [...][2]int32{
		{gl.TEXTURE_MIN_FILTER, s.minFilter},
		{gl.TEXTURE_MAG_FILTER, s.magFilter},
		{gl.TEXTURE_WRAP_S, s.wrap},
		{gl.TEXTURE_WRAP_T, s.wrap},
	}
	for _, p := range params {
		gl.TexParameteri(gl.TEXTURE_2D, uint32(p[0]), p[1])
	}
	return texture
}
