package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	overlayWidth    = 512
	overlayHeight   = 128
	overlayFontSize = 14
	overlayMargin   = 10
	overlayLeading  = 18
)

// overlay is the F3 debug text. Lines are rasterised into one RGBA canvas that is
// re-uploaded whenever the text changes.
type overlay struct {
	ctx     *freetype.Context
	dst     *image.RGBA
	texture uint32
	vao     uint32
	vbo     uint32
	lines   []string
}

func newOverlay() (*overlay, error) {
	f, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse overlay font: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, overlayWidth, overlayHeight))
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(overlayFontSize)
	ctx.SetDst(dst)
	ctx.SetClip(dst.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	o := &overlay{ctx: ctx, dst: dst}
	o.texture = uploadTexture(dst, overlaySampling)
	o.initVAO()
	return o, nil
}

func (o *overlay) initVAO() {
	// x, y, u, v in screen space with y pointing down.
	vertices := []float32{
		0, 0, 0, 0,
		0, 1, 0, 1,
		1, 1, 1, 1,

		0, 0, 0, 0,
		1, 1, 1, 1,
		1, 0, 1, 0,
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)
}

func (o *overlay) update(lines []string) error {
	if equalLines(o.lines, lines) {
		return nil
	}
	o.lines = append(o.lines[:0], lines...)

	draw.Draw(o.dst, o.dst.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)
	pt := freetype.Pt(overlayMargin, overlayMargin+int(o.ctx.PointToFixed(overlayFontSize)>>6))
	for _, line := range lines {
		if _, err := o.ctx.DrawString(line, pt); err != nil {
			return err
		}
		pt.Y += fixed.I(overlayLeading)
	}

	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(o.dst.Rect.Size().X), int32(o.dst.Rect.Size().Y),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(o.dst.Pix),
	)
	return nil
}

func (o *overlay) draw(program uint32, width, height int) {
	gl.UseProgram(program)
	projection := mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	model := mgl32.Scale3D(overlayWidth, overlayHeight, 1)
	setMat4(program, "projection", projection)
	setMat4(program, "model", model)
	gl.Uniform1i(uniform(program, "textTexture"), 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (o *overlay) delete() {
	gl.DeleteTextures(1, &o.texture)
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteVertexArrays(1, &o.vao)
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
