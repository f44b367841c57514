package service

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"colormind/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RenderSwatch rasterizes a palette into a PNG: one bar per color over the
// top 70% of the canvas, hex and role captions centered under each bar, and
// the palette name centered near the bottom.
func RenderSwatch(colors []model.PaletteColor, name string, width, height int) ([]byte, error) {
	if len(colors) == 0 {
		return nil, errors.New("no colors to render")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("invalid swatch dimensions")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	barBottom := int(float64(height) * 0.7)
	barWidth := width / len(colors)
	for i, pc := range colors {
		fill := color.RGBA{R: pc.RGB.R, G: pc.RGB.G, B: pc.RGB.B, A: 255}
		rect := image.Rect(i*barWidth, 0, i*barWidth+barWidth, barBottom)
		draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)
	}

	face := basicfont.Face7x13
	textY := int(float64(height) * 0.75)
	for i, pc := range colors {
		center := i*barWidth + barWidth/2
		drawCenteredText(img, face, pc.Hex, center, textY)
		drawCenteredText(img, face, pc.Role, center, textY+20)
	}
	drawCenteredText(img, face, name, width/2, int(float64(height)*0.85))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawCenteredText draws s horizontally centered on x, with y as the top of
// the text box.
func drawCenteredText(dst draw.Image, face font.Face, s string, x, y int) {
	width := font.MeasureString(face, s).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x-width/2, y+ascent),
	}
	d.DrawString(s)
}
