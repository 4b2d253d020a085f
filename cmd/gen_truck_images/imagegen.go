package main

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// backgroundFor picks a dark background color that stays the same for a truck id
func backgroundFor(id string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(id))
	sum := h.Sum32()
	return color.RGBA{
		R: uint8(50 + sum%100),
		G: uint8(50 + (sum>>8)%100),
		B: uint8(50 + (sum>>16)%100),
		A: 255,
	}
}

// generateTruckImage draws a placeholder for a truck with its caption centered
func generateTruckImage(id, caption string, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{backgroundFor(id)}, image.Point{}, draw.Src)

	// Border
	borderColor := color.RGBA{224, 76, 76, 255}
	for x := 0; x < width; x++ {
		img.Set(x, 0, borderColor)
		img.Set(x, height-1, borderColor)
	}
	for y := 0; y < height; y++ {
		img.Set(0, y, borderColor)
		img.Set(width-1, y, borderColor)
	}

	text := fmt.Sprintf("%s\n%d×%d", caption, width, height)
	addText(img, text, color.White, width/2, height/2)
	return img, nil
}

// addText draws centered lines of text around (x, y)
func addText(img *image.RGBA, text string, textColor color.Color, x, y int) {
	f := basicfont.Face7x13
	lines := strings.Split(text, "\n")
	lineHeight := f.Height + 8
	startY := y - len(lines)*lineHeight/2 + f.Ascent

	for i, line := range lines {
		startX := x - len([]rune(line))*f.Width/2
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(textColor),
			Face: f,
			Dot: fixed.Point26_6{
				X: fixed.I(startX),
				Y: fixed.I(startY + i*lineHeight),
			},
		}
		d.DrawString(line)
	}
}

// scaleTo resizes src to the given width, keeping its aspect ratio
func scaleTo(src image.Image, width int) *image.RGBA {
	bounds := src.Bounds()
	height := bounds.Dy() * width / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

// encodeFor encodes img in the format named by the file extension
func encodeFor(name string, img image.Image, quality int) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".webp":
		err = webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: float32(quality)})
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	case ".png":
		err = png.Encode(&buf, img)
	default:
		return nil, fmt.Errorf("unsupported image type for %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return &buf, nil
}
