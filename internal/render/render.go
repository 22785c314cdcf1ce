// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package render composes text and pictures into a tri-color frame.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// RedPrefix marks a line that Text draws in red. The prefix is not drawn.
const RedPrefix = "!"

// Text draws lines top to bottom on a white background, size is the font
// size in points. Lines that do not fit are clipped.
func Text(dst draw.Image, lines []string, size float64) error {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}

	b := dst.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: size}))

	padding := size / 2
	lineHeight := dc.FontHeight() * 1.25
	for i, line := range lines {
		c := color.Color(color.Black)
		if strings.HasPrefix(line, RedPrefix) {
			line = strings.TrimPrefix(line, RedPrefix)
			c = color.RGBA{R: 0xFF, A: 0xFF}
		}
		dc.SetColor(c)
		dc.DrawString(line, padding, padding+float64(i+1)*lineHeight)
	}

	draw.Draw(dst, b, dc.Image(), image.Point{}, draw.Src)
	return nil
}

// Image scales img to fit dst keeping its aspect ratio, centres it on a
// white background and dithers it into dst's color model.
func Image(dst draw.Image, img image.Image) {
	b := dst.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), color.White)
	canvas = imaging.PasteCenter(canvas, fit(img, b.Dx(), b.Dy()))
	draw.FloydSteinberg.Draw(dst, b, canvas, image.Point{})
}

// fit is imaging.Fit that also scales up.
func fit(img image.Image, w, h int) *image.NRGBA {
	s := img.Bounds()
	if s.Dx() < w && s.Dy() < h {
		if s.Dx()*h > s.Dy()*w {
			return imaging.Resize(img, w, 0, imaging.Lanczos)
		}
		return imaging.Resize(img, 0, h, imaging.Lanczos)
	}
	return imaging.Fit(img, w, h, imaging.Lanczos)
}
