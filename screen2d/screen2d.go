// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a 2D display.Drawer that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful to look at a frame before spending a full e-paper refresh on it.
package screen2d

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	X, Y int
	// Scale is the number of pixels per cell in each direction. Values below
	// 1 mean 1.
	Scale   int
	Palette *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// Dev is a terminal display emulator.
type Dev struct {
	w       io.Writer
	scale   int
	palette ansi256.Palette

	img *image.NRGBA
	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	return &Dev{
		w:       w,
		scale:   scale,
		palette: *p,
		img:     image.NewNRGBA(image.Rect(0, 0, opts.X, opts.Y)),
	}
}

func (d *Dev) String() string {
	b := d.img.Bounds()
	return fmt.Sprintf("Screen2D{%dx%d}", b.Dx(), b.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.img.Bounds()
}

// Draw implements display.Drawer. The whole screen is printed again.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.img, r.Intersect(d.img.Bounds()), src, sp, draw.Src)
	return d.refresh()
}

func (d *Dev) refresh() error {
	d.buf.Reset()
	b := d.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += d.scale {
		_, _ = d.buf.WriteString("\033[0m")
		for x := b.Min.X; x < b.Max.X; x += d.scale {
			_, _ = io.WriteString(&d.buf, d.palette.Block(d.img.NRGBAAt(x, y)))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
