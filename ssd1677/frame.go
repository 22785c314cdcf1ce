// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"image"
	"image/color"
	"image/draw"
)

// Frame is a full-panel image held in the controller's native layout: two
// bit-packed planes addressed through PixelIndex. Its bounds are the rotated
// logical surface.
type Frame struct {
	dims     Dimensions
	rotation Rotation
	bounds   image.Rectangle
	black    []byte
	red      []byte
}

// NewFrame returns a white frame for the panel described by opts.
func NewFrame(opts *Opts) *Frame {
	f := &Frame{
		dims:     opts.Dimensions,
		rotation: opts.Rotation,
		bounds:   opts.Bounds(),
		black:    make([]byte, opts.Dimensions.BufferSize()),
		red:      make([]byte, opts.Dimensions.BufferSize()),
	}
	f.Clear(White)
	return f
}

// ColorModel implements image.Image.
func (f *Frame) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements image.Image.
func (f *Frame) Bounds() image.Rectangle {
	return f.bounds
}

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color {
	return f.ColorAt(x, y)
}

// ColorAt returns the panel color at (x, y). Points outside the frame read
// as White.
func (f *Frame) ColorAt(x, y int) Color {
	if !image.Pt(x, y).In(f.bounds) {
		return White
	}
	i, mask := PixelIndex(x, y, f.dims.Cols, f.dims.Rows, f.rotation)
	return colorFromBits(f.black[i]&mask != 0, f.red[i]&mask != 0)
}

// Set implements draw.Image.
func (f *Frame) Set(x, y int, c color.Color) {
	f.SetColor(x, y, convert(c).(Color))
}

// SetColor sets the pixel at (x, y). Points outside the frame are ignored.
func (f *Frame) SetColor(x, y int, c Color) {
	if !image.Pt(x, y).In(f.bounds) {
		return
	}
	i, mask := PixelIndex(x, y, f.dims.Cols, f.dims.Rows, f.rotation)
	bw, red := c.planeBits()
	setBit(f.black, i, mask, bw)
	setBit(f.red, i, mask, red)
}

func setBit(plane []byte, i int, mask byte, on bool) {
	if on {
		plane[i] |= mask
	} else {
		plane[i] &^= mask
	}
}

// Clear fills the frame with c.
func (f *Frame) Clear(c Color) {
	var bw, red byte
	if b, r := c.planeBits(); b {
		bw = 0xFF
		if r {
			red = 0xFF
		}
	}
	for i := range f.black {
		f.black[i] = bw
		f.red[i] = red
	}
}

// Black returns the black/white plane. A set bit is white.
func (f *Frame) Black() []byte {
	return f.black
}

// Red returns the red plane. A set bit is red. The plane is all zero until
// something red is drawn, which makes updates black/white only.
func (f *Frame) Red() []byte {
	return f.red
}

var _ draw.Image = &Frame{}
