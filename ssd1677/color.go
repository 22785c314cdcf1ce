// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"fmt"
	"image/color"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Color is one of the three colors a tri-color panel shows. Black/white
// panels ignore Red.
type Color uint8

const (
	Black Color = iota
	White
	Red
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	switch c {
	case White:
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	case Red:
		return 0xFFFF, 0, 0, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	case Red:
		return "red"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// planeBits returns the black/white and red plane bits. The black/white
// plane stores 1 for white; the red plane stores 1 for red.
func (c Color) planeBits() (bw, red bool) {
	switch c {
	case White:
		return true, false
	case Red:
		return true, true
	}
	return false, false
}

func colorFromBits(bw, red bool) Color {
	switch {
	case red:
		return Red
	case bw:
		return White
	}
	return Black
}

// ColorModel converts any color to Black, White or Red. Saturated reds
// become Red, everything else is thresholded on brightness.
var ColorModel = color.ModelFunc(convert)

// Palette lists the panel colors, for use with image.Paletted and
// draw.FloydSteinberg.
var Palette = color.Palette{Black, White, Red}

func convert(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := int(r>>8), int(g>>8), int(b>>8)
	if r8 > 128 && r8-max(g8, b8) > 32 {
		return Red
	}
	if image1bit.BitModel.Convert(c).(image1bit.Bit) {
		return White
	}
	return Black
}
