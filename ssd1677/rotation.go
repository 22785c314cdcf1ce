// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

// PixelIndex maps the logical point (x, y) to a byte offset and bit mask in
// a row-major, MSB-first plane of a width x height panel. width and height
// are always the physical panel size; for Rotate90 and Rotate270 the
// logical x runs along the panel height.
//
// The caller range-checks the point, width must be a multiple of 8.
func PixelIndex(x, y, width, height int, r Rotation) (int, byte) {
	stride := width / 8
	switch r {
	case Rotate90:
		return (width-1-y)/8 + stride*x, 0x01 << uint(y%8)
	case Rotate180:
		return stride*height - 1 - (x/8 + stride*y), 0x01 << uint(x%8)
	case Rotate270:
		return y/8 + (height-1-x)*stride, 0x80 >> uint(y%8)
	}
	return x/8 + stride*y, 0x80 >> uint(x%8)
}
