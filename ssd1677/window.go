// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"encoding/binary"
	"image"
)

// Bits of the data entry mode register.
const (
	entryXIncrement byte = 1 << 0
	entryYIncrement byte = 1 << 1
)

// command is one opcode with its parameter bytes.
type command struct {
	op   byte
	data []byte
}

// ramWindow holds the RAM addressing registers for one update area. Start
// and end are in the order the address counter walks them, which is not
// necessarily the visual order.
type ramWindow struct {
	entryMode    byte
	xStart, xEnd uint16
	yStart, yEnd uint16
}

// checkArea validates an update area in physical panel coordinates. Writes
// are byte-granular so x and width must be multiples of 8.
func checkArea(area image.Rectangle, d Dimensions) error {
	switch {
	case area.Dx() <= 0 || area.Dy() <= 0:
		return &RegionError{Area: area, Reason: "zero width or height"}
	case area.Min.X < 0 || area.Min.Y < 0 || area.Max.X > d.Cols || area.Max.Y > d.Rows:
		return &RegionError{Area: area, Reason: "outside of panel"}
	case area.Min.X%8 != 0 || area.Dx()%8 != 0:
		return &RegionError{Area: area, Reason: "x and width must be multiples of 8"}
	}
	return nil
}

// areaBufferSize returns the number of bytes one plane of area occupies.
func areaBufferSize(area image.Rectangle) int {
	return area.Dx() / 8 * area.Dy()
}

// orderRange returns the range as the address counter expects it: as is
// when it increments, swapped when it decrements.
func orderRange(start, end uint16, increment bool) (uint16, uint16) {
	if increment {
		return start, end
	}
	return end, start
}

// newRAMWindow computes the window registers for area.
func newRAMWindow(area image.Rectangle, opts *Opts) (ramWindow, error) {
	if err := checkArea(area, opts.Dimensions); err != nil {
		return ramWindow{}, err
	}

	w := ramWindow{entryMode: opts.DataEntryMode}

	x0, x1 := uint16(area.Min.X), uint16(area.Max.X-1)
	if opts.XAddressing == Bytes {
		x0, x1 = x0/8, x1/8
	}
	w.xStart, w.xEnd = orderRange(x0, x1, opts.DataEntryMode&entryXIncrement != 0)

	y := area.Min.Y
	if opts.YInverted {
		y = opts.Dimensions.Rows - area.Max.Y
	}
	y0, y1 := uint16(y), uint16(y+area.Dy()-1)
	w.yStart, w.yEnd = orderRange(y0, y1, opts.DataEntryMode&entryYIncrement != 0)

	return w, nil
}

// commands returns the register writes that program the window and park
// the address counters on its start.
func (w ramWindow) commands() []command {
	var x, y [4]byte
	binary.LittleEndian.PutUint16(x[0:], w.xStart)
	binary.LittleEndian.PutUint16(x[2:], w.xEnd)
	binary.LittleEndian.PutUint16(y[0:], w.yStart)
	binary.LittleEndian.PutUint16(y[2:], w.yEnd)

	return []command{
		{op: dataEntryModeSetting, data: []byte{w.entryMode}},
		{op: setRAMXAddressStartEnd, data: x[:]},
		{op: setRAMYAddressStartEnd, data: y[:]},
		{op: setRAMXAddressCounter, data: x[:2]},
		{op: setRAMYAddressCounter, data: y[:2]},
	}
}

func setRAMWindow(ctrl controller, w ramWindow) {
	for _, c := range w.commands() {
		ctrl.sendCommand(c.op)
		ctrl.sendData(c.data)
	}
}
