// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

// Waveform table sizes.
const (
	LUTSize      = 112
	ShortLUTSize = 105
)

// LUTPartial is the two-phase waveform used for Partial updates.
var LUTPartial = [LUTSize]byte{
	// Voltage select, BB BW WB WW VCOM.
	0x2A, 0x60, 0x15, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x20, 0x60, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x10, 0x60, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// Phase timing TPA TPB TPC TPD repeat, groups 0 to 9.
	0x0F, 0x0F, 0x00, 0x00, 0x01,
	0x02, 0x02, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	// Frame rate.
	0x22, 0x22, 0x22, 0x22, 0x22,
	// XON, gate voltage, source voltage, VCOM.
	0x00, 0x00, 0x17, 0x41, 0xA8, 0x32, 0x30,
}

// LUTFast is the single-phase waveform used for Fast updates. Pixels that do
// not change between the red (previous) and black/white (next) planes are
// not driven.
var LUTFast = [LUTSize]byte{
	// Voltage select, BB BW WB WW VCOM.
	0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// Phase timing TPA TPB TPC TPD repeat, groups 0 to 9.
	0x0C, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	// Frame rate.
	0x22, 0x22, 0x22, 0x22, 0x22,
	// XON, gate voltage, source voltage, VCOM.
	0x00, 0x00, 0x17, 0x41, 0xA8, 0x32, 0x30,
}

func builtinLUT(mode RefreshMode) []byte {
	switch mode {
	case Partial:
		return LUTPartial[:]
	case Fast:
		return LUTFast[:]
	}
	return nil
}
