// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"errors"
	"fmt"
	"image"
	"time"
)

// Controller limits.
const (
	MaxGateOutputs   = 680
	MaxSourceOutputs = 960
)

// Dimensions describes the physical, unrotated panel. Rows are gate
// outputs, columns are source outputs.
type Dimensions struct {
	Rows int
	Cols int
}

// NewDimensions validates the panel size against the controller limits.
func NewDimensions(rows, cols int) (Dimensions, error) {
	d := Dimensions{Rows: rows, Cols: cols}
	if err := d.validate(); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}

func (d Dimensions) validate() error {
	if d.Rows < 1 || d.Rows > MaxGateOutputs || d.Cols < 8 || d.Cols > MaxSourceOutputs || d.Cols%8 != 0 {
		return &DimensionsError{Rows: d.Rows, Cols: d.Cols}
	}
	return nil
}

// BufferSize returns the size in bytes of one full-frame plane.
func (d Dimensions) BufferSize() int {
	return d.Rows * d.Cols / 8
}

// Bounds returns the physical panel rectangle, columns on the X axis.
func (d Dimensions) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Cols, d.Rows)
}

// Rotation of the logical drawing surface, clockwise.
type Rotation uint8

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case Rotate0:
		return "0"
	case Rotate90:
		return "90"
	case Rotate180:
		return "180"
	case Rotate270:
		return "270"
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// XAddressing selects the unit of the RAM X address registers. Panels differ
// in whether the X window is programmed in pixels or in bytes.
type XAddressing uint8

const (
	Pixels XAddressing = iota
	Bytes
)

// RefreshMode selects the waveform used for an update.
type RefreshMode uint8

const (
	// Full uses the waveform stored in the controller OTP. Slowest, no
	// ghosting.
	Full RefreshMode = iota
	// Partial uses the loaded two-phase waveform.
	Partial
	// Fast uses the loaded single-phase waveform. Fastest, may ghost on high
	// contrast transitions.
	Fast
)

func (m RefreshMode) String() string {
	switch m {
	case Full:
		return "full"
	case Partial:
		return "partial"
	case Fast:
		return "fast"
	}
	return fmt.Sprintf("RefreshMode(%d)", uint8(m))
}

// SleepMode is the argument of the deep sleep command.
type SleepMode byte

const (
	// SleepNormal does not retain RAM.
	SleepNormal SleepMode = 0x00
	// SleepPreserveRAM retains both RAM planes.
	SleepPreserveRAM SleepMode = 0x01
	// SleepPreserveRAMAndAnalog retains RAM and keeps the analog block on.
	SleepPreserveRAMAndAnalog SleepMode = 0x03
)

// Opts defines the panel configuration. Use DefaultOpts or one of the
// presets and override what the panel needs.
type Opts struct {
	Dimensions Dimensions
	Rotation   Rotation

	// Panel wiring.
	DataEntryMode byte
	XAddressing   XAddressing
	YInverted     bool

	// Registers written by Init.
	Booster      [5]byte
	GateScanning byte
	Border       byte
	VCOM         byte
	TempSensor   byte
	ClearBW      byte
	ClearRed     byte

	// displayUpdateControl2 values per refresh mode.
	FullUpdate    byte
	PartialUpdate byte
	FastUpdate    byte
	PowerOn       byte
	PowerOff      byte

	// Busy line handling.
	BusyActiveLow bool
	PollInterval  time.Duration
	// MaxPolls bounds the busy wait. It must be at least 1.
	MaxPolls int
}

// DefaultOpts returns the register defaults for an SSD1677 panel of the
// given size.
func DefaultOpts(d Dimensions) Opts {
	return Opts{
		Dimensions:    d,
		Rotation:      Rotate0,
		DataEntryMode: 0x01,
		XAddressing:   Pixels,
		Booster:       [5]byte{0xAE, 0xC7, 0xC3, 0xC0, 0x40},
		GateScanning:  0x02,
		Border:        0x01,
		VCOM:          0x3C,
		TempSensor:    0x80,
		ClearBW:       0xFF,
		ClearRed:      0x00,
		FullUpdate: displayUpdateEnableAnalog | displayUpdateEnableClock | displayUpdateLoadTemperature |
			displayUpdateLoadLUTFromOTP | displayUpdateDisplay | displayUpdateDisableAnalog | displayUpdateDisableClock,
		PartialUpdate: displayUpdateEnableAnalog | displayUpdateEnableClock | displayUpdateDisplay |
			displayUpdateDisableAnalog | displayUpdateDisableClock,
		FastUpdate: displayUpdateEnableAnalog | displayUpdateEnableClock | displayUpdateDisplay |
			displayUpdateDisableAnalog | displayUpdateDisableClock,
		PowerOn:      displayUpdateEnableClock | displayUpdateEnableAnalog,
		PowerOff:     displayUpdateDisableClock | displayUpdateDisableAnalog,
		PollInterval: time.Millisecond,
		MaxPolls:     30000,
	}
}

// EPD4in26 contains display configuration for the 4.26" 800x480 panel.
var EPD4in26 = DefaultOpts(Dimensions{Rows: 480, Cols: 800})

// EPD3in7 contains display configuration for the 3.7" 280x480 panel.
var EPD3in7 = DefaultOpts(Dimensions{Rows: 480, Cols: 280})

// Validate checks the configuration before a Dev is built on it.
func (o *Opts) Validate() error {
	if err := o.Dimensions.validate(); err != nil {
		return err
	}
	if o.Rotation > Rotate270 {
		return fmt.Errorf("ssd1677: unknown rotation %v", o.Rotation)
	}
	if o.XAddressing > Bytes {
		return fmt.Errorf("ssd1677: unknown X addressing %d", o.XAddressing)
	}
	if o.DataEntryMode&^0x07 != 0 {
		return fmt.Errorf("ssd1677: data entry mode %#02x uses reserved bits", o.DataEntryMode)
	}
	if o.PollInterval < 0 {
		return errors.New("ssd1677: negative poll interval")
	}
	if o.MaxPolls < 1 {
		return errors.New("ssd1677: busy poll limit must be at least 1")
	}
	return nil
}

// Bounds returns the logical drawing rectangle after rotation.
func (o *Opts) Bounds() image.Rectangle {
	switch o.Rotation {
	case Rotate90, Rotate270:
		return image.Rect(0, 0, o.Dimensions.Rows, o.Dimensions.Cols)
	}
	return image.Rect(0, 0, o.Dimensions.Cols, o.Dimensions.Rows)
}

func (o *Opts) updateControl2(mode RefreshMode) byte {
	switch mode {
	case Partial:
		return o.PartialUpdate
	case Fast:
		return o.FastUpdate
	}
	return o.FullUpdate
}
