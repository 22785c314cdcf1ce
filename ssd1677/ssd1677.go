// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/rpi"
)

// Dev defines the handler which is used to access the display.
//
// Dev is not safe for concurrent use. Every method runs to completion,
// blocking on the busy line where the controller needs it.
type Dev struct {
	t    Transport
	opts Opts

	poweredOn bool
	asleep    bool

	frame *Frame
	mode  RefreshMode
}

// RegionUpdate describes the update of part of the panel. Area is in
// physical panel coordinates; its X origin and width must be multiples of 8.
// Black and Red hold (Area.Dx()/8)*Area.Dy() bytes each, row-major. Red may
// be nil or all zero for black/white only updates.
type RegionUpdate struct {
	Area  image.Rectangle
	Black []byte
	Red   []byte
	Mode  RefreshMode
}

type lutSource uint8

const (
	lutNone lutSource = iota
	lutBuiltin
	lutCustom
)

// New creates new handler which is used to access the display.
func New(p spi.Port, dc, cs, rst gpio.PinOut, busy gpio.PinIn, opts *Opts) (*Dev, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	t, err := NewSPITransport(p, dc, cs, rst, busy, opts)
	if err != nil {
		return nil, err
	}
	return NewWithTransport(t, opts)
}

// NewHat creates new handler which is used to access the display. Default
// Waveshare Hat configuration is used.
func NewHat(p spi.Port, opts *Opts) (*Dev, error) {
	dc := rpi.P1_22
	cs := rpi.P1_24
	rst := rpi.P1_11
	busy := rpi.P1_18
	return New(p, dc, cs, rst, busy, opts)
}

// NewWithTransport creates a handler on top of an arbitrary Transport.
func NewWithTransport(t Transport, opts *Opts) (*Dev, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	d := &Dev{
		t:    t,
		opts: *opts,
		mode: Full,
	}
	d.frame = NewFrame(&d.opts)
	return d, nil
}

// Init resets the controller, programs the panel registers and clears both
// RAM planes. It is also the only way out of deep sleep.
func (d *Dev) Init() error {
	eh := errorHandler{t: d.t}

	initDisplay(&eh, &d.opts)
	d.poweredOn = false
	d.asleep = false

	return eh.err
}

// Reset pulses the hardware reset line. The controller needs Init
// afterwards.
func (d *Dev) Reset() error {
	eh := errorHandler{t: d.t}

	eh.reset()
	d.poweredOn = false

	return eh.err
}

// Update sends full-frame planes and refreshes the panel with mode. Partial
// and Fast load the built-in waveform first.
func (d *Dev) Update(black, red []byte, mode RefreshMode) error {
	return d.update(d.fullFrame(black, red, mode), lutBuiltin, nil)
}

// UpdateNoLUT is like Update but keeps whatever waveform the controller
// currently uses, for panels relying on their OTP tables.
func (d *Dev) UpdateNoLUT(black, red []byte, mode RefreshMode) error {
	return d.update(d.fullFrame(black, red, mode), lutNone, nil)
}

// UpdateWithLUT is like Update but loads lut instead of the built-in
// waveform.
func (d *Dev) UpdateWithLUT(black, red []byte, mode RefreshMode, lut []byte) error {
	return d.update(d.fullFrame(black, red, mode), lutCustom, lut)
}

// UpdateRegion sends and refreshes part of the panel.
func (d *Dev) UpdateRegion(u RegionUpdate) error {
	return d.update(&u, lutBuiltin, nil)
}

// UpdateRegionNoLUT is UpdateRegion without loading a waveform.
func (d *Dev) UpdateRegionNoLUT(u RegionUpdate) error {
	return d.update(&u, lutNone, nil)
}

// UpdateRegionWithLUT is UpdateRegion with a caller supplied waveform.
func (d *Dev) UpdateRegionWithLUT(u RegionUpdate, lut []byte) error {
	return d.update(&u, lutCustom, lut)
}

func (d *Dev) fullFrame(black, red []byte, mode RefreshMode) *RegionUpdate {
	return &RegionUpdate{
		Area:  d.opts.Dimensions.Bounds(),
		Black: black,
		Red:   red,
		Mode:  mode,
	}
}

// prepare validates u and resolves everything the update needs. Nothing is
// sent to the controller before it succeeds.
func (d *Dev) prepare(u *RegionUpdate, src lutSource, lut []byte) (*areaUpdate, error) {
	w, err := newRAMWindow(u.Area, &d.opts)
	if err != nil {
		return nil, err
	}

	size := areaBufferSize(u.Area)
	if len(u.Black) < size {
		return nil, &BufferTooSmallError{Plane: "black", Required: size, Provided: len(u.Black)}
	}

	a := &areaUpdate{
		window: w,
		mode:   u.Mode,
		plan:   planRed(u.Mode, u.Red),
		black:  u.Black[:size],
	}

	if a.plan == redExplicit {
		if len(u.Red) < size {
			return nil, &BufferTooSmallError{Plane: "red", Required: size, Provided: len(u.Red)}
		}
		a.red = u.Red[:size]
	}

	switch src {
	case lutBuiltin:
		a.lut = builtinLUT(u.Mode)
	case lutCustom:
		if len(lut) != LUTSize {
			return nil, &LUTLengthError{Expected: LUTSize, Provided: len(lut)}
		}
		a.lut = lut
	}

	return a, nil
}

func (d *Dev) update(u *RegionUpdate, src lutSource, lut []byte) error {
	if d.asleep {
		return ErrAsleep
	}
	a, err := d.prepare(u, src, lut)
	if err != nil {
		return err
	}

	eh := errorHandler{t: d.t}

	poweredOn := updateArea(&eh, &d.opts, a, d.poweredOn)
	if eh.err == nil {
		d.poweredOn = poweredOn
	}

	return eh.err
}

// FullRefresh refreshes the panel from the current RAM content with the OTP
// waveform.
func (d *Dev) FullRefresh() error {
	return d.refresh(Full)
}

// FastRefresh refreshes the panel from the current RAM content with the
// waveform loaded last.
func (d *Dev) FastRefresh() error {
	return d.refresh(Fast)
}

func (d *Dev) refresh(mode RefreshMode) error {
	if d.asleep {
		return ErrAsleep
	}
	eh := errorHandler{t: d.t}

	poweredOn := refresh(&eh, &d.opts, mode, updateControl1BypassRed, d.poweredOn, false)
	if eh.err == nil {
		d.poweredOn = poweredOn
	}

	return eh.err
}

// PowerOff switches off the controller's clock and analog block. It is a no-op
// when they are already off.
func (d *Dev) PowerOff() error {
	if d.asleep {
		return ErrAsleep
	}
	if !d.poweredOn {
		return nil
	}

	eh := errorHandler{t: d.t}

	powerDown(&eh, &d.opts)
	if eh.err == nil {
		d.poweredOn = false
	}

	return eh.err
}

// DeepSleep powers down and puts the controller in deep sleep. Only Init
// wakes it up again; until then every other operation returns ErrAsleep.
func (d *Dev) DeepSleep(mode SleepMode) error {
	if d.asleep {
		return ErrAsleep
	}
	eh := errorHandler{t: d.t}

	deepSleep(&eh, &d.opts, d.poweredOn, mode)
	if eh.err == nil {
		d.poweredOn = false
		d.asleep = true
	}

	return eh.err
}

// Sleep makes the controller enter deep sleep mode, retaining RAM. It can be
// woken up by calling Init again.
func (d *Dev) Sleep() error {
	return d.DeepSleep(SleepPreserveRAM)
}

// LoadLUT writes a full waveform table. lut must be LUTSize bytes.
func (d *Dev) LoadLUT(lut []byte) error {
	if len(lut) != LUTSize {
		return &LUTLengthError{Expected: LUTSize, Provided: len(lut)}
	}
	return d.write(func(ctrl controller) { loadLUT(ctrl, lut) })
}

// LoadShortLUT writes a ShortLUTSize waveform table followed by the voltage
// registers the short table leaves out.
func (d *Dev) LoadShortLUT(lut []byte, gate byte, source [3]byte, vcom byte) error {
	if len(lut) != ShortLUTSize {
		return &LUTLengthError{Short: true, Expected: ShortLUTSize, Provided: len(lut)}
	}
	return d.write(func(ctrl controller) { loadShortLUT(ctrl, lut, gate, source, vcom) })
}

// SetGateVoltage sets the gate driving voltage (VGH).
func (d *Dev) SetGateVoltage(v byte) error {
	return d.write(func(ctrl controller) { setGateVoltage(ctrl, v) })
}

// SetSourceVoltage sets the source driving voltages VSH1, VSH2 and VSL.
func (d *Dev) SetSourceVoltage(v [3]byte) error {
	return d.write(func(ctrl controller) { setSourceVoltage(ctrl, v) })
}

// SetVCOM sets the VCOM register.
func (d *Dev) SetVCOM(v byte) error {
	return d.write(func(ctrl controller) { setVCOM(ctrl, v) })
}

// write runs a register write unless the controller sleeps.
func (d *Dev) write(f func(ctrl controller)) error {
	if d.asleep {
		return ErrAsleep
	}
	eh := errorHandler{t: d.t}
	f(&eh)
	return eh.err
}

// PoweredOn reports whether the last refresh left the analog block on.
func (d *Dev) PoweredOn() bool {
	return d.poweredOn
}

// Asleep reports whether the controller is in deep sleep.
func (d *Dev) Asleep() bool {
	return d.asleep
}

// Dimensions returns the physical panel size.
func (d *Dev) Dimensions() Dimensions {
	return d.opts.Dimensions
}

// Rotation returns the rotation applied to drawing.
func (d *Dev) Rotation() Rotation {
	return d.opts.Rotation
}

// Opts returns a copy of the configuration.
func (d *Dev) Opts() Opts {
	return d.opts
}

// Frame returns the frame used by Draw. Changes to it are sent by the next
// Draw, Clear or Refresh.
func (d *Dev) Frame() *Frame {
	return d.frame
}

// SetUpdateMode changes the refresh mode used by Draw, Clear and Refresh.
// The vendor recommends a Full update at least every few Fast ones to
// remove ghosting.
func (d *Dev) SetUpdateMode(mode RefreshMode) {
	d.mode = mode
}

// Refresh sends the frame and refreshes the panel with the current update
// mode.
func (d *Dev) Refresh() error {
	return d.Update(d.frame.Black(), d.frame.Red(), d.mode)
}

// Clear fills the display with c.
func (d *Dev) Clear(c Color) error {
	d.frame.Clear(c)
	return d.Refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements display.Drawer. The bounds are rotated.
func (d *Dev) Bounds() image.Rectangle {
	return d.frame.Bounds()
}

// Draw implements display.Drawer. The image is composed into the frame and
// the whole frame is sent.
func (d *Dev) Draw(dstRect image.Rectangle, src image.Image, srcPts image.Point) error {
	draw.Src.Draw(d.frame, dstRect.Intersect(d.frame.Bounds()), src, srcPts)
	return d.Refresh()
}

// Halt implements conn.Resource. It clears the display with a full refresh.
func (d *Dev) Halt() error {
	d.frame.Clear(White)
	return d.Update(d.frame.Black(), d.frame.Red(), Full)
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	b := d.Bounds()
	return fmt.Sprintf("epd.Dev{%v, Width: %d, Height: %d}", d.t, b.Dx(), b.Dy())
}

var _ display.Drawer = &Dev{}
