// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"errors"
	"fmt"
	"image"
)

// ErrTimeout is returned when the busy line did not report ready within
// Opts.MaxPolls polls. It is always wrapped in a TransportError.
var ErrTimeout = errors.New("ssd1677: timed out waiting for busy line")

// ErrAsleep is returned by every operation that talks to the controller
// while it is in deep sleep. Init wakes it up.
var ErrAsleep = errors.New("ssd1677: controller is in deep sleep, call Init")

// TransportError wraps a failure of the underlying Transport. The controller
// may be left partially programmed; call Init before reuse.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ssd1677: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DimensionsError reports panel dimensions the controller cannot drive.
type DimensionsError struct {
	Rows, Cols int
}

func (e *DimensionsError) Error() string {
	return fmt.Sprintf("ssd1677: invalid dimensions %d rows x %d cols (rows 1..%d, cols 8..%d and a multiple of 8)",
		e.Rows, e.Cols, MaxGateOutputs, MaxSourceOutputs)
}

// RegionError reports an update area the RAM window cannot be programmed
// for. It is returned before anything is sent to the controller.
type RegionError struct {
	Area   image.Rectangle
	Reason string
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("ssd1677: invalid region %v: %s", e.Area, e.Reason)
}

// BufferTooSmallError reports a plane buffer shorter than the area it has to
// cover.
type BufferTooSmallError struct {
	Plane    string
	Required int
	Provided int
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("ssd1677: %s buffer too small: required %d bytes, provided %d", e.Plane, e.Required, e.Provided)
}

// LUTLengthError reports a waveform table of the wrong size.
type LUTLengthError struct {
	Short    bool
	Expected int
	Provided int
}

func (e *LUTLengthError) Error() string {
	kind := "LUT"
	if e.Short {
		kind = "short LUT"
	}
	return fmt.Sprintf("ssd1677: invalid %s length: expected %d bytes, provided %d", kind, e.Expected, e.Provided)
}
