// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Transport moves command and data bytes to the controller. Implementations
// frame commands and data (D/C line, chip select), drive the reset line and
// watch the busy line.
type Transport interface {
	// SendCommand sends one opcode.
	SendCommand(cmd byte) error
	// SendData sends zero or more parameter or RAM bytes.
	SendData(data []byte) error
	// Reset pulses the hardware reset line.
	Reset() error
	// WaitUntilIdle blocks until the busy line reports ready. It returns an
	// error wrapping ErrTimeout when the controller stays busy.
	WaitUntilIdle() error
}

// SPITransport is a Transport over a periph SPI port and GPIO pins.
type SPITransport struct {
	c conn.Conn

	dc   gpio.PinOut
	cs   gpio.PinOut
	rst  gpio.PinOut
	busy gpio.PinIn

	busyLevel    gpio.Level
	pollInterval time.Duration
	maxPolls     int
	maxTxSize    int
}

// NewSPITransport connects to the controller. cs may be gpio.INVALID when
// the SPI port drives chip select itself.
func NewSPITransport(p spi.Port, dc, cs, rst gpio.PinOut, busy gpio.PinIn, opts *Opts) (*SPITransport, error) {
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1677: failed to connect over spi: %w", err)
	}

	if err := busy.In(gpio.Float, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("ssd1677: failed to set up busy pin: %w", err)
	}

	// Get the maxTxSize from the conn if it implements the conn.Limits
	// interface, otherwise use 4096 bytes.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize <= 0 {
		maxTxSize = 4096
	}

	t := &SPITransport{
		c:            c,
		dc:           dc,
		cs:           cs,
		rst:          rst,
		busy:         busy,
		busyLevel:    gpio.High,
		pollInterval: opts.PollInterval,
		maxPolls:     opts.MaxPolls,
		maxTxSize:    maxTxSize,
	}
	if opts.BusyActiveLow {
		t.busyLevel = gpio.Low
	}
	return t, nil
}

func (t *SPITransport) String() string {
	return fmt.Sprintf("%s, %s", t.c, t.dc)
}

// SendCommand implements Transport.
func (t *SPITransport) SendCommand(cmd byte) error {
	return t.write(gpio.Low, []byte{cmd})
}

// SendData implements Transport.
func (t *SPITransport) SendData(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return t.write(gpio.High, data)
}

func (t *SPITransport) write(dc gpio.Level, b []byte) error {
	if err := t.dc.Out(dc); err != nil {
		return err
	}
	if err := t.csOut(gpio.Low); err != nil {
		return err
	}
	for len(b) > 0 {
		n := len(b)
		if n > t.maxTxSize {
			n = t.maxTxSize
		}
		if err := t.c.Tx(b[:n], nil); err != nil {
			_ = t.csOut(gpio.High)
			return err
		}
		b = b[n:]
	}
	return t.csOut(gpio.High)
}

func (t *SPITransport) csOut(l gpio.Level) error {
	if t.cs == nil || t.cs == gpio.INVALID {
		return nil
	}
	return t.cs.Out(l)
}

// Reset implements Transport.
func (t *SPITransport) Reset() error {
	if err := t.rst.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	if err := t.rst.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	return nil
}

// WaitUntilIdle implements Transport.
func (t *SPITransport) WaitUntilIdle() error {
	for polls := 0; t.busy.Read() == t.busyLevel; polls++ {
		if polls >= t.maxPolls {
			return ErrTimeout
		}
		time.Sleep(t.pollInterval)
	}
	return nil
}

var _ Transport = &SPITransport{}
