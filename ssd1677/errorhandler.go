// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

// errorHandler is a wrapper for error management. It stops forwarding to
// the transport after the first failure and keeps that failure.
type errorHandler struct {
	t   Transport
	err error
}

func (eh *errorHandler) fail(op string, err error) {
	if err != nil {
		eh.err = &TransportError{Op: op, Err: err}
	}
}

func (eh *errorHandler) reset() {
	if eh.err != nil {
		return
	}
	eh.fail("reset", eh.t.Reset())
}

func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}
	eh.fail("send command", eh.t.SendCommand(cmd))
}

func (eh *errorHandler) sendData(data []byte) {
	if eh.err != nil {
		return
	}
	eh.fail("send data", eh.t.SendData(data))
}

func (eh *errorHandler) waitUntilIdle() {
	if eh.err != nil {
		return
	}
	eh.fail("wait for idle", eh.t.WaitUntilIdle())
}
