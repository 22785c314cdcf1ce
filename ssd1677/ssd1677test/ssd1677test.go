// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1677test implements an in-memory ssd1677.Transport that
// records every byte sent to it.
package ssd1677test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/GermanBionicSystems/epaper/ssd1677"
)

// Record is one command with the data sent after it.
type Record struct {
	Cmd  byte
	Data []byte
}

// Recorder implements ssd1677.Transport by recording commands.
type Recorder struct {
	sync.Mutex

	Records []Record
	Resets  int
	Waits   int

	// Busy makes every WaitUntilIdle fail with ssd1677.ErrTimeout.
	Busy bool
	// FailAt makes the FailAt-th operation (1-based, counting commands, data,
	// resets and waits) and all following ones return Err. Zero disables it.
	FailAt int
	Err    error

	ops int
}

func (r *Recorder) String() string {
	return "recorder"
}

func (r *Recorder) step() error {
	r.ops++
	if r.FailAt > 0 && r.ops >= r.FailAt {
		if r.Err == nil {
			return errors.New("ssd1677test: injected failure")
		}
		return r.Err
	}
	return nil
}

// SendCommand implements ssd1677.Transport.
func (r *Recorder) SendCommand(cmd byte) error {
	r.Lock()
	defer r.Unlock()
	if err := r.step(); err != nil {
		return err
	}
	r.Records = append(r.Records, Record{Cmd: cmd})
	return nil
}

// SendData implements ssd1677.Transport. The data is copied.
func (r *Recorder) SendData(data []byte) error {
	r.Lock()
	defer r.Unlock()
	if err := r.step(); err != nil {
		return err
	}
	if len(r.Records) == 0 {
		return fmt.Errorf("ssd1677test: %d data bytes sent before any command", len(data))
	}
	cur := &r.Records[len(r.Records)-1]
	cur.Data = append(cur.Data, data...)
	return nil
}

// Reset implements ssd1677.Transport.
func (r *Recorder) Reset() error {
	r.Lock()
	defer r.Unlock()
	if err := r.step(); err != nil {
		return err
	}
	r.Resets++
	return nil
}

// WaitUntilIdle implements ssd1677.Transport.
func (r *Recorder) WaitUntilIdle() error {
	r.Lock()
	defer r.Unlock()
	if err := r.step(); err != nil {
		return err
	}
	r.Waits++
	if r.Busy {
		return ssd1677.ErrTimeout
	}
	return nil
}

// Commands returns the recorded opcodes in order.
func (r *Recorder) Commands() []byte {
	r.Lock()
	defer r.Unlock()
	cmds := make([]byte, 0, len(r.Records))
	for _, rec := range r.Records {
		cmds = append(cmds, rec.Cmd)
	}
	return cmds
}

// Clear forgets everything recorded so far.
func (r *Recorder) Clear() {
	r.Lock()
	defer r.Unlock()
	r.Records = nil
	r.Resets = 0
	r.Waits = 0
}

var _ ssd1677.Transport = &Recorder{}
