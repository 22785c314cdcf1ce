// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

type controller interface {
	reset()
	sendCommand(byte)
	sendData([]byte)
	waitUntilIdle()
}

func initDisplay(ctrl controller, opts *Opts) {
	ctrl.reset()
	ctrl.sendCommand(swReset)
	ctrl.waitUntilIdle()

	ctrl.sendCommand(tempSensorControl)
	ctrl.sendData([]byte{opts.TempSensor})

	ctrl.sendCommand(boosterSoftStartControl)
	ctrl.sendData(opts.Booster[:])

	lastRow := opts.Dimensions.Rows - 1
	ctrl.sendCommand(driverOutputControl)
	ctrl.sendData([]byte{
		byte(lastRow & 0xFF),
		byte(lastRow >> 8),
		opts.GateScanning,
	})

	ctrl.sendCommand(borderWaveformControl)
	ctrl.sendData([]byte{opts.Border})

	ctrl.sendCommand(vcomRegisterWrite)
	ctrl.sendData([]byte{opts.VCOM})

	clearRAM(ctrl, opts)
}

// clearRAM fills both planes with the configured patterns using the
// controller's auto write.
func clearRAM(ctrl controller, opts *Opts) {
	ctrl.sendCommand(autoWriteBWRAMRegPattern)
	ctrl.sendData([]byte{opts.ClearBW})
	ctrl.waitUntilIdle()

	ctrl.sendCommand(autoWriteRedRAMRegPattern)
	ctrl.sendData([]byte{opts.ClearRed})
	ctrl.waitUntilIdle()
}

func writePlane(ctrl controller, cmd byte, data []byte) {
	ctrl.sendCommand(cmd)
	ctrl.sendData(data)
}

func loadLUT(ctrl controller, lut []byte) {
	ctrl.sendCommand(writeLutRegister)
	ctrl.sendData(lut)
}

func loadShortLUT(ctrl controller, lut []byte, gate byte, source [3]byte, vcom byte) {
	loadLUT(ctrl, lut)
	setGateVoltage(ctrl, gate)
	setSourceVoltage(ctrl, source)
	setVCOM(ctrl, vcom)
}

func setGateVoltage(ctrl controller, v byte) {
	ctrl.sendCommand(gateDrivingVoltageControl)
	ctrl.sendData([]byte{v})
}

func setSourceVoltage(ctrl controller, v [3]byte) {
	ctrl.sendCommand(sourceDrivingVoltageControl)
	ctrl.sendData(v[:])
}

func setVCOM(ctrl controller, v byte) {
	ctrl.sendCommand(vcomRegisterWrite)
	ctrl.sendData([]byte{v})
}

// refresh runs the waveform for mode and returns the resulting power state.
// The power-on bits are added when the analog block is off, the power-off
// bits when turnOff is set.
func refresh(ctrl controller, opts *Opts, mode RefreshMode, control1 byte, poweredOn, turnOff bool) bool {
	control2 := opts.updateControl2(mode)
	if !poweredOn {
		control2 |= opts.PowerOn
	}
	if turnOff {
		control2 |= opts.PowerOff
	}

	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData([]byte{control1})

	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendData([]byte{control2})

	ctrl.sendCommand(masterActivation)
	ctrl.waitUntilIdle()

	return !turnOff
}

// powerDown switches off the clock and analog block without touching the
// panel.
func powerDown(ctrl controller, opts *Opts) {
	ctrl.sendCommand(displayUpdateControl1)
	ctrl.sendData([]byte{updateControl1BypassRed})

	ctrl.sendCommand(displayUpdateControl2)
	ctrl.sendData([]byte{opts.PowerOff})

	ctrl.sendCommand(masterActivation)
	ctrl.waitUntilIdle()
}

func deepSleep(ctrl controller, opts *Opts, poweredOn bool, mode SleepMode) {
	if poweredOn {
		powerDown(ctrl, opts)
	}

	ctrl.sendCommand(deepSleepMode)
	ctrl.sendData([]byte{byte(mode)})
}

// areaUpdate is a validated update. Planes are already cut to the area size.
type areaUpdate struct {
	window ramWindow
	mode   RefreshMode
	plan   redPlan
	black  []byte
	red    []byte
	lut    []byte
}

// updateArea streams the planes of u and refreshes. It returns the resulting
// power state.
func updateArea(ctrl controller, opts *Opts, u *areaUpdate, poweredOn bool) bool {
	if u.lut != nil {
		loadLUT(ctrl, u.lut)
	}

	setRAMWindow(ctrl, u.window)
	writePlane(ctrl, writeRAMBW, u.black)

	if u.plan == redExplicit {
		writePlane(ctrl, writeRAMRed, u.red)
	} else {
		writePlane(ctrl, writeRAMRed, u.black)
	}

	poweredOn = refresh(ctrl, opts, u.mode, u.plan.updateControl1(), poweredOn, false)

	if u.plan == redMirrorResync {
		setRAMWindow(ctrl, u.window)
		writePlane(ctrl, writeRAMRed, u.black)
	}

	return poweredOn
}
