// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

// Commands
const (
	driverOutputControl         byte = 0x01
	gateDrivingVoltageControl   byte = 0x03
	sourceDrivingVoltageControl byte = 0x04
	boosterSoftStartControl     byte = 0x0C
	deepSleepMode               byte = 0x10
	dataEntryModeSetting        byte = 0x11
	swReset                     byte = 0x12
	tempSensorControl           byte = 0x18
	masterActivation            byte = 0x20
	displayUpdateControl1       byte = 0x21
	displayUpdateControl2       byte = 0x22
	writeRAMBW                  byte = 0x24
	writeRAMRed                 byte = 0x26
	vcomRegisterWrite           byte = 0x2C
	writeLutRegister            byte = 0x32
	borderWaveformControl       byte = 0x3C
	setRAMXAddressStartEnd      byte = 0x44
	setRAMYAddressStartEnd      byte = 0x45
	autoWriteBWRAMRegPattern    byte = 0x46
	autoWriteRedRAMRegPattern   byte = 0x47
	setRAMXAddressCounter       byte = 0x4E
	setRAMYAddressCounter       byte = 0x4F
)

// Values for the displayUpdateControl1 command.
const (
	// Both RAM planes take part in the refresh.
	updateControl1Normal byte = 0x00
	// The red plane is ignored and read as zero.
	updateControl1BypassRed byte = 0x40
)

// Flags for the displayUpdateControl2 command
const (
	displayUpdateDisableClock byte = 1 << iota
	displayUpdateDisableAnalog
	displayUpdateDisplay
	displayUpdateMode2
	displayUpdateLoadLUTFromOTP
	displayUpdateLoadTemperature
	displayUpdateEnableClock
	displayUpdateEnableAnalog
)
