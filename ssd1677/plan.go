// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

// redPlan is how an update treats the red RAM plane. It is chosen once per
// update.
type redPlan uint8

const (
	// redExplicit writes the caller's red plane and refreshes with both
	// planes active.
	redExplicit redPlan = iota
	// redMirrorBypass copies the black/white plane into red RAM and
	// refreshes with red bypassed. Full and Partial updates without red.
	redMirrorBypass
	// redMirrorResync copies the black/white plane into red RAM, refreshes
	// with both planes active and copies it again afterwards so the next
	// fast update compares against the frame now on screen.
	redMirrorResync
)

func (p redPlan) String() string {
	switch p {
	case redExplicit:
		return "explicit"
	case redMirrorBypass:
		return "mirror-bypass"
	case redMirrorResync:
		return "mirror-resync"
	}
	return "unknown"
}

// isExplicitRed reports whether red carries a red layer. Empty and all-zero
// planes mean black/white only.
func isExplicitRed(red []byte) bool {
	for _, b := range red {
		if b != 0 {
			return true
		}
	}
	return false
}

func planRed(mode RefreshMode, red []byte) redPlan {
	switch {
	case isExplicitRed(red):
		return redExplicit
	case mode == Fast:
		return redMirrorResync
	}
	return redMirrorBypass
}

// updateControl1 returns the displayUpdateControl1 value for the refresh.
func (p redPlan) updateControl1() byte {
	if p == redMirrorBypass {
		return updateControl1BypassRed
	}
	return updateControl1Normal
}
