// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epaper is a container for the SSD1677 e-paper driver and the tools
// built on it.
//
// See ssd1677 for the driver, screen2d for a terminal preview and
// cmd/epdctl for a command line front end.
package epaper
