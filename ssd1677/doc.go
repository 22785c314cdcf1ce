// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1677 controls e-paper panels driven by the Solomon Systech
// SSD1677 controller, such as the Waveshare and Good Display 3.7" and
// 4.26" black/white/red modules.
//
// The controller has two RAM planes. The black/white plane always carries
// the image. The red plane either carries a red layer or, for black/white
// panels, a copy of the previous frame which the fast waveform compares
// against. Dev keeps that copy in sync so callers only supply the planes
// they actually use.
//
// Datasheets
//
// https://www.good-display.com/public/html/pdfjs/viewer/viewernew.html?file=https://v4.cecdn.yun300.cn/100001_1909185148/SSD1677.pdf
//
// Product page:
//
// 4.26 Inch: https://www.waveshare.com/wiki/4.26inch_e-Paper_HAT
//
package ssd1677
