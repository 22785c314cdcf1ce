// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677

import (
	"errors"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestOrderRange(t *testing.T) {
	for _, tc := range []struct {
		name              string
		start, end        uint16
		increment         bool
		wantFirst, wantTo uint16
	}{
		{name: "increment", start: 3, end: 9, increment: true, wantFirst: 3, wantTo: 9},
		{name: "decrement", start: 3, end: 9, wantFirst: 9, wantTo: 3},
		{name: "single", start: 5, end: 5, wantFirst: 5, wantTo: 5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			first, to := orderRange(tc.start, tc.end, tc.increment)

			if first != tc.wantFirst || to != tc.wantTo {
				t.Errorf("orderRange(%d, %d, %t) = (%d, %d), want (%d, %d)",
					tc.start, tc.end, tc.increment, first, to, tc.wantFirst, tc.wantTo)
			}
		})
	}
}

func TestCheckArea(t *testing.T) {
	square := Dimensions{Rows: 480, Cols: 480}

	for _, tc := range []struct {
		name    string
		area    image.Rectangle
		wantErr bool
	}{
		{name: "full panel", area: image.Rect(0, 0, 480, 480)},
		{name: "aligned block", area: image.Rect(8, 3, 16, 4)},
		{name: "zero width", area: image.Rect(0, 0, 0, 100), wantErr: true},
		{name: "zero height", area: image.Rect(0, 0, 100, 0), wantErr: true},
		{name: "inverted", area: image.Rectangle{Min: image.Pt(16, 0), Max: image.Pt(8, 8)}, wantErr: true},
		{name: "too wide", area: image.Rect(8, 0, 488, 8), wantErr: true},
		{name: "too tall", area: image.Rect(0, 472, 8, 488), wantErr: true},
		{name: "negative origin", area: image.Rect(-8, 0, 8, 8), wantErr: true},
		{name: "misaligned x", area: image.Rect(4, 0, 12, 8), wantErr: true},
		{name: "misaligned width", area: image.Rect(0, 0, 12, 8), wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := checkArea(tc.area, square)

			if !tc.wantErr {
				if err != nil {
					t.Errorf("checkArea(%v) failed: %v", tc.area, err)
				}
				return
			}

			var regionErr *RegionError
			if !errors.As(err, &regionErr) {
				t.Fatalf("checkArea(%v) = %v, want RegionError", tc.area, err)
			}
			if regionErr.Area != tc.area {
				t.Errorf("RegionError.Area = %v, want %v", regionErr.Area, tc.area)
			}
		})
	}
}

func TestNewRAMWindow(t *testing.T) {
	block := image.Rect(8, 16, 72, 48)

	for _, tc := range []struct {
		name   string
		opts   func(*Opts)
		area   image.Rectangle
		want   ramWindow
		errors bool
	}{
		{
			name: "defaults",
			area: block,
			want: ramWindow{entryMode: 0x01, xStart: 8, xEnd: 71, yStart: 47, yEnd: 16},
		},
		{
			name: "full panel",
			area: image.Rect(0, 0, 800, 480),
			want: ramWindow{entryMode: 0x01, xStart: 0, xEnd: 799, yStart: 479, yEnd: 0},
		},
		{
			name: "bytes, both increment",
			opts: func(o *Opts) {
				o.XAddressing = Bytes
				o.DataEntryMode = 0x03
			},
			area: block,
			want: ramWindow{entryMode: 0x03, xStart: 1, xEnd: 8, yStart: 16, yEnd: 47},
		},
		{
			name: "y inverted, both increment",
			opts: func(o *Opts) {
				o.YInverted = true
				o.DataEntryMode = 0x03
			},
			area: block,
			want: ramWindow{entryMode: 0x03, xStart: 8, xEnd: 71, yStart: 432, yEnd: 463},
		},
		{
			name: "both decrement",
			opts: func(o *Opts) {
				o.DataEntryMode = 0x00
			},
			area: block,
			want: ramWindow{entryMode: 0x00, xStart: 71, xEnd: 8, yStart: 47, yEnd: 16},
		},
		{
			name: "y inverted, x decrement",
			opts: func(o *Opts) {
				o.YInverted = true
				o.DataEntryMode = 0x02
			},
			area: block,
			want: ramWindow{entryMode: 0x02, xStart: 71, xEnd: 8, yStart: 432, yEnd: 463},
		},
		{
			name: "address mode bit kept",
			opts: func(o *Opts) {
				o.DataEntryMode = 0x07
				o.XAddressing = Bytes
			},
			area: image.Rect(0, 0, 800, 480),
			want: ramWindow{entryMode: 0x07, xStart: 0, xEnd: 99, yStart: 0, yEnd: 479},
		},
		{
			name:   "outside",
			area:   image.Rect(0, 0, 808, 8),
			errors: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opts := EPD4in26
			if tc.opts != nil {
				tc.opts(&opts)
			}

			got, err := newRAMWindow(tc.area, &opts)

			if tc.errors {
				var regionErr *RegionError
				if !errors.As(err, &regionErr) {
					t.Errorf("newRAMWindow() = %v, want RegionError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("newRAMWindow() failed: %v", err)
			}

			if diff := cmp.Diff(got, tc.want, cmp.AllowUnexported(ramWindow{})); diff != "" {
				t.Errorf("newRAMWindow() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestSetRAMWindow(t *testing.T) {
	for _, tc := range []struct {
		name   string
		window ramWindow
		want   []record
	}{
		{
			name:   "square panel",
			window: ramWindow{entryMode: 0x01, xStart: 0, xEnd: 479, yStart: 479, yEnd: 0},
			want: []record{
				{cmd: dataEntryModeSetting, data: []byte{0x01}},
				{cmd: setRAMXAddressStartEnd, data: []byte{0x00, 0x00, 0xDF, 0x01}},
				{cmd: setRAMYAddressStartEnd, data: []byte{0xDF, 0x01, 0x00, 0x00}},
				{cmd: setRAMXAddressCounter, data: []byte{0x00, 0x00}},
				{cmd: setRAMYAddressCounter, data: []byte{0xDF, 0x01}},
			},
		},
		{
			name:   "inverted block",
			window: ramWindow{entryMode: 0x02, xStart: 71, xEnd: 8, yStart: 432, yEnd: 463},
			want: []record{
				{cmd: dataEntryModeSetting, data: []byte{0x02}},
				{cmd: setRAMXAddressStartEnd, data: []byte{0x47, 0x00, 0x08, 0x00}},
				{cmd: setRAMYAddressStartEnd, data: []byte{0xB0, 0x01, 0xCF, 0x01}},
				{cmd: setRAMXAddressCounter, data: []byte{0x47, 0x00}},
				{cmd: setRAMYAddressCounter, data: []byte{0xB0, 0x01}},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got fakeController

			setRAMWindow(&got, tc.window)

			if diff := cmp.Diff([]record(got), tc.want, cmpopts.EquateEmpty(), cmp.AllowUnexported(record{})); diff != "" {
				t.Errorf("setRAMWindow() difference (-got +want):\n%s", diff)
			}
		})
	}
}
