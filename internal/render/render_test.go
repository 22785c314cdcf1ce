// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/GermanBionicSystems/epaper/ssd1677"
)

func newFrame(t *testing.T, cols, rows int) *ssd1677.Frame {
	t.Helper()
	opts := ssd1677.DefaultOpts(ssd1677.Dimensions{Rows: rows, Cols: cols})
	return ssd1677.NewFrame(&opts)
}

func count(f *ssd1677.Frame, r image.Rectangle) map[ssd1677.Color]int {
	n := map[ssd1677.Color]int{}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			n[f.ColorAt(x, y)]++
		}
	}
	return n
}

func TestText(t *testing.T) {
	f := newFrame(t, 128, 64)

	if err := Text(f, []string{"!HEAD", "body"}, 16); err != nil {
		t.Fatalf("Text() failed: %v", err)
	}

	n := count(f, f.Bounds())
	if n[ssd1677.Red] == 0 {
		t.Error("no red pixel for the marked line")
	}
	if n[ssd1677.Black] == 0 {
		t.Error("no black pixel for the plain line")
	}
	if n[ssd1677.White] <= n[ssd1677.Black]+n[ssd1677.Red] {
		t.Errorf("background not white: %v", n)
	}

	// The top padding stays blank.
	if top := count(f, image.Rect(0, 0, 128, 2)); top[ssd1677.White] != 256 {
		t.Errorf("padding = %v, want only white", top)
	}
}

func TestTextEmpty(t *testing.T) {
	f := newFrame(t, 16, 2)
	f.Clear(ssd1677.Black)

	if err := Text(f, nil, 12); err != nil {
		t.Fatalf("Text() failed: %v", err)
	}

	if diff := cmp.Diff(count(f, f.Bounds()), map[ssd1677.Color]int{ssd1677.White: 32}); diff != "" {
		t.Errorf("Text() difference (-got +want):\n%s", diff)
	}
}

func TestImage(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  image.Rectangle
	}{
		{name: "upscaled", src: image.Rect(0, 0, 10, 10)},
		{name: "downscaled", src: image.Rect(0, 0, 100, 100)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFrame(t, 64, 32)
			src := image.NewNRGBA(tc.src)
			for y := tc.src.Min.Y; y < tc.src.Max.Y; y++ {
				for x := tc.src.Min.X; x < tc.src.Max.X; x++ {
					src.SetNRGBA(x, y, color.NRGBA{A: 0xFF})
				}
			}

			Image(f, src)

			for _, tc := range []struct {
				p    image.Point
				want ssd1677.Color
			}{
				{image.Pt(32, 16), ssd1677.Black},
				{image.Pt(20, 4), ssd1677.Black},
				{image.Pt(4, 16), ssd1677.White},
				{image.Pt(60, 16), ssd1677.White},
			} {
				if got := f.ColorAt(tc.p.X, tc.p.Y); got != tc.want {
					t.Errorf("ColorAt(%v) = %v, want %v", tc.p, got, tc.want)
				}
			}
		})
	}
}

func TestImageRed(t *testing.T) {
	f := newFrame(t, 16, 8)
	src := image.NewUniform(color.RGBA{R: 0xFF, A: 0xFF})

	Image(f, &boundedUniform{src, image.Rect(0, 0, 16, 8)})

	if diff := cmp.Diff(count(f, f.Bounds()), map[ssd1677.Color]int{ssd1677.Red: 128}); diff != "" {
		t.Errorf("Image() difference (-got +want):\n%s", diff)
	}
}

type boundedUniform struct {
	*image.Uniform
	r image.Rectangle
}

func (b *boundedUniform) Bounds() image.Rectangle { return b.r }

func TestFit(t *testing.T) {
	for _, tc := range []struct {
		src  image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 10, 10), image.Rect(0, 0, 32, 32)},
		{image.Rect(0, 0, 40, 10), image.Rect(0, 0, 64, 16)},
		{image.Rect(0, 0, 200, 200), image.Rect(0, 0, 32, 32)},
		{image.Rect(0, 0, 64, 32), image.Rect(0, 0, 64, 32)},
	} {
		got := fit(image.NewNRGBA(tc.src), 64, 32).Bounds()
		if got != tc.want {
			t.Errorf("fit(%v) = %v, want %v", tc.src, got, tc.want)
		}
	}
}
