// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1677_test

import (
	"image"
	"image/draw"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/epaper/ssd1677"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use spireg SPI bus registry to find the first available SPI bus.
	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ssd1677.NewHat(b, &ssd1677.EPD4in26)
	if err != nil {
		log.Fatalf("Failed to initialize driver: %v", err)
	}

	if err := dev.Init(); err != nil {
		log.Fatalf("Failed to initialize display: %v", err)
	}

	// Black text with a red headline on a white background.
	f := dev.Frame()
	f.Clear(ssd1677.White)
	drawer := font.Drawer{
		Dst:  f,
		Src:  &image.Uniform{ssd1677.Red},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, 20),
	}
	drawer.DrawString("Hello from periph!")
	drawer.Src = &image.Uniform{ssd1677.Black}
	drawer.Dot = fixed.P(8, 40)
	drawer.DrawString("SSD1677, 800x480")

	if err := dev.Refresh(); err != nil {
		log.Fatal(err)
	}

	if err := dev.Sleep(); err != nil {
		log.Fatal(err)
	}
}

func Example_fast() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	b, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	opts := ssd1677.EPD4in26
	opts.Rotation = ssd1677.Rotate90

	dev, err := ssd1677.NewHat(b, &opts)
	if err != nil {
		log.Fatalf("Failed to initialize driver: %v", err)
	}

	if err := dev.Init(); err != nil {
		log.Fatalf("Failed to initialize display: %v", err)
	}

	dev.SetUpdateMode(ssd1677.Fast)

	for i := 0; i < 4; i++ {
		bar := image.Rect(0, i*100, dev.Bounds().Dx(), i*100+50)
		if err := dev.Draw(bar, &image.Uniform{ssd1677.Black}, image.Point{}); err != nil {
			log.Fatal(err)
		}
	}

	// A full update removes the ghosting fast updates leave behind.
	dev.SetUpdateMode(ssd1677.Full)
	draw.Draw(dev.Frame(), dev.Bounds(), &image.Uniform{ssd1677.White}, image.Point{}, draw.Src)
	if err := dev.Refresh(); err != nil {
		log.Fatal(err)
	}
}
