// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// epdctl drives an SSD1677 e-paper panel from the command line.
//
// Usage:
//
//	epdctl [flags] init
//	epdctl [flags] clear white|black|red
//	epdctl [flags] text [!]line...
//	epdctl [flags] image file
//	epdctl [flags] sleep
//	epdctl [flags] watch [!]line...
//	epdctl -profile in.yaml -write-profile out.yaml [command]
//
// Lines starting with "!" are drawn in red. -write-profile stores the
// profile in use with every default filled in, as a starting point for a new
// panel.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/epaper/internal/profile"
	"github.com/GermanBionicSystems/epaper/screen2d"
	"github.com/GermanBionicSystems/epaper/ssd1677"
	"github.com/GermanBionicSystems/epaper/ssd1677/ssd1677test"
)

type flags struct {
	profile  string
	writeTo  string
	spi      string
	dc       string
	cs       string
	rst      string
	busy     string
	mode     string
	fontSize float64
	dryRun   bool
	preview  int
	noLUT    bool
	sleep    bool
}

func parseFlags(args []string) (*flags, []string, error) {
	var f flags
	fs := flag.NewFlagSet("epdctl", flag.ContinueOnError)
	fs.StringVar(&f.profile, "profile", "", "panel profile (YAML), defaults to the 4.26\" panel")
	fs.StringVar(&f.writeTo, "write-profile", "", "write the effective profile to this file")
	fs.StringVar(&f.spi, "spi", "", "SPI port to use")
	fs.StringVar(&f.dc, "dc", "25", "data/command pin")
	fs.StringVar(&f.cs, "cs", "8", "chip select pin, empty when the SPI port drives it")
	fs.StringVar(&f.rst, "rst", "17", "reset pin")
	fs.StringVar(&f.busy, "busy", "24", "busy pin")
	fs.StringVar(&f.mode, "mode", "full", "refresh mode: full, partial or fast")
	fs.Float64Var(&f.fontSize, "size", 32, "font size for text and watch")
	fs.BoolVar(&f.dryRun, "dry-run", false, "log the controller traffic instead of using the hardware")
	fs.IntVar(&f.preview, "preview", 0, "print the frame to the terminal, scaled down by this factor")
	fs.BoolVar(&f.noLUT, "no-lut", false, "keep the waveform stored in the panel")
	fs.BoolVar(&f.sleep, "sleep", false, "put the panel in deep sleep when done")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() == 0 && f.writeTo == "" {
		return nil, nil, errors.New("missing command, try init, clear, text, image, sleep or watch")
	}
	return &f, fs.Args(), nil
}

func parseMode(s string) (ssd1677.RefreshMode, error) {
	for _, m := range []ssd1677.RefreshMode{ssd1677.Full, ssd1677.Partial, ssd1677.Fast} {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown refresh mode %q", s)
}

func parseColor(s string) (ssd1677.Color, error) {
	for _, c := range []ssd1677.Color{ssd1677.White, ssd1677.Black, ssd1677.Red} {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q, want white, black or red", s)
}

// writeProfile saves prof to path. prof must already have passed Opts.
func writeProfile(prof *profile.Profile, path string) error {
	if err := profile.Save(path, prof); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	log.Printf("profile %s written to %s", prof.Name, path)
	return nil
}

// pin resolves a GPIO name; an empty name yields gpio.INVALID.
func pin(name string) (gpio.PinIO, error) {
	if name == "" {
		return gpio.INVALID, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("unknown pin %q", name)
	}
	return p, nil
}

// openTransport returns the transport selected by the flags and a function
// releasing it.
func openTransport(f *flags, opts *ssd1677.Opts) (ssd1677.Transport, func() error, error) {
	if f.dryRun {
		return &ssd1677test.Recorder{}, func() error { return nil }, nil
	}

	if _, err := host.Init(); err != nil {
		return nil, nil, err
	}
	p, err := spireg.Open(f.spi)
	if err != nil {
		return nil, nil, err
	}

	var pins [4]gpio.PinIO
	for i, name := range []string{f.dc, f.cs, f.rst, f.busy} {
		if pins[i], err = pin(name); err != nil {
			p.Close()
			return nil, nil, err
		}
	}

	t, err := ssd1677.NewSPITransport(p, pins[0], pins[1], pins[2], pins[3], opts)
	if err != nil {
		p.Close()
		return nil, nil, err
	}
	return t, p.Close, nil
}

func mainImpl() error {
	f, args, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	prof, err := profile.Load(f.profile)
	if err != nil {
		return err
	}
	opts, err := prof.Opts()
	if err != nil {
		return err
	}
	if f.writeTo != "" {
		if err := writeProfile(prof, f.writeTo); err != nil {
			return err
		}
		if len(args) == 0 {
			return nil
		}
	}
	mode, err := parseMode(f.mode)
	if err != nil {
		return err
	}

	t, closer, err := openTransport(f, &opts)
	if err != nil {
		return err
	}
	defer closer()

	dev, err := ssd1677.NewWithTransport(t, &opts)
	if err != nil {
		return err
	}
	log.Printf("using %s, profile %s", dev, prof.Name)

	a := &app{
		dev:      dev,
		mode:     mode,
		noLUT:    f.noLUT,
		fontSize: f.fontSize,
	}
	if rec, ok := t.(*ssd1677test.Recorder); ok {
		a.recorder = rec
	}
	if f.preview > 0 {
		b := dev.Bounds()
		a.preview = screen2d.New(&screen2d.Opts{X: b.Dx(), Y: b.Dy(), Scale: f.preview})
		defer a.preview.Halt()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx, args, prof.Schedule); err != nil {
		return err
	}
	if f.sleep && args[0] != "sleep" {
		return a.sleep()
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "epdctl: %s.\n", err)
		os.Exit(1)
	}
}
