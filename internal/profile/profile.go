// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package profile loads panel descriptions from YAML files and turns them
// into ssd1677.Opts.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/GermanBionicSystems/epaper/ssd1677"
)

// Schedule holds the cron specs used by epdctl watch.
type Schedule struct {
	// Fast redraws with the fast waveform.
	Fast string `yaml:"fast"`
	// Full redraws with the OTP waveform to clear ghosting.
	Full string `yaml:"full"`
}

// Profile describes one panel and how it is wired.
type Profile struct {
	Name string `yaml:"name"`

	// Rows are gate outputs, Cols source outputs.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// Rotation is one of "0", "90", "180" or "270".
	Rotation string `yaml:"rotation"`
	// XAddressing is "pixels" or "bytes".
	XAddressing   string `yaml:"x_addressing"`
	YInverted     bool   `yaml:"y_inverted"`
	DataEntryMode *byte  `yaml:"data_entry_mode,omitempty"`

	// Display update control 2 values, 0 keeps the controller default.
	FullUpdate    byte `yaml:"full_update,omitempty"`
	PartialUpdate byte `yaml:"partial_update,omitempty"`
	FastUpdate    byte `yaml:"fast_update,omitempty"`

	BusyActiveLow bool          `yaml:"busy_active_low"`
	PollInterval  time.Duration `yaml:"poll_interval"`
	// BusyTimeout of 0 in the file means the default. The wait is always
	// bounded, negative values are rejected by Opts.
	BusyTimeout time.Duration `yaml:"busy_timeout"`

	Schedule Schedule `yaml:"schedule"`
}

const (
	defaultName        = "4in26"
	defaultPoll        = time.Millisecond
	defaultBusyTimeout = 30 * time.Second
	defaultFast        = "@every 1m"
	defaultFull        = "0 * * * *"
)

// Default returns the profile of the 4.26" 800x480 panel.
func Default() *Profile {
	p := &Profile{}
	p.Normalize()
	return p
}

// Normalize fills in missing values so partially written files still
// describe a complete panel.
func (p *Profile) Normalize() {
	if p.Name == "" {
		p.Name = defaultName
	}
	if p.Rows == 0 && p.Cols == 0 {
		d := ssd1677.EPD4in26.Dimensions
		p.Rows, p.Cols = d.Rows, d.Cols
	}
	if p.Rotation == "" {
		p.Rotation = ssd1677.Rotate0.String()
	}
	if p.XAddressing == "" {
		p.XAddressing = "pixels"
	}
	if p.DataEntryMode == nil {
		m := ssd1677.EPD4in26.DataEntryMode
		p.DataEntryMode = &m
	}
	if p.PollInterval <= 0 {
		p.PollInterval = defaultPoll
	}
	if p.BusyTimeout == 0 {
		p.BusyTimeout = defaultBusyTimeout
	}
	if p.Schedule.Fast == "" {
		p.Schedule.Fast = defaultFast
	}
	if p.Schedule.Full == "" {
		p.Schedule.Full = defaultFull
	}
}

// Opts converts the profile into a validated driver configuration.
func (p *Profile) Opts() (ssd1677.Opts, error) {
	d, err := ssd1677.NewDimensions(p.Rows, p.Cols)
	if err != nil {
		return ssd1677.Opts{}, err
	}
	opts := ssd1677.DefaultOpts(d)

	if opts.Rotation, err = parseRotation(p.Rotation); err != nil {
		return ssd1677.Opts{}, err
	}

	switch p.XAddressing {
	case "pixels", "":
		opts.XAddressing = ssd1677.Pixels
	case "bytes":
		opts.XAddressing = ssd1677.Bytes
	default:
		return ssd1677.Opts{}, fmt.Errorf("profile %q: unknown x addressing %q", p.Name, p.XAddressing)
	}

	opts.YInverted = p.YInverted
	if p.DataEntryMode != nil {
		opts.DataEntryMode = *p.DataEntryMode
	}
	if p.FullUpdate != 0 {
		opts.FullUpdate = p.FullUpdate
	}
	if p.PartialUpdate != 0 {
		opts.PartialUpdate = p.PartialUpdate
	}
	if p.FastUpdate != 0 {
		opts.FastUpdate = p.FastUpdate
	}

	opts.BusyActiveLow = p.BusyActiveLow
	if p.PollInterval > 0 {
		opts.PollInterval = p.PollInterval
	}
	switch {
	case p.BusyTimeout < 0:
		return ssd1677.Opts{}, fmt.Errorf("profile %q: negative busy timeout %v", p.Name, p.BusyTimeout)
	case p.BusyTimeout > 0:
		opts.MaxPolls = int(p.BusyTimeout / opts.PollInterval)
		if opts.MaxPolls == 0 {
			opts.MaxPolls = 1
		}
	}

	if err := opts.Validate(); err != nil {
		return ssd1677.Opts{}, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return opts, nil
}

func parseRotation(s string) (ssd1677.Rotation, error) {
	for _, r := range []ssd1677.Rotation{ssd1677.Rotate0, ssd1677.Rotate90, ssd1677.Rotate180, ssd1677.Rotate270} {
		if r.String() == s {
			return r, nil
		}
	}
	if s == "" {
		return ssd1677.Rotate0, nil
	}
	return 0, fmt.Errorf("unknown rotation %q, want 0, 90, 180 or 270", s)
}

// Load reads the profile at path. A missing file yields Default.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	p.Normalize()

	return &p, nil
}

// Save writes p to path atomically, creating the parent directory.
func Save(path string, p *Profile) error {
	if path == "" {
		return errors.New("profile path is empty")
	}
	if p == nil {
		return errors.New("profile is nil")
	}

	p.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".epaper-profile-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
