// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/robfig/cron/v3"

	"github.com/GermanBionicSystems/epaper/internal/profile"
	"github.com/GermanBionicSystems/epaper/internal/render"
	"github.com/GermanBionicSystems/epaper/screen2d"
	"github.com/GermanBionicSystems/epaper/ssd1677"
	"github.com/GermanBionicSystems/epaper/ssd1677/ssd1677test"
)

// app owns the panel. The cron jobs of watch run on their own goroutines so
// every access to dev goes through mu.
type app struct {
	mu sync.Mutex

	dev      *ssd1677.Dev
	mode     ssd1677.RefreshMode
	noLUT    bool
	fontSize float64

	preview  *screen2d.Dev
	recorder *ssd1677test.Recorder
	now      func() time.Time
}

func (a *app) run(ctx context.Context, args []string, sched profile.Schedule) error {
	cmd, args := args[0], args[1:]
	switch cmd {
	case "init":
		return a.initPanel()
	case "clear":
		if len(args) != 1 {
			return errors.New("clear takes one color")
		}
		c, err := parseColor(args[0])
		if err != nil {
			return err
		}
		return a.clear(c)
	case "text":
		if len(args) == 0 {
			return errors.New("text takes at least one line")
		}
		return a.text(args)
	case "image":
		if len(args) != 1 {
			return errors.New("image takes one file")
		}
		return a.image(args[0])
	case "sleep":
		return a.sleep()
	case "watch":
		return a.watch(ctx, args, sched)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (a *app) initPanel() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.logged("init", a.dev.Init())
}

func (a *app) clear(c ssd1677.Color) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.dev.Frame().Clear(c)
	return a.flush(a.mode)
}

func (a *app) text(lines []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.drawText(lines, a.mode)
}

func (a *app) drawText(lines []string, mode ssd1677.RefreshMode) error {
	if err := render.Text(a.dev.Frame(), lines, a.fontSize); err != nil {
		return err
	}
	return a.flush(mode)
}

func (a *app) image(path string) error {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	render.Image(a.dev.Frame(), img)
	return a.flush(a.mode)
}

func (a *app) sleep() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.logged("sleep", a.dev.Sleep())
}

// flush sends the frame with mode. Callers hold mu.
func (a *app) flush(mode ssd1677.RefreshMode) error {
	f := a.dev.Frame()
	if a.preview != nil {
		if err := a.preview.Draw(f.Bounds(), f, image.Point{}); err != nil {
			return err
		}
	}

	var err error
	if a.noLUT {
		err = a.dev.UpdateNoLUT(f.Black(), f.Red(), mode)
	} else {
		err = a.dev.Update(f.Black(), f.Red(), mode)
	}
	return a.logged(mode.String()+" update", err)
}

// logged reports what op sent when running without hardware.
func (a *app) logged(op string, err error) error {
	if a.recorder == nil {
		return err
	}
	a.recorder.Lock()
	for _, r := range a.recorder.Records {
		log.Printf("%s: cmd %#02x, %d data bytes", op, r.Cmd, len(r.Data))
	}
	a.recorder.Unlock()
	a.recorder.Clear()
	return err
}

func (a *app) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

// tick redraws lines followed by the current time.
func (a *app) tick(lines []string, mode ssd1677.RefreshMode) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	all := append(append([]string(nil), lines...), a.clock().Format("15:04"))
	return a.drawText(all, mode)
}

// schedule registers the watch jobs on c.
func (a *app) schedule(c *cron.Cron, lines []string, sched profile.Schedule) error {
	for _, job := range []struct {
		spec string
		mode ssd1677.RefreshMode
	}{
		{sched.Fast, ssd1677.Fast},
		{sched.Full, ssd1677.Full},
	} {
		mode := job.mode
		if _, err := c.AddFunc(job.spec, func() {
			if err := a.tick(lines, mode); err != nil {
				log.Printf("%s refresh: %v", mode, err)
			}
		}); err != nil {
			return fmt.Errorf("%s schedule %q: %w", job.mode, job.spec, err)
		}
	}
	return nil
}

// watch shows lines and a clock until ctx is done.
func (a *app) watch(ctx context.Context, lines []string, sched profile.Schedule) error {
	c := cron.New(cron.WithLogger(cron.PrintfLogger(log.Default())))
	if err := a.schedule(c, lines, sched); err != nil {
		return err
	}

	if err := a.tick(lines, ssd1677.Full); err != nil {
		return err
	}

	log.Printf("watching, fast %q, full %q", sched.Fast, sched.Full)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
