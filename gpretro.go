// This file is part of gpretro.
//
// gpretro is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gpretro is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gpretro.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/jetsetilly/gpretro/coreoptions"
	"github.com/jetsetilly/gpretro/frontend"
	"github.com/jetsetilly/gpretro/gui/sdlaudio"
	"github.com/jetsetilly/gpretro/gui/sdlplay"
	"github.com/jetsetilly/gpretro/logger"
	"github.com/jetsetilly/gpretro/modalflag"
	"github.com/jetsetilly/gpretro/retro"
	"github.com/jetsetilly/gpretro/retro/libretro"
	"github.com/jetsetilly/gpretro/statsview"
	"github.com/jetsetilly/gpretro/version"
	"github.com/jetsetilly/gpretro/wavwriter"
)

const additionalHelp = `The core is a libretro module (.so file). The content is any file accepted
by the core.

Core options are read from and written to the file given by the -options
flag. The file is a YAML map of option names to values.`

func init() {
	// SDL and the core both expect to be called from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch returns the exit code of the program.
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.Usage("gpretro [flags] <core> <content>")
	md.AdditionalHelp(additionalHelp)

	echo := md.AddBool("log", false, "echo log to stdout")
	level := md.AddString("loglevel", "info", "minimum log level: debug, info, warn, error")
	wav := md.AddString("wav", "", "record audio to wav file")
	options := md.AddString("options", "", "core options file")
	stats := md.AddString("statsview", "", "run stats server on address (eg. localhost:12600)")
	width := md.AddInt("width", 0, "window width for this run")
	height := md.AddInt("height", 0, "window height for this run")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 1
	}

	if *showVersion {
		fmt.Println(version.String())
		return 0
	}

	if len(md.RemainingArgs()) < 2 {
		md.PrintHelp()
		return 1
	}
	corePath := md.GetArg(0)
	contentPath := md.GetArg(1)

	lvl, err := logger.ParseLevel(*level)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return 1
	}
	logger.SetLevel(lvl)
	if *echo {
		logger.SetEcho(os.Stdout)
	}

	logger.Log(logger.Allow, "gpretro", version.String())

	if *stats != "" {
		if statsview.Available() {
			statsview.Launch(os.Stdout, *stats)
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	prf, err := frontend.NewPreferences("")
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return 1
	}

	opts := coreoptions.New()
	if *options != "" {
		opts, err = coreoptions.Load(*options)
		if err != nil {
			fmt.Printf("* error: %v\n", err)
			return 1
		}
	}

	w := prf.WindowWidth.Get().(int)
	h := prf.WindowHeight.Get().(int)
	if *width > 0 {
		w = *width
	}
	if *height > 0 {
		h = *height
	}

	win, err := sdlplay.NewWindow(version.ApplicationName, w, h)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return 1
	}

	err = win.Banner(fmt.Sprintf("Loading '%s'", contentPath))
	if err != nil {
		logger.Warnf(logger.Allow, "gpretro", "%v", err)
	}

	latency := prf.AudioLatency.Get().(time.Duration)
	audio := frontend.NewAudioSink(func(sampleRate int) (frontend.AudioDevice, error) {
		aud, err := sdlaudio.NewAudio(sampleRate, latency)
		if err != nil {
			return nil, err
		}
		return aud, nil
	})

	if *wav != "" {
		ww, err := wavwriter.New(*wav)
		if err != nil {
			_ = win.Close()
			fmt.Printf("* error: %v\n", err)
			return 1
		}
		audio.SetRecorder(ww)
	}

	ctx := frontend.NewContext()
	env := frontend.NewEnvironment(ctx, opts, prf.SystemDir.String(), prf.SaveDir.String())
	rl := frontend.NewRunLoop(ctx, env,
		frontend.NewVideoPresenter(ctx, win),
		audio,
		frontend.NewInputBridge(ctx, win),
	)

	// fatal is used for errors that end the program after the run loop has
	// been created
	fatal := func(err error) int {
		fmt.Printf("* error: %v\n", err)
		if err := rl.Close(); err != nil {
			logger.Warnf(logger.Allow, "gpretro", "%v", err)
		}
		return 1
	}

	err = rl.LoadModule(func(h retro.Host) (retro.Core, error) {
		mod, err := libretro.Load(corePath, h)
		if err != nil {
			return nil, err
		}
		return mod, nil
	})
	if err != nil {
		return fatal(err)
	}

	err = rl.LoadContent(contentPath)
	if err != nil {
		return fatal(err)
	}

	err = rl.Run()
	if err != nil {
		return fatal(err)
	}

	if err := rl.Close(); err != nil {
		logger.Warnf(logger.Allow, "gpretro", "%v", err)
	}

	if *options != "" {
		if err := opts.Save(*options); err != nil {
			logger.Warnf(logger.Allow, "gpretro", "%v", err)
		}
	}

	if err := prf.Save(); err != nil {
		logger.Warnf(logger.Allow, "gpretro", "%v", err)
	}

	return 0
}
