// This file is part of GopherDS.
//
// GopherDS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDS.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopherds/comparison"
	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/digest"
	"github.com/jetsetilly/gopherds/environment"
	"github.com/jetsetilly/gopherds/govern"
	"github.com/jetsetilly/gopherds/hardware"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/preferences"
	"github.com/jetsetilly/gopherds/logger"
	"github.com/jetsetilly/gopherds/modalflag"
	"github.com/jetsetilly/gopherds/performance"
	"github.com/jetsetilly/gopherds/performance/limiter"
	"github.com/jetsetilly/gopherds/script"
	"github.com/jetsetilly/gopherds/statsview"
	"github.com/jetsetilly/gopherds/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// reset vectors of the two processors
const (
	arm9Vector = 0xffff0000
	arm7Vector = 0x00000000
)

func main() {
	// #ctrlc cancels the context. every mode ends cleanly when the context is
	// done
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is separate from main() so that it can be tested. returns the exit
// value for the program.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "CHECK", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)

	case "CHECK":
		err = check(ctx, md, output)

	case "PERFORMANCE":
		err = perform(ctx, md, output)

	case "VERSION":
		fmt.Fprintln(output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// idle processors are attached in place of instruction interpreters
func idleProcessor(id cpu.ID) cpu.Processor {
	if id == cpu.ARM7 {
		return cpu.NewIdle(1, arm7Vector)
	}
	return cpu.NewIdle(1, arm9Vector)
}

// flags common to every mode that creates a console
type consoleFlags struct {
	bios9  *string
	bios7  *string
	prefs  *string
	script *string
}

func addConsoleFlags(md *modalflag.Modes) consoleFlags {
	return consoleFlags{
		bios9:  md.AddString("bios9", "", "boot rom file for the ARM9"),
		bios7:  md.AddString("bios7", "", "boot rom file for the ARM7"),
		prefs:  md.AddString("prefs", "", "preferences string. eg. timeline.slice::8; dma.completion::exceeds"),
		script: md.AddString("script", "", "script to run before the emulation starts (.lua files are Lua scripts)"),
	}
}

func (cf consoleFlags) newPreferences() (*preferences.Preferences, error) {
	prefs := preferences.NewPreferences()
	if *cf.prefs == "" {
		return prefs, nil
	}
	unused, err := prefs.Apply(*cf.prefs)
	if err != nil {
		return nil, err
	}
	if unused != "" {
		return nil, curated.Errorf("preferences: unrecognised (%s)", unused)
	}
	return prefs, nil
}

func (cf consoleFlags) loadScript() (script.Runner, error) {
	if *cf.script == "" {
		return nil, nil
	}
	return script.Open(*cf.script)
}

// bootROMs calls the load function for each boot rom file named on the
// command line.
func (cf consoleFlags) bootROMs(load func(cpu.ID, []byte) error) error {
	for _, b := range []struct {
		id   cpu.ID
		file string
	}{
		{id: cpu.ARM9, file: *cf.bios9},
		{id: cpu.ARM7, file: *cf.bios7},
	} {
		if b.file == "" {
			continue
		}
		data, err := os.ReadFile(b.file)
		if err != nil {
			return curated.Errorf("boot rom: %v", err)
		}
		if err := load(b.id, data); err != nil {
			return err
		}
	}
	return nil
}

// newConsole creates the main emulation, loads the boot roms and runs the
// script.
func (cf consoleFlags) newConsole(output io.Writer) (*hardware.NDS, *digest.Machine, error) {
	prefs, err := cf.newPreferences()
	if err != nil {
		return nil, nil, err
	}

	nds, err := hardware.NewNDS(environment.MainEmulation, prefs, idleProcessor(cpu.ARM9), idleProcessor(cpu.ARM7), nil)
	if err != nil {
		return nil, nil, err
	}

	err = cf.bootROMs(nds.Mem.LoadBootROM)
	if err != nil {
		return nil, nil, err
	}

	dig := digest.NewMachine(nds)

	scr, err := cf.loadScript()
	if err != nil {
		return nil, nil, err
	}
	if scr != nil {
		err = scr.Run(nds, dig, output)
		if err != nil {
			return nil, nil, err
		}
	}

	return nds, dig, nil
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConsoleFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until interrupted")
	fpsCap := md.AddBool("fpscap", false, "cap fps to the rate of the console")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	showDigest := md.AddBool("digest", false, "print the digest of the console after every frame")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	mv := md.AddString("memviz", "", "write a memviz graph of the peripherals to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(output)
		defer logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(ctx, output)
	}

	nds, dig, err := cf.newConsole(output)
	if err != nil {
		return err
	}

	var lim *limiter.Limiter
	if *fpsCap {
		lim = limiter.NewLimiter(ctx, performance.FramesPerSecond)
	}

	continueCheck := func(frame int) (govern.State, error) {
		if *showDigest {
			if err := dig.Update(); err != nil {
				return govern.Ending, err
			}
			fmt.Fprintf(output, "%d: %s\n", frame, dig.Hash())
		}

		select {
		case <-ctx.Done():
			return govern.Ending, nil
		default:
		}

		if lim != nil && !lim.Wait() {
			return govern.Ending, nil
		}

		return govern.Running, nil
	}

	if *frames > 0 {
		err = nds.RunForFrameCount(*frames, continueCheck)
	} else {
		err = nds.Run(func() (govern.State, error) {
			return continueCheck(nds.Display.Frames)
		})
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%d frames (%s)\n", nds.Display.Frames, nds)

	if *mv != "" {
		err = writeMemviz(*mv, nds)
		if err != nil {
			return err
		}
	}

	return nil
}

func check(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConsoleFlags(md)
	frames := md.AddInt("frames", 10, "number of frames to run in each instance")
	instances := md.AddInt("instances", 2, "number of instances of the emulation")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prefs, err := cf.newPreferences()
	if err != nil {
		return err
	}

	cmp, err := comparison.NewComparison(*instances, prefs, idleProcessor)
	if err != nil {
		return err
	}

	err = cf.bootROMs(cmp.LoadBootROM)
	if err != nil {
		return err
	}

	scr, err := cf.loadScript()
	if err != nil {
		return err
	}

	err = cmp.Run(ctx, *frames, scr)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "deterministic over %d frames in %d instances: %s\n", *frames, cmp.Len(), cmp.Hash())

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConsoleFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if *stats {
		statsview.Launch(ctx, output)
	}

	nds, _, err := cf.newConsole(output)
	if err != nil {
		return err
	}

	return performance.Check(ctx, output, nds, prf, dur)
}
