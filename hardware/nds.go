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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/environment"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/display"
	"github.com/jetsetilly/gopherds/hardware/dma"
	"github.com/jetsetilly/gopherds/hardware/interrupts"
	"github.com/jetsetilly/gopherds/hardware/ipc"
	"github.com/jetsetilly/gopherds/hardware/mathunit"
	"github.com/jetsetilly/gopherds/hardware/memory"
	"github.com/jetsetilly/gopherds/hardware/preferences"
	"github.com/jetsetilly/gopherds/hardware/scheduler"
	"github.com/jetsetilly/gopherds/hardware/timers"
)

// NDS is the root of the emulated console.
type NDS struct {
	Env *environment.Environment

	Timeline   *scheduler.Timeline
	Interrupts *interrupts.Controller
	Timers     *timers.Bank
	DMA        *dma.Engine
	IPC        *ipc.Channel
	Display    *display.Display
	Math       *mathunit.Unit
	Mem        *memory.Memory

	ARM9 cpu.Processor
	ARM7 cpu.Processor

	// optional. may be nil
	Geometry cpu.Geometry

	// odd ARM9 cycle not yet applied to the ARM9 timers
	arm9Remainder uint64
}

// NewNDS creates a new console and everything associated with the hardware.
// Both processors are required. The geometry engine is optional and can be
// nil.
//
// The prefs argument can be nil, in which case the default preferences are
// used.
func NewNDS(label environment.Label, prefs *preferences.Preferences, arm9 cpu.Processor, arm7 cpu.Processor, geometry cpu.Geometry) (*NDS, error) {
	if arm9 == nil {
		return nil, curated.Errorf("hardware: %v: processor is missing", cpu.ARM9)
	}
	if arm7 == nil {
		return nil, curated.Errorf("hardware: %v: processor is missing", cpu.ARM7)
	}

	if prefs == nil {
		prefs = preferences.NewPreferences()
	}

	nds := &NDS{
		ARM9:     arm9,
		ARM7:     arm7,
		Geometry: geometry,
	}

	nds.Timeline = scheduler.NewTimeline(prefs.TimelineSlice.Get().(int))
	nds.Env = environment.NewEnvironment(label, nds.Timeline, prefs)

	nds.Interrupts = interrupts.NewController()
	nds.Timers = timers.NewBank(nds.Env, nds.Interrupts)
	nds.DMA = dma.NewEngine(nds.Env, nds.Timeline)
	nds.IPC = ipc.NewChannel(nds.Env, nds.Interrupts)
	nds.Display = display.NewDisplay(nds.Env, nds.Timeline, nds.Interrupts, nds.DMA)
	nds.Math = mathunit.NewUnit()

	nds.Mem = memory.NewMemory(nds.Env, memory.Peripherals{
		Interrupts: nds.Interrupts,
		Timers:     nds.Timers,
		DMA:        nds.DMA,
		IPC:        nds.IPC,
		Display:    nds.Display,
		Math:       nds.Math,
	})
	nds.Mem.Attach(cpu.ARM9, arm9)
	nds.Mem.Attach(cpu.ARM7, arm7)

	nds.Reset()

	return nds, nil
}

func (nds *NDS) String() string {
	return fmt.Sprintf("%d: %s", nds.Timeline.Now(), nds.Display)
}

// Processor returns the processor with the ID.
func (nds *NDS) Processor(proc cpu.ID) cpu.Processor {
	if proc == cpu.ARM7 {
		return nds.ARM7
	}
	return nds.ARM9
}

// Reset the console to its power-on state. The boot ROMs are preserved.
//
// The timeline is reset before the display because the display schedules
// its first event during its reset.
func (nds *NDS) Reset() {
	nds.Timeline.Reset()
	nds.Interrupts.Reset()
	nds.Timers.Reset()
	nds.DMA.Reset()
	nds.IPC.Reset()
	nds.Display.Reset()
	nds.Math.Reset()
	nds.Mem.Reset()

	nds.ARM9.SetClock(0)
	nds.ARM7.SetClock(0)
	nds.arm9Remainder = 0
}

// CartridgeTransfer signals that the cartridge has data ready. A DMA channel
// of the processor that owns the cartridge bus is started if one is waiting
// for the cartridge.
func (nds *NDS) CartridgeTransfer() {
	nds.DMA.RequestCartridge(nds.Mem.CartridgeOwner())
}
