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
	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/hardware/clocks"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/faults"
	"github.com/jetsetilly/gopherds/hardware/scheduler"
	"github.com/jetsetilly/gopherds/logger"
)

// Step advances the timeline to the next event or by one slice, whichever is
// sooner. Both processors are run up to the new timestamp and then every
// event that is due is dispatched.
//
// Events are dispatched in the order of their kind. Dispatching an event can
// cause another event to become due immediately, in which case it is
// dispatched in the same step.
func (nds *NDS) Step() {
	nds.Timeline.Step()
	now := nds.Timeline.Now()

	nds.runProcessor(cpu.ARM9, now<<clocks.ARM9Shift)
	nds.runProcessor(cpu.ARM7, now)

	nds.dispatch()
}

// dispatch every due event until no event is due
func (nds *NDS) dispatch() {
	for {
		var dispatched bool
		for k := scheduler.Kind(0); k < scheduler.NumKinds; k++ {
			if ev, ok := nds.Timeline.Due(k); ok {
				nds.handle(ev)
				dispatched = true
			}
		}
		if !dispatched {
			return
		}
	}
}

func (nds *NDS) handle(ev scheduler.Event) {
	switch ev.Kind {
	case scheduler.DisplayLine:
		nds.Display.Event(ev.Param)
	case scheduler.DMAContinue:
		nds.DMA.ContinueTransfer(ev.Param, nds.Mem, nds.Interrupts)
	default:
		logger.Log(nds.Env, "scheduler", curated.Errorf(faults.UnknownEvent, ev))
	}
}

// runProcessor executes instructions until the processor's clock reaches the
// target. A processor that is halted, or that is stalled by a DMA transfer,
// has its clock moved to the target without executing anything.
//
// A halted processor wakes when an interrupt is requesting, even while a DMA
// transfer holds the bus. It does not fetch until the transfer has finished.
func (nds *NDS) runProcessor(proc cpu.ID, target uint64) {
	p := nds.Processor(proc)

	for p.Clock() < target {
		requesting := nds.Interrupts.Requesting(proc)
		if requesting && p.Halted() {
			p.Wake()
		}

		if p.Halted() || nds.DMA.IsActive() {
			nds.advance(proc, target-p.Clock())
			p.SetClock(target)
			return
		}

		if requesting && !p.InterruptsDisabled() {
			p.HandleInterrupt()
		}

		// the processor advances its own clock
		before := p.Clock()
		p.ExecuteInstruction()
		if p.Clock() <= before {
			p.SetClock(before + 1)
		}
		nds.advance(proc, p.Clock()-before)
	}
}

// advance the hardware that is clocked by the processor. cycles are in the
// processor's own clock
func (nds *NDS) advance(proc cpu.ID, cycles uint64) {
	if proc == cpu.ARM7 {
		nds.Timers.Advance(cpu.ARM7, int(cycles))
		return
	}

	if nds.Geometry != nil && nds.Geometry.Run(int(cycles)) {
		nds.DMA.RequestGeometryFIFO()
	}

	// the ARM9 timers are clocked at the system rate
	cycles += nds.arm9Remainder
	nds.arm9Remainder = cycles & 0x01
	nds.Timers.Advance(cpu.ARM9, int(cycles>>clocks.ARM9Shift))
}
