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

package display

import (
	"fmt"

	"github.com/jetsetilly/gopherds/hardware/clocks"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/interrupts"
	"github.com/jetsetilly/gopherds/hardware/scheduler"
	"github.com/jetsetilly/gopherds/logger"
)

// Bits in the DISPSTAT register.
const (
	StatVBlank      = 0x0001
	StatHBlank      = 0x0002
	StatVCountMatch = 0x0004
	StatVBlankIRQ   = 0x0008
	StatHBlankIRQ   = 0x0010
	StatVCountIRQ   = 0x0020

	// the ninth bit of the vcount setting is bit 7 of the register. the lower
	// eight bits are in the upper byte
	statVCountHigh = 0x0080

	// bits that can be written by the processor
	statWritable = 0xffb8
)

// Phases of the DisplayLine event.
const (
	PhaseLine = iota
	PhaseHBlank
)

// Scheduler is the part of the timeline used by the display.
type Scheduler interface {
	Schedule(kind scheduler.Kind, relative uint64, param int)
}

// DMA is the part of the DMA engine that responds to the display.
type DMA interface {
	RequestVBlank()
	RequestHBlank()
}

// Display is the line counter and the DISPSTAT register of each processor.
type Display struct {
	env      logger.Permission
	timeline Scheduler
	irq      interrupts.Requester
	dma      DMA

	// current line
	VCount int

	VBlank bool
	HBlank bool

	// writable bits of DISPSTAT
	stat [cpu.NumProcessors]uint16

	// vcount match flag is per processor because each has its own setting
	match [cpu.NumProcessors]bool

	// set when the line counter wraps to zero
	frameComplete bool

	// number of frames completed since reset
	Frames int
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(env logger.Permission, timeline Scheduler, irq interrupts.Requester, dma DMA) *Display {
	d := &Display{
		env:      env,
		timeline: timeline,
		irq:      irq,
		dma:      dma,
	}
	d.Reset()
	return d
}

func (d *Display) String() string {
	return fmt.Sprintf("line %d vblank=%v hblank=%v", d.VCount, d.VBlank, d.HBlank)
}

// Reset the display to the start of the first line and schedule the first
// event.
func (d *Display) Reset() {
	d.VCount = 0
	d.VBlank = false
	d.HBlank = false
	d.stat = [cpu.NumProcessors]uint16{}
	d.match = [cpu.NumProcessors]bool{}
	d.frameComplete = false
	d.Frames = 0
	d.updateMatch()
	d.timeline.Schedule(scheduler.DisplayLine, clocks.HDraw, PhaseHBlank)
}

// FrameComplete returns true if a frame has completed since the last call.
func (d *Display) FrameComplete() bool {
	c := d.frameComplete
	d.frameComplete = false
	return c
}

// Event is called when the DisplayLine event is dispatched.
func (d *Display) Event(phase int) {
	switch phase {
	case PhaseHBlank:
		d.startHBlank()
		d.timeline.Schedule(scheduler.DisplayLine, clocks.HBlank, PhaseLine)
	case PhaseLine:
		d.startLine()
		d.timeline.Schedule(scheduler.DisplayLine, clocks.HDraw, PhaseHBlank)
	default:
		logger.Logf(d.env, "display", "unknown line phase (%d)", phase)
		d.timeline.Schedule(scheduler.DisplayLine, clocks.HDraw, PhaseHBlank)
	}
}

func (d *Display) startHBlank() {
	d.HBlank = true
	for p := range d.stat {
		if d.stat[p]&StatHBlankIRQ == StatHBlankIRQ {
			d.irq.Request(cpu.ID(p), interrupts.HBlank)
		}
	}
	if d.VCount < clocks.VisibleLines {
		d.dma.RequestHBlank()
	}
}

func (d *Display) startLine() {
	d.HBlank = false

	d.VCount++
	if d.VCount >= clocks.TotalLines {
		d.VCount = 0
		d.frameComplete = true
		d.Frames++
	}

	switch d.VCount {
	case clocks.VisibleLines:
		d.VBlank = true
		for p := range d.stat {
			if d.stat[p]&StatVBlankIRQ == StatVBlankIRQ {
				d.irq.Request(cpu.ID(p), interrupts.VBlank)
			}
		}
		d.dma.RequestVBlank()
	case clocks.VBlankEnd:
		d.VBlank = false
	}

	d.updateMatch()
	for p := range d.stat {
		if d.match[p] && d.stat[p]&StatVCountIRQ == StatVCountIRQ {
			d.irq.Request(cpu.ID(p), interrupts.VCount)
		}
	}
}

// the nine bit line number that the processor wants to be told about
func setting(stat uint16) int {
	return int(stat>>8) | int(stat&statVCountHigh)<<1
}

func (d *Display) updateMatch() {
	for p := range d.stat {
		d.match[p] = setting(d.stat[p]) == d.VCount
	}
}

// ReadStat returns the DISPSTAT register as seen by the processor.
func (d *Display) ReadStat(proc cpu.ID) uint16 {
	v := d.stat[proc]
	if d.VBlank {
		v |= StatVBlank
	}
	if d.HBlank {
		v |= StatHBlank
	}
	if d.match[proc] {
		v |= StatVCountMatch
	}
	return v
}

// WriteStat writes the bits of DISPSTAT selected by the mask. The status bits
// are read only.
func (d *Display) WriteStat(proc cpu.ID, value uint16, mask uint16) {
	mask &= statWritable
	d.stat[proc] = (d.stat[proc] &^ mask) | (value & mask)
	d.match[proc] = setting(d.stat[proc]) == d.VCount
}

// ReadVCount returns the VCOUNT register.
func (d *Display) ReadVCount() uint16 {
	return uint16(d.VCount)
}
