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

package dma

import (
	"math/bits"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/environment"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/faults"
	"github.com/jetsetilly/gopherds/hardware/interrupts"
	"github.com/jetsetilly/gopherds/hardware/preferences"
	"github.com/jetsetilly/gopherds/hardware/scheduler"
	"github.com/jetsetilly/gopherds/logger"
)

// NumChannels is the number of DMA channels in the console.
const NumChannels = 8

// GroupSize is the number of channels that belong to each processor.
const GroupSize = 4

// GeometryBurst is the number of units transferred for each geometry FIFO
// request.
const GeometryBurst = 112

// Memory is the interface to the memory bus used by a transfer. Accesses are
// made on behalf of the processor that owns the channel.
type Memory interface {
	Read16(proc cpu.ID, address uint32) uint16
	Read32(proc cpu.ID, address uint32) uint32
	Write16(proc cpu.ID, address uint32, data uint16)
	Write32(proc cpu.ID, address uint32, data uint32)
}

// Scheduler is the part of the timeline used by the engine.
type Scheduler interface {
	Schedule(kind scheduler.Kind, relative uint64, param int)
	Pending(kind scheduler.Kind) (scheduler.Event, bool)
}

// State is the state of a channel in the transfer lifecycle.
type State int

// List of states.
const (
	Idle State = iota
	Waiting
	Active
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Active:
		return "active"
	}
	return "idle"
}

// Engine is the collection of all eight DMA channels.
type Engine struct {
	env      *environment.Environment
	timeline Scheduler

	channels [NumChannels]Channel

	// bit set for each channel that has been triggered and has not finished
	// or returned to waiting
	active uint8

	// the DMA fill registers of the ARM9
	fill [4]uint32
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(env *environment.Environment, timeline Scheduler) *Engine {
	e := &Engine{
		env:      env,
		timeline: timeline,
	}
	e.Reset()
	return e
}

// Reset all channels to the idle state.
func (e *Engine) Reset() {
	for i := range e.channels {
		e.channels[i] = Channel{
			Proc:  cpu.ID(i / GroupSize),
			Local: i % GroupSize,
		}
		e.channels[i].Length = e.channels[i].normaliseLength(0)
	}
	e.active = 0
	e.fill = [4]uint32{}
}

// Global returns the index of the channel in the engine from the processor and
// the index of the channel in that processor's group.
func Global(proc cpu.ID, local int) int {
	return int(proc)*GroupSize + local
}

func (e *Engine) check(ch int) error {
	if ch < 0 || ch >= NumChannels {
		err := curated.Errorf(faults.InvalidIndex, "dma", ch)
		logger.Log(e.env, "dma", err)
		return err
	}
	return nil
}

// Channel returns a copy of the channel state.
func (e *Engine) Channel(ch int) (Channel, error) {
	if err := e.check(ch); err != nil {
		return Channel{}, err
	}
	return e.channels[ch], nil
}

// State returns the lifecycle state of the channel.
func (e *Engine) State(ch int) State {
	if ch < 0 || ch >= NumChannels || !e.channels[ch].Enabled() {
		return Idle
	}
	if e.active&(1<<ch) != 0 {
		return Active
	}
	return Waiting
}

// IsActive returns true if any channel is transferring. The processors do not
// execute while this is true.
func (e *Engine) IsActive() bool {
	return e.active != 0
}

// ActiveMask returns a bit for every channel that is transferring.
func (e *Engine) ActiveMask() uint8 {
	return e.active
}

// ReadSource returns the value of the source address register.
func (e *Engine) ReadSource(ch int) (uint32, error) {
	if err := e.check(ch); err != nil {
		return 0, err
	}
	return e.channels[ch].Source, nil
}

// WriteSource sets the source address register. The new address is used the
// next time the channel is enabled.
func (e *Engine) WriteSource(ch int, value uint32) error {
	if err := e.check(ch); err != nil {
		return err
	}
	c := &e.channels[ch]
	src, _ := c.addressMasks()
	c.Source = value & src
	return nil
}

// ReadDestination returns the value of the destination address register.
func (e *Engine) ReadDestination(ch int) (uint32, error) {
	if err := e.check(ch); err != nil {
		return 0, err
	}
	return e.channels[ch].Destination, nil
}

// WriteDestination sets the destination address register.
func (e *Engine) WriteDestination(ch int, value uint32) error {
	if err := e.check(ch); err != nil {
		return err
	}
	c := &e.channels[ch]
	_, dst := c.addressMasks()
	c.Destination = value & dst
	return nil
}

// ReadLength returns the number of units the channel will transfer.
func (e *Engine) ReadLength(ch int) (uint32, error) {
	if err := e.check(ch); err != nil {
		return 0, err
	}
	return e.channels[ch].Length, nil
}

// ReadLengthRegister returns the value of the 16-bit length register as seen
// by the processor.
func (e *Engine) ReadLengthRegister(ch int) (uint16, error) {
	if err := e.check(ch); err != nil {
		return 0, err
	}
	return uint16(e.channels[ch].Length), nil
}

// WriteLength sets the length register. A value of zero selects the maximum
// length for the channel.
func (e *Engine) WriteLength(ch int, value uint16) error {
	if err := e.check(ch); err != nil {
		return err
	}
	c := &e.channels[ch]
	c.Length = c.normaliseLength(value)
	return nil
}

// ReadControl returns the value of the control register.
func (e *Engine) ReadControl(ch int) (uint16, error) {
	if err := e.check(ch); err != nil {
		return 0, err
	}
	return e.channels[ch].Control, nil
}

// WriteControl sets the control register. Reserved bits are cleared.
//
// Setting the enable bit of a disabled channel copies the address and length
// registers to the working registers. A channel with immediate timing starts
// straight away. Clearing the enable bit stops the channel.
func (e *Engine) WriteControl(ch int, value uint16) error {
	if err := e.check(ch); err != nil {
		return err
	}

	c := &e.channels[ch]
	wasEnabled := c.Enabled()

	if c.Proc == cpu.ARM9 {
		c.Control = value & controlMaskARM9
	} else {
		c.Control = value & controlMaskARM7
	}

	if !c.Enabled() {
		e.active &^= 1 << ch
		return nil
	}

	if wasEnabled {
		return nil
	}

	c.InternalSource = c.Source
	c.InternalDest = c.Destination
	c.InternalLen = 0

	if c.SourceMode() == Prohibited {
		logger.Logf(e.env, "dma", "%s: prohibited source address mode", c.Proc)
	}

	if c.Timing() == Immediate {
		e.activate(ch)
	}

	return nil
}

// ReadFill returns one of the four DMA fill registers.
func (e *Engine) ReadFill(idx int) uint32 {
	return e.fill[idx&0x03]
}

// WriteFill writes to the bits selected by mask of one of the four DMA fill
// registers.
func (e *Engine) WriteFill(idx int, value uint32, mask uint32) {
	f := &e.fill[idx&0x03]
	*f = (*f &^ mask) | (value & mask)
}

func (e *Engine) unitCycles() uint64 {
	return uint64(e.env.Prefs.DMAUnitCycles.Get().(int))
}

// activate the channel and make sure a continuation event is pending for
// something. if an event is already pending for another channel then this
// channel will be serviced when that channel is finished
func (e *Engine) activate(ch int) {
	e.active |= 1 << ch
	if _, ok := e.timeline.Pending(scheduler.DMAContinue); !ok {
		e.timeline.Schedule(scheduler.DMAContinue, 0, ch)
	}
}

// schedule the next active channel, if there is one
func (e *Engine) next() {
	if e.active == 0 {
		return
	}
	ch := bits.TrailingZeros8(e.active)
	e.timeline.Schedule(scheduler.DMAContinue, e.unitCycles(), ch)
}

// eligible returns true if the channel is enabled, waiting and has the timing
func (e *Engine) eligible(ch int, timing Timing) bool {
	c := &e.channels[ch]
	return c.Enabled() && c.Timing() == timing && e.active&(1<<ch) == 0
}

// trigger the lowest eligible channel in the group. returns false if no
// channel was eligible
func (e *Engine) triggerFirst(group cpu.ID, timing Timing) bool {
	for l := 0; l < GroupSize; l++ {
		ch := Global(group, l)
		if e.eligible(ch, timing) {
			e.activate(ch)
			return true
		}
	}
	return false
}

// RequestVBlank starts every channel of both processors that is waiting for
// vertical blank.
func (e *Engine) RequestVBlank() {
	for ch := range e.channels {
		if e.eligible(ch, VBlank) {
			e.activate(ch)
		}
	}
}

// RequestHBlank starts the highest priority ARM9 channel waiting for
// horizontal blank.
func (e *Engine) RequestHBlank() {
	e.triggerFirst(cpu.ARM9, HBlank)
}

// RequestCartridge starts the highest priority channel waiting for the
// cartridge. The group argument is the processor that has access to the
// cartridge bus.
func (e *Engine) RequestCartridge(group cpu.ID) {
	e.triggerFirst(group, Cartridge)
}

// RequestGeometryFIFO starts the highest priority ARM9 channel waiting for the
// geometry FIFO.
func (e *Engine) RequestGeometryFIFO() {
	e.triggerFirst(cpu.ARM9, GeometryFIFO)
}

func (e *Engine) finished(c *Channel) bool {
	if e.env.Prefs.CompletionCheck.String() == preferences.CompletionExceeds {
		return c.InternalLen > c.Length
	}
	return c.InternalLen >= c.Length
}

// ContinueTransfer moves one unit for the channel. It is called by the
// console when the DMAContinue event is dispatched. A channel that has been
// disabled since the event was scheduled is ignored.
func (e *Engine) ContinueTransfer(ch int, mem Memory, irq interrupts.Requester) {
	if err := e.check(ch); err != nil {
		e.next()
		return
	}

	c := &e.channels[ch]
	bit := uint8(1 << ch)

	if !c.Enabled() || e.active&bit == 0 {
		e.next()
		return
	}

	if c.Word() {
		mem.Write32(c.Proc, c.InternalDest, mem.Read32(c.Proc, c.InternalSource))
	} else {
		mem.Write16(c.Proc, c.InternalDest, mem.Read16(c.Proc, c.InternalSource))
	}

	size := c.UnitSize()
	c.InternalSource = step(c.InternalSource, c.SourceMode(), size)
	c.InternalDest = step(c.InternalDest, c.DestMode(), size)
	c.InternalLen++
	c.Units++

	if e.finished(c) {
		if c.Control&ControlIRQ == ControlIRQ {
			irq.Request(c.Proc, interrupts.DMA(c.Local))
		}

		c.InternalLen = 0

		if !c.Repeat() {
			c.Control &^= ControlEnable
			e.active &^= bit
			e.next()
			return
		}

		if c.DestMode() == Reload {
			c.InternalDest = c.Destination
		}

		if c.Timing() != Immediate {
			e.active &^= bit
			e.next()
			return
		}

		e.timeline.Schedule(scheduler.DMAContinue, e.unitCycles(), ch)
		return
	}

	if c.Proc == cpu.ARM9 && c.Timing() == GeometryFIFO && c.InternalLen >= GeometryBurst {
		c.InternalLen = 0
		c.Length -= GeometryBurst
		e.active &^= bit
		e.next()
		return
	}

	e.timeline.Schedule(scheduler.DMAContinue, e.unitCycles(), ch)
}
