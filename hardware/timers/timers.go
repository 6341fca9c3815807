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

package timers

import (
	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/hardware/clocks"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/faults"
	"github.com/jetsetilly/gopherds/hardware/interrupts"
	"github.com/jetsetilly/gopherds/logger"
)

// NumTimers is the number of timers in the bank.
const NumTimers = 8

// GroupSize is the number of timers that belong to each processor.
const GroupSize = 4

// Bits in the timer control register.
const (
	ControlPrescaler = 0x0003
	ControlCountUp   = 0x0004
	ControlIRQ       = 0x0040
	ControlEnable    = 0x0080

	controlMask = ControlPrescaler | ControlCountUp | ControlIRQ | ControlEnable
)

// Timer is the state of a single timer.
type Timer struct {
	Counter uint16
	Reload  uint16
	Control uint16

	// cycles remaining until the next prescaler tick
	CyclesLeft int

	// number of times the timer has overflowed since reset
	Overflows int
}

// Enabled returns true if the timer is running.
func (t Timer) Enabled() bool {
	return t.Control&ControlEnable == ControlEnable
}

// CountUp returns true if count-up timing is selected.
func (t Timer) CountUp() bool {
	return t.Control&ControlCountUp == ControlCountUp
}

// Divisor returns the prescaler divisor in system cycles.
func (t Timer) Divisor() int {
	return clocks.Prescaler(int(t.Control & ControlPrescaler))
}

// Bank is the collection of all eight timers.
type Bank struct {
	env    logger.Permission
	irq    interrupts.Requester
	timers [NumTimers]Timer
}

// NewBank is the preferred method of initialisation for the Bank type.
func NewBank(env logger.Permission, irq interrupts.Requester) *Bank {
	return &Bank{
		env: env,
		irq: irq,
	}
}

// Reset all timers.
func (b *Bank) Reset() {
	for i := range b.timers {
		b.timers[i] = Timer{}
	}
}

func (b *Bank) check(idx int) error {
	if idx < 0 || idx >= NumTimers {
		err := curated.Errorf(faults.InvalidIndex, "timer", idx)
		logger.Log(b.env, "timers", err)
		return err
	}
	return nil
}

// Timer returns a copy of the timer state.
func (b *Bank) Timer(idx int) (Timer, error) {
	if err := b.check(idx); err != nil {
		return Timer{}, err
	}
	return b.timers[idx], nil
}

// ReadCounter returns the current counter value of the timer.
func (b *Bank) ReadCounter(idx int) (uint16, error) {
	if err := b.check(idx); err != nil {
		return 0, err
	}
	return b.timers[idx].Counter, nil
}

// ReadReload returns the reload value of the timer. The reload value is not
// readable by the processors, the counter register reads the counter.
func (b *Bank) ReadReload(idx int) (uint16, error) {
	if err := b.check(idx); err != nil {
		return 0, err
	}
	return b.timers[idx].Reload, nil
}

// ReadControl returns the value of the timer control register.
func (b *Bank) ReadControl(idx int) (uint16, error) {
	if err := b.check(idx); err != nil {
		return 0, err
	}
	return b.timers[idx].Control, nil
}

// WriteReload sets the value loaded into the counter when the timer is
// started or when it overflows. The counter is not changed.
func (b *Bank) WriteReload(idx int, value uint16) error {
	if err := b.check(idx); err != nil {
		return err
	}
	b.timers[idx].Reload = value
	return nil
}

// WriteControl sets the timer control register. Starting a stopped timer
// loads the counter from the reload value and restarts the prescaler.
func (b *Bank) WriteControl(idx int, value uint16) error {
	if err := b.check(idx); err != nil {
		return err
	}

	t := &b.timers[idx]
	wasEnabled := t.Enabled()
	t.Control = value & controlMask

	if t.Enabled() && !wasEnabled {
		t.Counter = t.Reload
	}
	t.CyclesLeft = t.Divisor()

	return nil
}

// Advance the timers of the processor by the number of system cycles.
func (b *Bank) Advance(group cpu.ID, cycles int) {
	base := int(group) * GroupSize

	for i := 0; i < GroupSize; i++ {
		t := &b.timers[base+i]
		if !t.Enabled() {
			continue
		}

		// timers with count-up timing only move when the timer below
		// overflows
		if i > 0 && t.CountUp() {
			continue
		}

		t.CyclesLeft -= cycles
		for t.CyclesLeft <= 0 {
			t.CyclesLeft += t.Divisor()
			b.tick(group, i)
		}
	}
}

// tick increments the timer and handles any overflow, including the chain of
// count-up timers above it. The chain is at most three timers long.
func (b *Bank) tick(group cpu.ID, i int) {
	base := int(group) * GroupSize

	for ; i < GroupSize; i++ {
		t := &b.timers[base+i]

		if t.Counter != 0xffff {
			t.Counter++
			return
		}

		t.Counter = t.Reload
		t.Overflows++
		if t.Control&ControlIRQ == ControlIRQ {
			b.irq.Request(group, interrupts.Timer(i))
		}

		if i+1 >= GroupSize {
			return
		}

		next := b.timers[base+i+1]
		if !next.Enabled() || !next.CountUp() {
			return
		}
	}
}
