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

package timers_test

import (
	"testing"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/faults"
	"github.com/jetsetilly/gopherds/hardware/interrupts"
	"github.com/jetsetilly/gopherds/hardware/timers"
	"github.com/jetsetilly/gopherds/logger"
	"github.com/jetsetilly/gopherds/test"
)

type request struct {
	proc cpu.ID
	id   interrupts.ID
}

type requests []request

func (r *requests) Request(proc cpu.ID, id interrupts.ID) {
	*r = append(*r, request{proc: proc, id: id})
}

func TestOverflow(t *testing.T) {
	var irq requests
	b := timers.NewBank(logger.Allow, &irq)

	// timer 4 is the first timer of the ARM7
	test.ExpectSuccess(t, b.WriteReload(4, 0xfff0))
	test.ExpectSuccess(t, b.WriteControl(4, timers.ControlEnable|timers.ControlIRQ))

	// timer 5 counts up from timer 4
	test.ExpectSuccess(t, b.WriteControl(5, timers.ControlEnable|timers.ControlCountUp))

	// 15 ticks brings the counter to the top
	b.Advance(cpu.ARM7, 15)
	c, _ := b.ReadCounter(4)
	test.ExpectEquality(t, c, uint16(0xffff))
	test.ExpectEquality(t, len(irq), 0)

	// the 16th tick overflows
	b.Advance(cpu.ARM7, 1)
	tm, _ := b.Timer(4)
	test.ExpectEquality(t, tm.Overflows, 1)
	test.ExpectEquality(t, tm.Counter, uint16(0xfff0))

	c, _ = b.ReadCounter(5)
	test.ExpectEquality(t, c, uint16(1))

	test.ExpectEquality(t, len(irq), 1)
	test.ExpectEquality(t, irq[0], request{proc: cpu.ARM7, id: interrupts.Timer0})

	// the ARM9 timers have not moved
	c, _ = b.ReadCounter(0)
	test.ExpectEquality(t, c, uint16(0))
}

func TestPrescaler(t *testing.T) {
	var irq requests
	b := timers.NewBank(logger.Allow, &irq)

	// prescaler of 64
	test.ExpectSuccess(t, b.WriteControl(1, timers.ControlEnable|0x01))

	b.Advance(cpu.ARM9, 63)
	c, _ := b.ReadCounter(1)
	test.ExpectEquality(t, c, uint16(0))

	b.Advance(cpu.ARM9, 1)
	c, _ = b.ReadCounter(1)
	test.ExpectEquality(t, c, uint16(1))

	// a large advance produces many ticks
	b.Advance(cpu.ARM9, 64*100)
	c, _ = b.ReadCounter(1)
	test.ExpectEquality(t, c, uint16(101))
}

func TestCountUpNeverPrescales(t *testing.T) {
	var irq requests
	b := timers.NewBank(logger.Allow, &irq)

	// timer 0 is stopped so timer 1 should never move
	test.ExpectSuccess(t, b.WriteControl(1, timers.ControlEnable|timers.ControlCountUp))
	b.Advance(cpu.ARM9, 10000)
	c, _ := b.ReadCounter(1)
	test.ExpectEquality(t, c, uint16(0))

	// timer 1 increments exactly once per overflow of timer 0
	test.ExpectSuccess(t, b.WriteReload(0, 0xfffe))
	test.ExpectSuccess(t, b.WriteControl(0, timers.ControlEnable))
	for i := 1; i <= 10; i++ {
		b.Advance(cpu.ARM9, 2)
		c, _ = b.ReadCounter(1)
		test.ExpectEquality(t, c, uint16(i))
	}
}

func TestCountUpOnFirstTimer(t *testing.T) {
	var irq requests
	b := timers.NewBank(logger.Allow, &irq)

	// the first timer of a group has nothing to count up from and uses its
	// prescaler
	test.ExpectSuccess(t, b.WriteControl(4, timers.ControlEnable|timers.ControlCountUp))
	b.Advance(cpu.ARM7, 5)
	c, _ := b.ReadCounter(4)
	test.ExpectEquality(t, c, uint16(5))
}

func TestCascade(t *testing.T) {
	var irq requests
	b := timers.NewBank(logger.Allow, &irq)

	// timers 1, 2 and 3 all at the top and counting up
	for i := 1; i < 4; i++ {
		test.ExpectSuccess(t, b.WriteReload(i, 0xffff))
		test.ExpectSuccess(t, b.WriteControl(i, timers.ControlEnable|timers.ControlCountUp|timers.ControlIRQ))
	}
	test.ExpectSuccess(t, b.WriteReload(0, 0xffff))
	test.ExpectSuccess(t, b.WriteControl(0, timers.ControlEnable|timers.ControlIRQ))

	// a single tick overflows all four timers
	b.Advance(cpu.ARM9, 1)
	test.ExpectEquality(t, len(irq), 4)
	for i, r := range irq {
		test.ExpectEquality(t, r, request{proc: cpu.ARM9, id: interrupts.Timer(i)})
	}

	// the cascade does not cross into the ARM7 group
	c, _ := b.ReadCounter(4)
	test.ExpectEquality(t, c, uint16(0))
}

func TestStartLoadsCounter(t *testing.T) {
	var irq requests
	b := timers.NewBank(logger.Allow, &irq)

	test.ExpectSuccess(t, b.WriteReload(2, 0x1234))
	c, _ := b.ReadCounter(2)
	test.ExpectEquality(t, c, uint16(0))

	test.ExpectSuccess(t, b.WriteControl(2, timers.ControlEnable))
	c, _ = b.ReadCounter(2)
	test.ExpectEquality(t, c, uint16(0x1234))

	// writing the reload value of a running timer does not change the counter
	test.ExpectSuccess(t, b.WriteReload(2, 0x5678))
	c, _ = b.ReadCounter(2)
	test.ExpectEquality(t, c, uint16(0x1234))
}

func TestControlRoundTrip(t *testing.T) {
	var irq requests
	b := timers.NewBank(logger.Allow, &irq)

	test.ExpectSuccess(t, b.WriteControl(3, 0xffff))
	v, _ := b.ReadControl(3)
	test.ExpectEquality(t, v, uint16(0x00c7))

	test.ExpectSuccess(t, b.WriteControl(3, v))
	w, _ := b.ReadControl(3)
	test.ExpectEquality(t, w, v)
}

func TestInvalidIndex(t *testing.T) {
	var irq requests
	b := timers.NewBank(logger.Allow, &irq)

	err := b.WriteControl(8, timers.ControlEnable)
	test.ExpectSuccess(t, curated.Is(err, faults.InvalidIndex))

	_, err = b.ReadCounter(-1)
	test.ExpectSuccess(t, curated.Is(err, faults.InvalidIndex))
}
