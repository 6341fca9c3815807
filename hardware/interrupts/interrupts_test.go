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

package interrupts_test

import (
	"testing"

	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/interrupts"
	"github.com/jetsetilly/gopherds/test"
)

func TestRequest(t *testing.T) {
	c := interrupts.NewController()

	c.Request(cpu.ARM7, interrupts.Timer1)
	test.ExpectEquality(t, c.ReadIF(cpu.ARM7), uint32(1<<4))
	test.ExpectEquality(t, c.ReadIF(cpu.ARM9), uint32(0))

	// requested but not enabled
	test.ExpectFailure(t, c.Requesting(cpu.ARM7))

	// enabled but no master enable
	c.WriteIE(cpu.ARM7, 1<<4, 0xffffffff)
	test.ExpectFailure(t, c.Requesting(cpu.ARM7))

	c.WriteIME(cpu.ARM7, 1, 0xffffffff)
	test.ExpectSuccess(t, c.Requesting(cpu.ARM7))

	// the request persists when the enable is removed
	c.WriteIE(cpu.ARM7, 0, 0xffffffff)
	test.ExpectFailure(t, c.Requesting(cpu.ARM7))
	test.ExpectEquality(t, c.ReadIF(cpu.ARM7), uint32(1<<4))
}

func TestAcknowledge(t *testing.T) {
	c := interrupts.NewController()
	c.Request(cpu.ARM9, interrupts.VBlank)
	c.Request(cpu.ARM9, interrupts.IPCSync)

	// writing zero has no effect
	c.WriteIF(cpu.ARM9, 0, 0xffffffff)
	test.ExpectEquality(t, c.ReadIF(cpu.ARM9), uint32(0x00010001))

	// only the bytes selected by the mask are acknowledged
	c.WriteIF(cpu.ARM9, 0xffffffff, 0x000000ff)
	test.ExpectEquality(t, c.ReadIF(cpu.ARM9), uint32(0x00010000))

	c.WriteIF(cpu.ARM9, 0x00010000, 0xffffffff)
	test.ExpectEquality(t, c.ReadIF(cpu.ARM9), uint32(0))
}

func TestRoundTrip(t *testing.T) {
	c := interrupts.NewController()

	// reserved bits are cleared
	c.WriteIE(cpu.ARM9, 0xffffffff, 0xffffffff)
	test.ExpectEquality(t, c.ReadIE(cpu.ARM9), interrupts.DefinedBits)

	v := c.ReadIE(cpu.ARM9)
	c.WriteIE(cpu.ARM9, v, 0xffffffff)
	test.ExpectEquality(t, c.ReadIE(cpu.ARM9), v)

	c.WriteIME(cpu.ARM9, 0xffffffff, 0xffffffff)
	test.ExpectEquality(t, c.ReadIME(cpu.ARM9), uint32(1))
}

func TestLines(t *testing.T) {
	test.ExpectEquality(t, interrupts.Timer(2), interrupts.Timer2)
	test.ExpectEquality(t, interrupts.Timer(6), interrupts.Timer2)
	test.ExpectEquality(t, interrupts.DMA(7), interrupts.DMA3)
	test.ExpectEquality(t, interrupts.IPCRecvNotEmpty.String(), "ipc recv not empty")
	test.ExpectEquality(t, int(interrupts.Wifi), 24)
}
