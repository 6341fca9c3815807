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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopherds/environment"
	"github.com/jetsetilly/gopherds/govern"
	"github.com/jetsetilly/gopherds/hardware"
	"github.com/jetsetilly/gopherds/hardware/clocks"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/display"
	"github.com/jetsetilly/gopherds/hardware/dma"
	"github.com/jetsetilly/gopherds/hardware/interrupts"
	"github.com/jetsetilly/gopherds/hardware/memory"
	"github.com/jetsetilly/gopherds/hardware/timers"
	"github.com/jetsetilly/gopherds/test"
)

func newNDS(t *testing.T) (*hardware.NDS, *cpu.Idle, *cpu.Idle) {
	t.Helper()
	arm9 := cpu.NewIdle(1, 0x02000000)
	arm7 := cpu.NewIdle(1, 0x02000000)
	nds, err := hardware.NewNDS(environment.MainEmulation, nil, arm9, arm7, nil)
	test.DemandSuccess(t, err)
	return nds, arm9, arm7
}

func TestMissingProcessor(t *testing.T) {
	_, err := hardware.NewNDS(environment.MainEmulation, nil, cpu.NewIdle(1, 0), nil, nil)
	test.ExpectFailure(t, err)
	_, err = hardware.NewNDS(environment.MainEmulation, nil, nil, cpu.NewIdle(1, 0), nil)
	test.ExpectFailure(t, err)
}

func TestFrame(t *testing.T) {
	nds, arm9, arm7 := newNDS(t)

	nds.RunFrame()
	test.ExpectEquality(t, nds.Timeline.Now(), uint64(clocks.Frame))
	test.ExpectEquality(t, nds.Display.Frames, 1)

	// the ARM9 runs at twice the rate of the ARM7
	test.ExpectEquality(t, arm7.Clock(), uint64(clocks.Frame))
	test.ExpectEquality(t, arm9.Clock(), uint64(clocks.Frame)<<1)
	test.ExpectEquality(t, arm9.Instructions, 2*arm7.Instructions)
}

func TestTimersFollowTimeline(t *testing.T) {
	nds, _, _ := newNDS(t)

	nds.Mem.Write16(cpu.ARM9, memory.TimerBase+2, timers.ControlEnable)
	nds.Mem.Write16(cpu.ARM7, memory.TimerBase+2, timers.ControlEnable)

	for i := 0; i < 10; i++ {
		nds.Step()
	}

	now := nds.Timeline.Now()
	test.ExpectEquality(t, now, uint64(200))

	// both groups of timers count in system cycles
	c, _ := nds.Timers.ReadCounter(0)
	test.ExpectEquality(t, c, uint16(now))
	c, _ = nds.Timers.ReadCounter(4)
	test.ExpectEquality(t, c, uint16(now))
}

func TestOddARM9Cycles(t *testing.T) {
	arm9 := cpu.NewIdle(3, 0x02000000)
	arm7 := cpu.NewIdle(1, 0x02000000)
	nds, err := hardware.NewNDS(environment.MainEmulation, nil, arm9, arm7, nil)
	test.DemandSuccess(t, err)

	nds.Mem.Write16(cpu.ARM9, memory.TimerBase+2, timers.ControlEnable)
	nds.Step()

	// 14 instructions of three cycles takes the ARM9 to 42 cycles, which is
	// 21 system cycles
	test.ExpectEquality(t, arm9.Clock(), uint64(42))
	c, _ := nds.Timers.ReadCounter(0)
	test.ExpectEquality(t, c, uint16(21))
}

func TestDMAStall(t *testing.T) {
	nds, arm9, arm7 := newNDS(t)

	nds.Mem.Write32(cpu.ARM9, 0x02000000, 0x11223344)
	nds.Mem.Write32(cpu.ARM9, 0x02000004, 0x55667788)

	nds.Mem.Write32(cpu.ARM9, memory.DMABase, 0x02000000)
	nds.Mem.Write32(cpu.ARM9, memory.DMABase+4, 0x02001000)
	nds.Mem.Write16(cpu.ARM9, memory.DMABase+8, 4)
	nds.Mem.Write16(cpu.ARM9, memory.DMABase+10, dma.ControlEnable)
	test.ExpectSuccess(t, nds.DMA.IsActive())

	for i := 0; i < 4; i++ {
		nds.Step()
	}

	// neither processor ran while the channel was active
	test.ExpectEquality(t, arm9.Instructions, 0)
	test.ExpectEquality(t, arm7.Instructions, 0)
	test.ExpectFailure(t, nds.DMA.IsActive())
	test.ExpectEquality(t, nds.Mem.Read32(cpu.ARM7, 0x02001004), uint32(0x55667788))

	nds.Step()
	test.ExpectInequality(t, arm9.Instructions, 0)
	test.ExpectInequality(t, arm7.Instructions, 0)
}

func TestHaltAndWake(t *testing.T) {
	nds, arm9, arm7 := newNDS(t)
	arm7.Halt()

	nds.Mem.Write16(cpu.ARM7, memory.DISPSTAT, display.StatVBlankIRQ)
	nds.Mem.Write32(cpu.ARM7, memory.IE, 0x01)
	nds.Mem.Write32(cpu.ARM7, memory.IME, 0x01)

	nds.RunFrame()

	test.ExpectFailure(t, arm7.Halted())
	test.ExpectEquality(t, arm7.Interrupts, 1)
	test.ExpectInequality(t, arm7.Instructions, 0)
	test.ExpectSuccess(t, 2*arm7.Instructions < arm9.Instructions)

	// the ARM9 was not interrupted
	test.ExpectEquality(t, arm9.Interrupts, 0)

	// the halted processor kept time
	test.ExpectEquality(t, arm7.Clock(), uint64(clocks.Frame))
}

func TestHaltWithoutMasterEnable(t *testing.T) {
	nds, _, arm7 := newNDS(t)
	arm7.Halt()

	nds.Mem.Write32(cpu.ARM7, memory.IE, 1<<interrupts.IPCSync)
	nds.Interrupts.Request(cpu.ARM7, interrupts.IPCSync)

	// the interrupt is enabled and flagged but IME is clear
	nds.Step()
	test.ExpectSuccess(t, arm7.Halted())
	test.ExpectEquality(t, arm7.Instructions, 0)
	test.ExpectEquality(t, arm7.Interrupts, 0)

	nds.Mem.Write32(cpu.ARM7, memory.IME, 0x01)
	nds.Step()
	test.ExpectFailure(t, arm7.Halted())
	test.ExpectEquality(t, arm7.Interrupts, 1)
	test.ExpectInequality(t, arm7.Instructions, 0)
}

func TestWakeDuringDMAStall(t *testing.T) {
	nds, _, arm7 := newNDS(t)
	arm7.Halt()

	nds.Mem.Write32(cpu.ARM7, memory.IE, 1<<interrupts.IPCSync)
	nds.Mem.Write32(cpu.ARM7, memory.IME, 0x01)

	nds.Mem.Write32(cpu.ARM9, memory.DMABase, 0x02000000)
	nds.Mem.Write32(cpu.ARM9, memory.DMABase+4, 0x02100000)
	nds.Mem.Write16(cpu.ARM9, memory.DMABase+8, 1000)
	nds.Mem.Write16(cpu.ARM9, memory.DMABase+10, dma.ControlEnable)

	nds.Interrupts.Request(cpu.ARM7, interrupts.IPCSync)
	nds.Step()

	// awake but not fetching while the transfer holds the bus
	test.DemandSuccess(t, nds.DMA.IsActive())
	test.ExpectFailure(t, arm7.Halted())
	test.ExpectEquality(t, arm7.Instructions, 0)
	test.ExpectEquality(t, arm7.Interrupts, 0)

	for nds.DMA.IsActive() {
		nds.Step()
	}
	nds.Step()
	test.ExpectEquality(t, arm7.Interrupts, 1)
	test.ExpectInequality(t, arm7.Instructions, 0)
}

type geometry struct {
	calls int
}

func (g *geometry) Run(cycles int) bool {
	g.calls++
	return g.calls == 1
}

func TestGeometryDMA(t *testing.T) {
	arm9 := cpu.NewIdle(1, 0x02000000)
	arm7 := cpu.NewIdle(1, 0x02000000)
	geom := &geometry{}
	nds, err := hardware.NewNDS(environment.MainEmulation, nil, arm9, arm7, geom)
	test.DemandSuccess(t, err)

	ch := dma.Global(cpu.ARM9, 1)
	test.ExpectSuccess(t, nds.DMA.WriteSource(ch, 0x02000000))
	test.ExpectSuccess(t, nds.DMA.WriteDestination(ch, 0x04000400))
	test.ExpectSuccess(t, nds.DMA.WriteLength(ch, 4))
	test.ExpectSuccess(t, nds.DMA.WriteControl(ch, dma.ControlEnable|dma.ControlWord|0x3800))
	test.ExpectEquality(t, nds.DMA.State(ch), dma.Waiting)

	for i := 0; i < 10; i++ {
		nds.Step()
	}

	c, _ := nds.DMA.Channel(ch)
	test.ExpectEquality(t, c.Units, 4)
	test.ExpectFailure(t, c.Enabled())
	test.ExpectInequality(t, geom.calls, 0)
}

func TestCartridgeTransfer(t *testing.T) {
	nds, _, _ := newNDS(t)

	// give the cartridge to the ARM7 and wait on ARM7 channel 0
	nds.Mem.Write16(cpu.ARM9, memory.EXMEMCNT, 0x0800)
	ch := dma.Global(cpu.ARM7, 0)
	test.ExpectSuccess(t, nds.DMA.WriteLength(ch, 1))
	test.ExpectSuccess(t, nds.DMA.WriteControl(ch, dma.ControlEnable|0x2000))

	nds.CartridgeTransfer()
	test.ExpectEquality(t, nds.DMA.State(ch), dma.Active)
}

func TestRun(t *testing.T) {
	nds, _, _ := newNDS(t)

	err := nds.Run(func() (govern.State, error) {
		if nds.Display.Frames >= 2 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, nds.Display.Frames, 2)

	var seen []int
	err = nds.RunForFrameCount(3, func(frame int) (govern.State, error) {
		seen = append(seen, frame)
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, nds.Display.Frames, 5)
	test.ExpectEquality(t, len(seen), 3)
	test.ExpectEquality(t, seen[2], 5)
}

func TestReset(t *testing.T) {
	nds, arm9, _ := newNDS(t)
	nds.RunFrame()
	nds.Mem.Write32(cpu.ARM9, 0x02000000, 0xffffffff)

	nds.Reset()
	test.ExpectEquality(t, nds.Timeline.Now(), uint64(0))
	test.ExpectEquality(t, arm9.Clock(), uint64(0))
	test.ExpectEquality(t, nds.Mem.Read32(cpu.ARM9, 0x02000000), uint32(0))
	test.ExpectEquality(t, nds.Display.Frames, 0)
}
