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

package memory

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/environment"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/display"
	"github.com/jetsetilly/gopherds/hardware/dma"
	"github.com/jetsetilly/gopherds/hardware/faults"
	"github.com/jetsetilly/gopherds/hardware/interrupts"
	"github.com/jetsetilly/gopherds/hardware/ipc"
	"github.com/jetsetilly/gopherds/hardware/mathunit"
	"github.com/jetsetilly/gopherds/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherds/hardware/memory/vram"
	"github.com/jetsetilly/gopherds/hardware/memory/wram"
	"github.com/jetsetilly/gopherds/hardware/timers"
	"github.com/jetsetilly/gopherds/logger"
)

// Peripherals are the components with registers in the I/O area.
type Peripherals struct {
	Interrupts *interrupts.Controller
	Timers     *timers.Bank
	DMA        *dma.Engine
	IPC        *ipc.Channel
	Display    *display.Display
	Math       *mathunit.Unit
}

// ProgramCounter is implemented by a processor attached to the bus. The
// program counter is used to decide if the boot ROM is readable.
type ProgramCounter interface {
	ProgramCounter() uint32
}

// Memory is the memory bus of the console.
type Memory struct {
	env *environment.Environment
	per Peripherals

	MainRAM []byte
	Palette []byte
	OAM     []byte
	WRAM    *wram.WRAM
	VRAM    *vram.VRAM

	bootROM [cpu.NumProcessors][]byte

	// processors attached to the bus. may be nil
	pc [cpu.NumProcessors]ProgramCounter

	// the ARM7 boot ROM is unreadable when the program counter is at or
	// beyond this address
	bootProtect uint32

	// EXMEMCNT as written by the ARM9. the ARM7 can only write the lower
	// seven bits of its own copy
	exmem [cpu.NumProcessors]uint16

	postflg [cpu.NumProcessors]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment, per Peripherals) *Memory {
	mem := &Memory{
		env:     env,
		per:     per,
		MainRAM: make([]byte, memorymap.SizeMainRAM),
		Palette: make([]byte, memorymap.SizePalette),
		OAM:     make([]byte, memorymap.SizeOAM),
		WRAM:    wram.NewWRAM(),
		VRAM:    vram.NewVRAM(),
	}
	mem.bootROM[cpu.ARM9] = make([]byte, memorymap.SizeARM9BootROM)
	mem.bootROM[cpu.ARM7] = make([]byte, memorymap.SizeARM7BootROM)
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("wramcnt=%d exmemcnt=%04x biosprot=%04x", mem.WRAM.ReadControl(), mem.exmem[cpu.ARM9], mem.bootProtect)
}

// Reset clears all memory except for the boot ROMs. If the RandomState
// preference is set then main RAM and work RAM are filled with random
// values.
func (mem *Memory) Reset() {
	clear(mem.MainRAM)
	clear(mem.Palette)
	clear(mem.OAM)
	mem.WRAM.Reset()
	mem.VRAM.Reset()

	if mem.env.Prefs.RandomState.Get().(bool) {
		mem.env.Random.Fill(mem.MainRAM)
		mem.env.Random.Fill(mem.WRAM.Shared)
		mem.env.Random.Fill(mem.WRAM.ARM7)
	}

	mem.bootProtect = uint32(mem.env.Prefs.BootProtect.Get().(int))
	mem.exmem = [cpu.NumProcessors]uint16{}
	mem.postflg = [cpu.NumProcessors]uint8{}
}

// Attach the processor to the bus.
func (mem *Memory) Attach(proc cpu.ID, pc ProgramCounter) {
	mem.pc[proc] = pc
}

// LoadBootROM copies the data into the boot ROM of the processor. Data
// shorter than the boot ROM leaves the remainder of the ROM as zero.
func (mem *Memory) LoadBootROM(proc cpu.ID, data []byte) error {
	if !proc.Valid() {
		return curated.Errorf(faults.InvalidIndex, "memory", int(proc))
	}
	rom := mem.bootROM[proc]
	if len(data) > len(rom) {
		return curated.Errorf(faults.BootROMSize, proc, len(data))
	}
	clear(rom)
	copy(rom, data)
	return nil
}

// CartridgeOwner returns the processor that has access to the cartridge
// bus. This is decided by bit 11 of EXMEMCNT.
func (mem *Memory) CartridgeOwner() cpu.ID {
	if mem.exmem[cpu.ARM9]&0x0800 == 0x0800 {
		return cpu.ARM7
	}
	return cpu.ARM9
}

// BootProtect returns the current value of the BIOSPROT register.
func (mem *Memory) BootProtect() uint32 {
	return mem.bootProtect
}

// protected returns true if the boot ROM of the processor is not readable
func (mem *Memory) protected(proc cpu.ID) bool {
	if proc != cpu.ARM7 || mem.pc[proc] == nil {
		return false
	}
	return mem.pc[proc].ProgramCounter() >= mem.bootProtect
}

// backing returns the memory and the offset into that memory for the
// address. the ok value is false if there is no memory at the address. VRAM
// and IO are not handled by this function
func (mem *Memory) backing(proc cpu.ID, address uint32) ([]byte, uint32, memorymap.Area, bool) {
	ma, area := memorymap.MapAddress(proc, address)
	switch area {
	case memorymap.MainRAM:
		return mem.MainRAM, ma, area, true
	case memorymap.SharedWRAM, memorymap.ARM7WRAM:
		data, offset, ok := mem.WRAM.Resolve(proc, address)
		return data, offset, area, ok
	case memorymap.Palette:
		return mem.Palette, ma, area, true
	case memorymap.OAM:
		return mem.OAM, ma, area, true
	case memorymap.BootROM:
		return mem.bootROM[proc], ma, area, true
	}
	return nil, 0, area, false
}

func (mem *Memory) unmapped(proc cpu.ID, address uint32, write bool) {
	if !mem.env.Prefs.LogUnmapped.Get().(bool) {
		return
	}
	if write {
		logger.Logf(mem.env, "memory", "%v: unmapped write (%#08x)", proc, address)
	} else {
		logger.Logf(mem.env, "memory", "%v: unmapped read (%#08x)", proc, address)
	}
}

// the value returned by a read from the boot ROM when it is protected
const protectedValue = 0xffffffff

// read a little-endian value of size bytes. the address is aligned to size
func (mem *Memory) read(proc cpu.ID, address uint32, size uint32) uint32 {
	address &^= size - 1

	if address>>24 == 0x04 {
		// only a read that covers the lowest byte pops the receive FIFO
		if address&^0x03 == IPCFIFORCV && address&0x03 != 0 {
			return extract(mem.per.IPC.LastFIFO(proc), address, size)
		}
		word := mem.readIO(proc, address&^0x03)
		return extract(word, address, size)
	}

	if address>>24 == 0x06 {
		va, purpose, ok := memorymap.MapVRAM(proc, address)
		if !ok {
			mem.unmapped(proc, address, false)
			return ones(size)
		}
		switch size {
		case 1:
			return uint32(mem.VRAM.Read8(va, purpose))
		case 2:
			return uint32(mem.VRAM.Read16(va, purpose))
		}
		return mem.VRAM.Read32(va, purpose)
	}

	data, offset, area, ok := mem.backing(proc, address)
	if !ok {
		// shared WRAM that is not allocated to the processor reads as zero
		if area == memorymap.SharedWRAM {
			return 0
		}
		if area != memorymap.Slot2 {
			mem.unmapped(proc, address, false)
		}
		return ones(size)
	}

	if area == memorymap.BootROM && mem.protected(proc) {
		return protectedValue & ones(size)
	}

	switch size {
	case 1:
		return uint32(data[offset])
	case 2:
		return uint32(binary.LittleEndian.Uint16(data[offset:]))
	}
	return binary.LittleEndian.Uint32(data[offset:])
}

// write a little-endian value of size bytes. the address is aligned to size
func (mem *Memory) write(proc cpu.ID, address uint32, size uint32, data uint32) {
	address &^= size - 1

	if address>>24 == 0x04 {
		shift := (address & 0x03) * 8
		mem.writeIO(proc, address&^0x03, data<<shift, ones(size)<<shift)
		return
	}

	if address>>24 == 0x06 {
		va, purpose, ok := memorymap.MapVRAM(proc, address)
		if !ok {
			mem.unmapped(proc, address, true)
			return
		}
		switch size {
		case 1:
			mem.VRAM.Write8(va, purpose, uint8(data))
		case 2:
			mem.VRAM.Write16(va, purpose, uint16(data))
		default:
			mem.VRAM.Write32(va, purpose, data)
		}
		return
	}

	mem.store(proc, address, size, data, false)
}

// store data in memory. boot ROM is only written if rom is true. returns
// false if there is no writable memory at the address
func (mem *Memory) store(proc cpu.ID, address uint32, size uint32, data uint32, rom bool) bool {
	b, offset, area, ok := mem.backing(proc, address)
	if !ok || (area == memorymap.BootROM && !rom) {
		if area != memorymap.Slot2 && area != memorymap.SharedWRAM {
			mem.unmapped(proc, address, true)
		}
		return false
	}

	switch size {
	case 1:
		b[offset] = uint8(data)
	case 2:
		binary.LittleEndian.PutUint16(b[offset:], uint16(data))
	default:
		binary.LittleEndian.PutUint32(b[offset:], data)
	}
	return true
}

// ones returns a value with all bits of size bytes set
func ones(size uint32) uint32 {
	switch size {
	case 1:
		return 0xff
	case 2:
		return 0xffff
	}
	return 0xffffffff
}

// extract the bytes of size at the address from the aligned word
func extract(word uint32, address uint32, size uint32) uint32 {
	return (word >> ((address & 0x03) * 8)) & ones(size)
}

// Read8 reads a byte for the processor.
func (mem *Memory) Read8(proc cpu.ID, address uint32) uint8 {
	return uint8(mem.read(proc, address, 1))
}

// Read16 reads a halfword for the processor. The address is aligned to a
// halfword boundary.
func (mem *Memory) Read16(proc cpu.ID, address uint32) uint16 {
	return uint16(mem.read(proc, address, 2))
}

// Read32 reads a word for the processor. The address is aligned to a word
// boundary.
func (mem *Memory) Read32(proc cpu.ID, address uint32) uint32 {
	return mem.read(proc, address, 4)
}

// Write8 writes a byte for the processor.
func (mem *Memory) Write8(proc cpu.ID, address uint32, data uint8) {
	mem.write(proc, address, 1, uint32(data))
}

// Write16 writes a halfword for the processor. The address is aligned to a
// halfword boundary.
func (mem *Memory) Write16(proc cpu.ID, address uint32, data uint16) {
	mem.write(proc, address, 2, uint32(data))
}

// Write32 writes a word for the processor. The address is aligned to a word
// boundary.
func (mem *Memory) Write32(proc cpu.ID, address uint32, data uint32) {
	mem.write(proc, address, 4, data)
}
