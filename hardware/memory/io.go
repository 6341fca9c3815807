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
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/dma"
	"github.com/jetsetilly/gopherds/hardware/mathunit"
	"github.com/jetsetilly/gopherds/hardware/memory/vram"
	"github.com/jetsetilly/gopherds/hardware/timers"
)

// Addresses of the I/O registers. Each address is the aligned word that
// contains the register.
const (
	DISPSTAT   = uint32(0x04000004)
	DMABase    = uint32(0x040000b0)
	DMAStride  = 12
	DMAFill    = uint32(0x040000e0)
	TimerBase  = uint32(0x04000100)
	IPCSYNC    = uint32(0x04000180)
	IPCFIFOCNT = uint32(0x04000184)
	IPCFIFOSND = uint32(0x04000188)
	EXMEMCNT   = uint32(0x04000204)
	IME        = uint32(0x04000208)
	IE         = uint32(0x04000210)
	IF         = uint32(0x04000214)
	VRAMCNT    = uint32(0x04000240)
	WRAMCNT    = uint32(0x04000247)
	VRAMCNTHI  = uint32(0x04000248)
	POSTFLG    = uint32(0x04000300)
	BIOSPROT   = uint32(0x04000308)
	IPCFIFORCV = uint32(0x04100000)
)

// merge the bits of value selected by mask into current
func merge[T ~uint8 | ~uint16 | ~uint32](current T, value uint32, mask uint32) T {
	return (current &^ T(mask)) | (T(value) & T(mask))
}

// dmaRegister decodes the address into a global DMA channel and the index of
// the word in the channel's register block
func dmaRegister(proc cpu.ID, address uint32) (int, int, bool) {
	if address < DMABase || address >= DMABase+DMAStride*dma.GroupSize {
		return 0, 0, false
	}
	offset := address - DMABase
	return dma.Global(proc, int(offset/DMAStride)), int(offset%DMAStride) / 4, true
}

// timerRegister decodes the address into a global timer index
func timerRegister(proc cpu.ID, address uint32) (int, bool) {
	if address < TimerBase || address >= TimerBase+4*timers.GroupSize {
		return 0, false
	}
	return int(proc)*timers.GroupSize + int(address-TimerBase)/4, true
}

// readIO returns the aligned word at the address
func (mem *Memory) readIO(proc cpu.ID, address uint32) uint32 {
	if ch, word, ok := dmaRegister(proc, address); ok {
		switch word {
		case 0:
			v, _ := mem.per.DMA.ReadSource(ch)
			return v
		case 1:
			v, _ := mem.per.DMA.ReadDestination(ch)
			return v
		}
		l, _ := mem.per.DMA.ReadLengthRegister(ch)
		c, _ := mem.per.DMA.ReadControl(ch)
		return uint32(l) | uint32(c)<<16
	}

	if idx, ok := timerRegister(proc, address); ok {
		v, _ := mem.per.Timers.ReadCounter(idx)
		c, _ := mem.per.Timers.ReadControl(idx)
		return uint32(v) | uint32(c)<<16
	}

	if proc == cpu.ARM9 {
		if address >= DMAFill && address < DMAFill+16 {
			return mem.per.DMA.ReadFill(int(address-DMAFill) / 4)
		}
		if mathunit.Contains(address) {
			v, _ := mem.per.Math.Read(address)
			return v
		}
	}

	switch address {
	case DISPSTAT:
		return uint32(mem.per.Display.ReadStat(proc)) | uint32(mem.per.Display.ReadVCount())<<16
	case IPCSYNC:
		return uint32(mem.per.IPC.ReadSync(proc))
	case IPCFIFOCNT:
		return uint32(mem.per.IPC.ReadFIFOControl(proc))
	case IPCFIFORCV:
		v, _ := mem.per.IPC.ReadFIFO(proc)
		return v
	case EXMEMCNT:
		if proc == cpu.ARM9 {
			return uint32(mem.exmem[cpu.ARM9])
		}
		return uint32(mem.exmem[cpu.ARM9]&0xff80 | mem.exmem[cpu.ARM7]&0x007f)
	case IME:
		return mem.per.Interrupts.ReadIME(proc)
	case IE:
		return mem.per.Interrupts.ReadIE(proc)
	case IF:
		return mem.per.Interrupts.ReadIF(proc)
	case POSTFLG:
		return uint32(mem.postflg[proc])
	}

	if proc == cpu.ARM9 {
		switch address {
		case VRAMCNT:
			var v uint32
			for b := vram.A; b <= vram.D; b++ {
				c, _ := mem.VRAM.ReadControl(b)
				v |= uint32(c) << (8 * uint32(b-vram.A))
			}
			return v
		case VRAMCNT + 4:
			var v uint32
			for b := vram.E; b <= vram.G; b++ {
				c, _ := mem.VRAM.ReadControl(b)
				v |= uint32(c) << (8 * uint32(b-vram.E))
			}
			return v | uint32(mem.WRAM.ReadControl())<<24
		case VRAMCNTHI:
			h, _ := mem.VRAM.ReadControl(vram.H)
			i, _ := mem.VRAM.ReadControl(vram.I)
			return uint32(h) | uint32(i)<<8
		}
		return 0
	}

	switch address {
	case VRAMCNT:
		// VRAMSTAT and WRAMSTAT
		return uint32(mem.VRAM.ARM7Status()) | uint32(mem.WRAM.ReadControl())<<8
	case BIOSPROT:
		return mem.bootProtect
	}

	return 0
}

// writeIO writes the bits selected by mask to the aligned word at the
// address
func (mem *Memory) writeIO(proc cpu.ID, address uint32, value uint32, mask uint32) {
	if ch, word, ok := dmaRegister(proc, address); ok {
		d := mem.per.DMA
		switch word {
		case 0:
			v, _ := d.ReadSource(ch)
			_ = d.WriteSource(ch, merge(v, value, mask))
		case 1:
			v, _ := d.ReadDestination(ch)
			_ = d.WriteDestination(ch, merge(v, value, mask))
		default:
			if mask&0x0000ffff != 0 {
				l, _ := d.ReadLengthRegister(ch)
				_ = d.WriteLength(ch, merge(l, value, mask))
			}
			if mask&0xffff0000 != 0 {
				c, _ := d.ReadControl(ch)
				_ = d.WriteControl(ch, merge(c, value>>16, mask>>16))
			}
		}
		return
	}

	if idx, ok := timerRegister(proc, address); ok {
		t := mem.per.Timers
		if mask&0x0000ffff != 0 {
			r, _ := t.ReadReload(idx)
			_ = t.WriteReload(idx, merge(r, value, mask))
		}
		if mask&0xffff0000 != 0 {
			c, _ := t.ReadControl(idx)
			_ = t.WriteControl(idx, merge(c, value>>16, mask>>16))
		}
		return
	}

	if proc == cpu.ARM9 {
		if address >= DMAFill && address < DMAFill+16 {
			mem.per.DMA.WriteFill(int(address-DMAFill)/4, value, mask)
			return
		}
		if mathunit.Contains(address) {
			mem.per.Math.Write(address, value, mask)
			return
		}
	}

	switch address {
	case DISPSTAT:
		// VCOUNT is not writable
		mem.per.Display.WriteStat(proc, uint16(value), uint16(mask))
		return
	case IPCSYNC:
		mem.per.IPC.WriteSync(proc, uint16(value), uint16(mask))
		return
	case IPCFIFOCNT:
		mem.per.IPC.WriteFIFOControl(proc, uint16(value), uint16(mask))
		return
	case IPCFIFOSND:
		_ = mem.per.IPC.WriteFIFO(proc, value&mask)
		return
	case EXMEMCNT:
		if proc == cpu.ARM9 {
			mem.exmem[cpu.ARM9] = merge(mem.exmem[cpu.ARM9], value, mask)
		} else {
			mem.exmem[cpu.ARM7] = merge(mem.exmem[cpu.ARM7], value, mask&0x007f)
		}
		return
	case IME:
		mem.per.Interrupts.WriteIME(proc, value, mask)
		return
	case IE:
		mem.per.Interrupts.WriteIE(proc, value, mask)
		return
	case IF:
		mem.per.Interrupts.WriteIF(proc, value, mask)
		return
	case POSTFLG:
		postMask := uint32(0x01)
		if proc == cpu.ARM9 {
			postMask = 0x03
		}
		mem.postflg[proc] = merge(mem.postflg[proc], value, mask&postMask)
		return
	}

	if proc == cpu.ARM9 {
		switch address {
		case VRAMCNT:
			mem.writeVRAMCNT(vram.A, vram.D, value, mask)
		case VRAMCNT + 4:
			mem.writeVRAMCNT(vram.E, vram.G, value, mask)
			if mask&0xff000000 != 0 {
				mem.WRAM.WriteControl(uint8(value >> 24))
			}
		case VRAMCNTHI:
			mem.writeVRAMCNT(vram.H, vram.I, value, mask)
		default:
			mem.unmapped(proc, address, true)
		}
		return
	}

	switch address {
	case BIOSPROT:
		mem.bootProtect = merge(mem.bootProtect, value, mask)
	default:
		mem.unmapped(proc, address, true)
	}
}

// write the VRAMCNT registers for the consecutive banks in the byte lanes of
// the word
func (mem *Memory) writeVRAMCNT(first vram.Bank, last vram.Bank, value uint32, mask uint32) {
	for b := first; b <= last; b++ {
		shift := 8 * uint32(b-first)
		if (mask>>shift)&0xff != 0 {
			_ = mem.VRAM.WriteControl(b, uint8(value>>shift))
		}
	}
}
