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

package memorymap

import (
	"github.com/jetsetilly/gopherds/hardware/cpu"
)

// Area represents the different areas of memory.
type Area int

// List of areas.
const (
	Unmapped Area = iota
	BootROM
	MainRAM
	SharedWRAM
	ARM7WRAM
	IO
	Palette
	VRAM
	OAM
	Slot2
)

func (a Area) String() string {
	switch a {
	case BootROM:
		return "boot rom"
	case MainRAM:
		return "main ram"
	case SharedWRAM:
		return "shared wram"
	case ARM7WRAM:
		return "arm7 wram"
	case IO:
		return "io"
	case Palette:
		return "palette"
	case VRAM:
		return "vram"
	case OAM:
		return "oam"
	case Slot2:
		return "slot2"
	}
	return "unmapped"
}

// The origin and size of each area. The region of the address space given
// over to an area is generally larger than the size of the memory and the
// memory is mirrored throughout the region.
const (
	OriginARM7BootROM = uint32(0x00000000)
	SizeARM7BootROM   = 0x4000

	OriginARM9BootROM = uint32(0xffff0000)
	SizeARM9BootROM   = 0x1000

	OriginMainRAM = uint32(0x02000000)
	SizeMainRAM   = 0x400000
	MaskMainRAM   = uint32(SizeMainRAM - 1)

	OriginSharedWRAM = uint32(0x03000000)
	SizeSharedWRAM   = 0x8000

	OriginARM7WRAM = uint32(0x03800000)
	SizeARM7WRAM   = 0x10000
	MaskARM7WRAM   = uint32(SizeARM7WRAM - 1)

	OriginIO = uint32(0x04000000)

	OriginPalette = uint32(0x05000000)
	SizePalette   = 0x800
	MaskPalette   = uint32(SizePalette - 1)

	OriginVRAM = uint32(0x06000000)

	OriginOAM = uint32(0x07000000)
	SizeOAM   = 0x800
	MaskOAM   = uint32(SizeOAM - 1)

	OriginSlot2 = uint32(0x08000000)
	MemtopSlot2 = uint32(0x0affffff)
)

// The VRAM windows of the ARM9. The BG and OBJ windows are mirrored in the
// 2MB region given to them.
const (
	OriginBGA  = uint32(0x06000000)
	SizeBGA    = 0x80000
	OriginBGB  = uint32(0x06200000)
	SizeBGB    = 0x20000
	OriginOBJA = uint32(0x06400000)
	SizeOBJA   = 0x40000
	OriginOBJB = uint32(0x06600000)
	SizeOBJB   = 0x20000
	OriginLCDC = uint32(0x06800000)
	MemtopLCDC = uint32(0x068a3fff)
)

// The VRAM window of the ARM7. Banks C and D can be placed in this window.
const (
	OriginARM7VRAM = uint32(0x06000000)
	SizeARM7VRAM   = 0x40000
)

// Slot spaces for texture and extended palette memory. These are not visible
// to either processor and are addressed from zero.
const (
	SizeTextureImage   = 0x80000
	SizeTexturePalette = 0x18000
	SizeBGExtPalette   = 0x8000
	SizeOBJExtPalette  = 0x2000
)

// Purpose is the class of access made to VRAM. A bank only responds to an
// access if its master select value gives it the same purpose.
type Purpose int

// List of purposes.
const (
	LCDC Purpose = iota
	BGA
	OBJA
	BGB
	OBJB
	ARM7VRAM
	TextureImage
	TexturePalette
	BGAExtPalette
	OBJAExtPalette
	BGBExtPalette
	OBJBExtPalette
	NumPurposes
)

func (p Purpose) String() string {
	switch p {
	case LCDC:
		return "lcdc"
	case BGA:
		return "bg-a"
	case OBJA:
		return "obj-a"
	case BGB:
		return "bg-b"
	case OBJB:
		return "obj-b"
	case ARM7VRAM:
		return "arm7"
	case TextureImage:
		return "texture image"
	case TexturePalette:
		return "texture palette"
	case BGAExtPalette:
		return "bg-a ext palette"
	case OBJAExtPalette:
		return "obj-a ext palette"
	case BGBExtPalette:
		return "bg-b ext palette"
	case OBJBExtPalette:
		return "obj-b ext palette"
	}
	return "unknown purpose"
}

// MapAddress decides which area the address falls within for the processor.
// The returned address is normalised by removing mirrors where the mirroring
// does not depend on register state. Main RAM, palette, OAM and ARM7 WRAM
// addresses are returned as offsets into their memory. Shared WRAM and IO
// addresses are returned unchanged because their decoding depends on
// registers.
func MapAddress(proc cpu.ID, address uint32) (uint32, Area) {
	switch address >> 24 {
	case 0x00:
		if proc == cpu.ARM7 && address < SizeARM7BootROM {
			return address, BootROM
		}
	case 0x02:
		return address & MaskMainRAM, MainRAM
	case 0x03:
		if proc == cpu.ARM7 && address >= OriginARM7WRAM {
			return address & MaskARM7WRAM, ARM7WRAM
		}
		return address, SharedWRAM
	case 0x04:
		return address, IO
	case 0x05:
		if proc == cpu.ARM9 {
			return address & MaskPalette, Palette
		}
	case 0x06:
		return address, VRAM
	case 0x07:
		if proc == cpu.ARM9 {
			return address & MaskOAM, OAM
		}
	case 0x08, 0x09, 0x0a:
		return address, Slot2
	case 0xff:
		if proc == cpu.ARM9 && address >= OriginARM9BootROM && address-OriginARM9BootROM < SizeARM9BootROM {
			return address - OriginARM9BootROM, BootROM
		}
	}
	return address, Unmapped
}

// MapVRAM translates a processor's VRAM address into the purpose and the
// normalised address used to resolve the access. The ok value is false if
// the address is not in a VRAM window.
func MapVRAM(proc cpu.ID, address uint32) (uint32, Purpose, bool) {
	if address>>24 != 0x06 {
		return 0, LCDC, false
	}

	if proc == cpu.ARM7 {
		return OriginARM7VRAM + (address & (SizeARM7VRAM - 1)), ARM7VRAM, true
	}

	switch (address >> 21) & 0x07 {
	case 0:
		return OriginBGA + (address & (SizeBGA - 1)), BGA, true
	case 1:
		return OriginBGB + (address & (SizeBGB - 1)), BGB, true
	case 2:
		return OriginOBJA + (address & (SizeOBJA - 1)), OBJA, true
	case 3:
		return OriginOBJB + (address & (SizeOBJB - 1)), OBJB, true
	}

	if address >= OriginLCDC && address <= MemtopLCDC {
		return address, LCDC, true
	}

	return 0, LCDC, false
}
