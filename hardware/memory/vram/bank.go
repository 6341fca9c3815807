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

package vram

import (
	"github.com/jetsetilly/gopherds/hardware/memory/memorymap"
)

// Bank identifies one of the nine VRAM banks.
type Bank int

// List of banks.
const (
	A Bank = iota
	B
	C
	D
	E
	F
	G
	H
	I
	NumBanks
)

func (b Bank) String() string {
	if b < A || b >= NumBanks {
		return "?"
	}
	return string(rune('A' + int(b)))
}

// Size returns the number of bytes in the bank. Returns zero for an invalid
// bank.
func (b Bank) Size() int {
	switch b {
	case A, B, C, D:
		return 0x20000
	case E:
		return 0x10000
	case F, G:
		return 0x4000
	case H:
		return 0x8000
	case I:
		return 0x4000
	}
	return 0
}

// the bits of the VRAMCNT register that are defined for the bank
func (b Bank) controlMask() uint8 {
	switch b {
	case A, B:
		return 0x9b
	case C, D, F, G:
		return 0x9f
	case E:
		return 0x87
	case H, I:
		return 0x83
	}
	return 0x00
}

// the base address of the bank in the LCDC window
func (b Bank) lcdc() uint32 {
	switch b {
	case A:
		return 0x06800000
	case B:
		return 0x06820000
	case C:
		return 0x06840000
	case D:
		return 0x06860000
	case E:
		return 0x06880000
	case F:
		return 0x06890000
	case G:
		return 0x06894000
	case H:
		return 0x06898000
	case I:
		return 0x068a0000
	}
	return 0
}

// window returns the purpose and base address for the bank with the given
// master select and offset values. The ok value is false if the combination
// is not defined for the bank.
func (b Bank) window(mst uint8, ofs uint32) (memorymap.Purpose, uint32, bool) {
	if mst == 0 {
		return memorymap.LCDC, b.lcdc(), true
	}

	switch b {
	case A, B:
		switch mst & 0x03 {
		case 1:
			return memorymap.BGA, memorymap.OriginBGA + ofs*0x20000, true
		case 2:
			return memorymap.OBJA, memorymap.OriginOBJA + (ofs&1)*0x20000, true
		case 3:
			return memorymap.TextureImage, ofs * 0x20000, true
		}
		return memorymap.LCDC, b.lcdc(), true

	case C, D:
		switch mst {
		case 1:
			return memorymap.BGA, memorymap.OriginBGA + ofs*0x20000, true
		case 2:
			return memorymap.ARM7VRAM, memorymap.OriginARM7VRAM + (ofs&1)*0x20000, true
		case 3:
			return memorymap.TextureImage, ofs * 0x20000, true
		case 4:
			if b == C {
				return memorymap.BGB, memorymap.OriginBGB, true
			}
			return memorymap.OBJB, memorymap.OriginOBJB, true
		}

	case E:
		switch mst {
		case 1:
			return memorymap.BGA, memorymap.OriginBGA, true
		case 2:
			return memorymap.OBJA, memorymap.OriginOBJA, true
		case 3:
			return memorymap.TexturePalette, 0, true
		case 4:
			return memorymap.BGAExtPalette, 0, true
		}

	case F, G:
		place := (ofs&1)*0x4000 + (ofs>>1)*0x10000
		switch mst {
		case 1:
			return memorymap.BGA, memorymap.OriginBGA + place, true
		case 2:
			return memorymap.OBJA, memorymap.OriginOBJA + place, true
		case 3:
			return memorymap.TexturePalette, ((ofs & 1) + (ofs>>1)*4) * 0x4000, true
		case 4:
			return memorymap.BGAExtPalette, (ofs & 1) * 0x4000, true
		case 5:
			return memorymap.OBJAExtPalette, 0, true
		}

	case H:
		switch mst & 0x03 {
		case 1:
			return memorymap.BGB, memorymap.OriginBGB, true
		case 2:
			return memorymap.BGBExtPalette, 0, true
		}

	case I:
		switch mst & 0x03 {
		case 1:
			return memorymap.BGB, memorymap.OriginBGB + 0x8000, true
		case 2:
			return memorymap.OBJB, memorymap.OriginOBJB, true
		case 3:
			return memorymap.OBJBExtPalette, 0, true
		}
	}

	return memorymap.LCDC, 0, false
}
