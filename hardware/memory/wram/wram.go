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

package wram

import (
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/memory/memorymap"
)

// WRAM owns the shared and ARM7 work RAM.
type WRAM struct {
	Shared []byte
	ARM7   []byte

	control uint8
}

// NewWRAM is the preferred method of initialisation for the WRAM type.
func NewWRAM() *WRAM {
	return &WRAM{
		Shared: make([]byte, memorymap.SizeSharedWRAM),
		ARM7:   make([]byte, memorymap.SizeARM7WRAM),
	}
}

// Reset clears memory and returns the layout to zero.
func (w *WRAM) Reset() {
	clear(w.Shared)
	clear(w.ARM7)
	w.control = 0
}

// ReadControl returns the WRAMCNT register. The ARM7 sees the same value in
// the WRAMSTAT register.
func (w *WRAM) ReadControl() uint8 {
	return w.control
}

// WriteControl sets the WRAMCNT register. Only the lower two bits are
// defined.
func (w *WRAM) WriteControl(value uint8) {
	w.control = value & 0x03
}

// Resolve returns the memory and the offset into that memory for an access
// by the processor to an address in the 0x03000000 region. The ok value is
// false if nothing is mapped at the address.
func (w *WRAM) Resolve(proc cpu.ID, address uint32) ([]byte, uint32, bool) {
	if proc == cpu.ARM7 {
		if address >= memorymap.OriginARM7WRAM {
			return w.ARM7, address & memorymap.MaskARM7WRAM, true
		}
		switch w.control {
		case 0:
			return w.ARM7, address & memorymap.MaskARM7WRAM, true
		case 1:
			return w.Shared, address & 0x3fff, true
		case 2:
			return w.Shared, 0x4000 + address&0x3fff, true
		default:
			return w.Shared, address & 0x7fff, true
		}
	}

	switch w.control {
	case 0:
		return w.Shared, address & 0x7fff, true
	case 1:
		return w.Shared, 0x4000 + address&0x3fff, true
	case 2:
		return w.Shared, address & 0x3fff, true
	}
	return nil, 0, false
}
