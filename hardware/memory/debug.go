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
	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/faults"
	"github.com/jetsetilly/gopherds/hardware/memory/memorymap"
)

// Peek returns the byte at the address as seen by the processor without any
// side effects. The boot ROM is readable regardless of the program counter.
// I/O registers cannot be peeked.
func (mem *Memory) Peek(proc cpu.ID, address uint32) (uint8, error) {
	if !proc.Valid() {
		return 0, curated.Errorf(faults.InvalidIndex, "memory", int(proc))
	}

	if address>>24 == 0x06 {
		va, purpose, ok := memorymap.MapVRAM(proc, address)
		if !ok {
			return 0, curated.Errorf(faults.OutOfRangeAddress, proc, address)
		}
		return mem.VRAM.Read8(va, purpose), nil
	}

	data, offset, _, ok := mem.backing(proc, address)
	if !ok {
		return 0, curated.Errorf(faults.OutOfRangeAddress, proc, address)
	}
	return data[offset], nil
}

// Poke writes the byte at the address as seen by the processor. Unlike
// Write8() the boot ROM can be written.
func (mem *Memory) Poke(proc cpu.ID, address uint32, data uint8) error {
	if !proc.Valid() {
		return curated.Errorf(faults.InvalidIndex, "memory", int(proc))
	}

	if address>>24 == 0x06 {
		va, purpose, ok := memorymap.MapVRAM(proc, address)
		if !ok || !mem.VRAM.Write8(va, purpose, data) {
			return curated.Errorf(faults.OutOfRangeAddress, proc, address)
		}
		return nil
	}

	if !mem.store(proc, address, 1, uint32(data), true) {
		return curated.Errorf(faults.OutOfRangeAddress, proc, address)
	}
	return nil
}
