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

// Package memorymap describes the address space of the two processors. It
// defines the origin and size of every area of memory and the MapAddress()
// function, which decides which area an address falls within.
//
// The two processors see different address spaces. The ARM9 has a boot ROM
// at the top of the address space, palette memory, OAM and the display
// windows of VRAM. The ARM7 has its boot ROM at address zero, a private
// WRAM and a VRAM window for banks C and D.
//
// Addresses in the VRAM windows are normalised by MapAddress() so that
// mirrors resolve to the primary address.
package memorymap
