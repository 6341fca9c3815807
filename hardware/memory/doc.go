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

// Package memory is the memory bus of the console. Each processor has its
// own view of the address space and the bus routes every access to main RAM,
// work RAM, VRAM, the boot ROMs or to one of the peripheral registers.
//
// I/O registers are decoded as aligned 32-bit words. A narrower access is
// converted into a word access with a mask selecting the bytes that are read
// or written. This means that an 8, 16 or 32-bit access to a register is
// handled by the same code and that write-1-to-clear registers only clear the
// bytes that were written.
//
// Accesses to addresses that have no memory return all bits set and writes
// to those addresses are ignored. The Peek() and Poke() functions are for
// debugging and return an error in those cases instead. They do not trigger
// any side effects.
//
// The View type is an adaptor that presents the bus from the point of view
// of one processor.
package memory
