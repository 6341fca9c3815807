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

// Package vram implements the nine banks of video memory and the rules that
// place them in the address space.
//
// Each bank has a VRAMCNT register that selects its purpose (the master
// select value), its placement within the window for that purpose (the
// offset value) and whether it is enabled. A disabled bank does not respond
// to any access.
//
// More than one bank can be placed at the same address for the same purpose.
// The hardware does not prevent this and a read returns the OR of every
// bank's byte at that address. A write goes to every bank.
//
// Addresses for the texture and extended palette purposes are offsets into a
// slot space that starts at zero. Addresses for the other purposes are
// normalised processor addresses, see memorymap.MapVRAM().
package vram
