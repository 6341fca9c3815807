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

// Package wram implements the shared work RAM and the ARM7's private work
// RAM. The 32KB of shared WRAM is divided between the processors by the
// WRAMCNT register, which selects one of four fixed layouts:
//
//	WRAMCNT   ARM9          ARM7
//	   0      all 32KB      ARM7 WRAM (mirror)
//	   1      second 16KB   first 16KB
//	   2      first 16KB    second 16KB
//	   3      nothing       all 32KB
//
// An ARM9 access to shared WRAM when it has nothing mapped reads zero and
// writes are ignored.
package wram
