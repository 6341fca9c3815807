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
)

// View is the memory bus as seen by one processor. It is the interface that
// an instruction interpreter uses.
type View struct {
	mem  *Memory
	proc cpu.ID
}

// View returns the bus as seen by the processor.
func (mem *Memory) View(proc cpu.ID) View {
	return View{mem: mem, proc: proc}
}

// Processor returns the processor the view belongs to.
func (v View) Processor() cpu.ID {
	return v.proc
}

func (v View) Read8(address uint32) uint8 {
	return v.mem.Read8(v.proc, address)
}

func (v View) Read16(address uint32) uint16 {
	return v.mem.Read16(v.proc, address)
}

func (v View) Read32(address uint32) uint32 {
	return v.mem.Read32(v.proc, address)
}

func (v View) Write8(address uint32, data uint8) {
	v.mem.Write8(v.proc, address, data)
}

func (v View) Write16(address uint32, data uint16) {
	v.mem.Write16(v.proc, address, data)
}

func (v View) Write32(address uint32, data uint32) {
	v.mem.Write32(v.proc, address, data)
}
