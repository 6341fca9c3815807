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

package wram_test

import (
	"testing"

	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/memory/wram"
	"github.com/jetsetilly/gopherds/test"
)

type resolution struct {
	shared bool
	offset uint32
	ok     bool
}

func resolve(w *wram.WRAM, proc cpu.ID, address uint32) resolution {
	mem, offset, ok := w.Resolve(proc, address)
	return resolution{
		shared: ok && &mem[0] == &w.Shared[0],
		offset: offset,
		ok:     ok,
	}
}

func TestLayouts(t *testing.T) {
	w := wram.NewWRAM()

	type layout struct {
		arm9 resolution
		arm7 resolution
	}

	// each layout is tested with an access to 0x03004010
	expected := []layout{
		{arm9: resolution{true, 0x4010, true}, arm7: resolution{false, 0x4010, true}},
		{arm9: resolution{true, 0x4010, true}, arm7: resolution{true, 0x0010, true}},
		{arm9: resolution{true, 0x0010, true}, arm7: resolution{true, 0x4010, true}},
		{arm9: resolution{false, 0, false}, arm7: resolution{true, 0x4010, true}},
	}

	for i, e := range expected {
		w.WriteControl(uint8(i))
		test.ExpectEquality(t, resolve(w, cpu.ARM9, 0x03004010), e.arm9, i)
		test.ExpectEquality(t, resolve(w, cpu.ARM7, 0x03004010), e.arm7, i)
	}
}

func TestMirrors(t *testing.T) {
	w := wram.NewWRAM()

	// shared wram is mirrored throughout the region
	w.WriteControl(0)
	test.ExpectEquality(t, resolve(w, cpu.ARM9, 0x037f8000), resolution{true, 0x0000, true})

	// arm7 wram is always at 0x03800000
	w.WriteControl(3)
	test.ExpectEquality(t, resolve(w, cpu.ARM7, 0x03810004), resolution{false, 0x0004, true})
}

func TestControl(t *testing.T) {
	w := wram.NewWRAM()
	w.WriteControl(0xff)
	test.ExpectEquality(t, w.ReadControl(), uint8(0x03))
	w.WriteControl(w.ReadControl())
	test.ExpectEquality(t, w.ReadControl(), uint8(0x03))
}
