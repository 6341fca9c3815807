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

package comparison_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherds/comparison"
	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/preferences"
	"github.com/jetsetilly/gopherds/script"
	"github.com/jetsetilly/gopherds/test"
)

func idle(id cpu.ID) cpu.Processor {
	return cpu.NewIdle(2, 0x02000000)
}

func TestTooFew(t *testing.T) {
	_, err := comparison.NewComparison(1, nil, idle)
	test.ExpectSuccess(t, curated.Is(err, comparison.TooFew))
}

func TestDeterministic(t *testing.T) {
	prefs := preferences.NewPreferences()
	test.DemandSuccess(t, prefs.RandomState.Set(true))

	cmp, err := comparison.NewComparison(3, prefs, idle)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cmp.Len(), 3)

	// random state is the same in every instance
	a := cmp.Console(0).Mem.Peek
	b := cmp.Console(2).Mem.Peek
	for addr := uint32(0x02000000); addr < 0x02000100; addr += 4 {
		va, _ := a(cpu.ARM9, addr)
		vb, _ := b(cpu.ARM9, addr)
		test.ExpectEquality(t, va, vb)
	}

	scr, err := script.Read(strings.NewReader(`
		write32 arm9 0x02000000 0x12345678
		write32 arm9 0x040000b0 0x02000000
		write32 arm9 0x040000b4 0x02001000
		write16 arm9 0x040000b8 0x0004
		write16 arm9 0x040000ba 0x8000
		steps 10
	`))
	test.DemandSuccess(t, err)

	err = cmp.Run(context.Background(), 2, scr)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, cmp.Hash(), "")
}

func TestPreferencesKept(t *testing.T) {
	prefs := preferences.NewPreferences()
	unused, err := prefs.Apply("timeline.slice::8; dma.unitcycles::3")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, unused, "")

	cmp, err := comparison.NewComparison(2, prefs, idle)
	test.DemandSuccess(t, err)

	for i, n := 0, cmp.Len(); i < n; i++ {
		p := cmp.Console(i).Env.Prefs
		test.ExpectEquality(t, p.TimelineSlice.Get().(int), 8, i)
		test.ExpectEquality(t, p.DMAUnitCycles.Get().(int), 3, i)
		test.ExpectSuccess(t, cmp.Console(i).Env.Random.ZeroSeed, i)
	}
}

func TestDivergence(t *testing.T) {
	cmp, err := comparison.NewComparison(2, nil, idle)
	test.DemandSuccess(t, err)

	// a difference in one instance only
	test.DemandSuccess(t, cmp.Console(1).Mem.Poke(cpu.ARM9, 0x02000000, 0xff))

	err = cmp.Run(context.Background(), 1, nil)
	test.ExpectSuccess(t, curated.Is(err, comparison.Divergence))
}

func TestCancelled(t *testing.T) {
	cmp, err := comparison.NewComparison(2, nil, idle)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = cmp.Run(ctx, 5, nil)
	test.ExpectSuccess(t, curated.Is(err, comparison.Instance))
}

func TestBootROM(t *testing.T) {
	cmp, err := comparison.NewComparison(2, nil, idle)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, cmp.LoadBootROM(cpu.ARM7, []byte{1, 2, 3, 4}))
	test.ExpectFailure(t, cmp.LoadBootROM(cpu.ARM7, make([]byte, 0x10000)))
	test.ExpectSuccess(t, cmp.Console(2) == nil)
}
