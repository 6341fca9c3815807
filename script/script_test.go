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

package script_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/environment"
	"github.com/jetsetilly/gopherds/hardware"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/script"
	"github.com/jetsetilly/gopherds/test"
)

func newNDS(t *testing.T) *hardware.NDS {
	t.Helper()
	nds, err := hardware.NewNDS(environment.MainEmulation, nil, cpu.NewIdle(1, 0), cpu.NewIdle(1, 0), nil)
	test.DemandSuccess(t, err)
	return nds
}

const dmaScript = `
# copy four halfwords with ARM9 DMA channel 0
write32 a 0x02000000 0x11223344
write32 a 0x02000004 0x55667788
write32 a 0x040000b0 0x02000000; write32 a 0x040000b4 0x02001000
write16 a 0x040000b8 4
write16 a 0x040000ba 0x8000
steps 10
read32 b 0x02001004 0x55667788
read16 a 0x040000ba 0
read8 a 0x02001000
`

func TestRun(t *testing.T) {
	scr, err := script.Read(strings.NewReader(dmaScript))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, scr.Len(), 10)

	nds := newNDS(t)
	w := &test.CompareWriter{}
	test.ExpectSuccess(t, scr.Run(nds, nil, w))
	test.ExpectEquality(t, w.String(), "arm9 0x2001000: 0x44\n")
}

func TestMismatch(t *testing.T) {
	scr, err := script.Read(strings.NewReader("write8 b 0x03800000 1\n\nread8 b 0x03800000 2\n"))
	test.DemandSuccess(t, err)

	err = scr.Run(newNDS(t), nil, nil)
	test.ExpectSuccess(t, curated.Is(err, script.LineError))
	test.ExpectSuccess(t, curated.Has(err, script.Mismatch))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "line 3"))
}

func TestErrors(t *testing.T) {
	for src, pattern := range map[string]string{
		"jump a 0":          script.UnknownCommand,
		"write8 a 0":        script.WrongArguments,
		"write8 c 0 0":      script.BadProcessor,
		"read32 a 0xzz":     script.BadNumber,
		"frames":            script.WrongArguments,
		"steps many":        script.BadNumber,
		"read16 a 0 0 0 0":  script.WrongArguments,
		"WRITE8 a 0 0x1ff;": "",
	} {
		scr, err := script.Read(strings.NewReader(src))
		test.DemandSuccess(t, err)

		err = scr.Run(newNDS(t), nil, nil)
		if pattern == "" {
			test.ExpectSuccess(t, err, src)
			continue
		}
		test.ExpectSuccess(t, curated.Has(err, pattern), src)
	}
}

func TestDigest(t *testing.T) {
	scr, err := script.Read(strings.NewReader("frames 1; digest"))
	test.DemandSuccess(t, err)

	a := &test.CompareWriter{}
	b := &test.CompareWriter{}
	test.ExpectSuccess(t, scr.Run(newNDS(t), nil, a))
	test.ExpectSuccess(t, scr.Run(newNDS(t), nil, b))
	test.ExpectEquality(t, a.String(), b.String())
	test.ExpectEquality(t, len(strings.TrimSpace(a.String())), 40)
}
