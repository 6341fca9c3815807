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

package performance

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/environment"
	"github.com/jetsetilly/gopherds/hardware"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/test"
)

func TestProfileString(t *testing.T) {
	p, err := ParseProfileString("cpu,trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileCPU|ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = ParseProfileString("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileNone)

	p, err = ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileAll)

	_, err = ParseProfileString("cpu,disk")
	test.ExpectSuccess(t, curated.IsAny(err))
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := CalcFPS(120, 2)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectSuccess(t, accuracy > 100 && accuracy < 101)

	fps, _ = CalcFPS(10, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestCheck(t *testing.T) {
	leadtime = 10 * time.Millisecond

	nds, err := hardware.NewNDS(environment.Label("performance"), nil, cpu.NewIdle(1, 0), cpu.NewIdle(1, 0), nil)
	test.DemandSuccess(t, err)

	var out bytes.Buffer
	err = Check(context.Background(), &out, nds, ProfileNone, 50*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "%\n"))
	test.ExpectSuccess(t, nds.Display.Frames > 0)

	err = Check(context.Background(), &out, nds, ProfileNone, 0)
	test.ExpectFailure(t, err)
}

func TestCheckCancelled(t *testing.T) {
	leadtime = time.Hour

	nds, err := hardware.NewNDS(environment.Label("performance"), nil, cpu.NewIdle(1, 0), cpu.NewIdle(1, 0), nil)
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err = Check(ctx, &out, nds, ProfileNone, time.Second)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, out.Len(), 0)
}
