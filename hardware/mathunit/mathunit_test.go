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

package mathunit_test

import (
	"testing"

	"github.com/jetsetilly/gopherds/hardware/mathunit"
	"github.com/jetsetilly/gopherds/test"
)

func read64(u *mathunit.Unit, address uint32) uint64 {
	lo, _ := u.Read(address)
	hi, _ := u.Read(address + 4)
	return uint64(hi)<<32 | uint64(lo)
}

func write64(u *mathunit.Unit, address uint32, v uint64) {
	u.Write(address, uint32(v), 0xffffffff)
	u.Write(address+4, uint32(v>>32), 0xffffffff)
}

func TestDivide32(t *testing.T) {
	u := mathunit.NewUnit()

	// -7 in the lower half
	u.Write(mathunit.DivNumerator, uint32(0xfffffff9), 0xffffffff)
	write64(u, mathunit.DivDenom, 2)

	test.ExpectEquality(t, int64(read64(u, mathunit.DivResult)), int64(-3))
	test.ExpectEquality(t, int64(read64(u, mathunit.DivRemainder)), int64(-1))

	ctrl, ok := u.Read(mathunit.DivControl)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ctrl&mathunit.DivByZero, uint32(0))

	// result registers are read only
	test.ExpectSuccess(t, u.Write(mathunit.DivResult, 0, 0xffffffff))
	test.ExpectEquality(t, int64(read64(u, mathunit.DivResult)), int64(-3))
}

func TestDivide64(t *testing.T) {
	u := mathunit.NewUnit()
	u.Write(mathunit.DivControl, mathunit.Div64, 0xffff)

	write64(u, mathunit.DivNumerator, 1<<40)
	write64(u, mathunit.DivDenom, 1<<33)
	test.ExpectEquality(t, read64(u, mathunit.DivResult), uint64(128))
	test.ExpectEquality(t, read64(u, mathunit.DivRemainder), uint64(0))

	// the 64/32 mode only uses the lower half of the denominator. the
	// denominator is not zero so the flag is clear
	u.Write(mathunit.DivControl, mathunit.Div6432, 0xffff)
	ctrl, _ := u.Read(mathunit.DivControl)
	test.ExpectEquality(t, ctrl, uint32(mathunit.Div6432))
	test.ExpectEquality(t, read64(u, mathunit.DivRemainder), uint64(1<<40))
	test.ExpectEquality(t, read64(u, mathunit.DivResult), ^uint64(0))
}

func TestDivideByZero(t *testing.T) {
	u := mathunit.NewUnit()

	u.Write(mathunit.DivNumerator, 0xfffffff0, 0xffffffff)
	ctrl, _ := u.Read(mathunit.DivControl)
	test.ExpectEquality(t, ctrl&mathunit.DivByZero, uint32(mathunit.DivByZero))
	test.ExpectEquality(t, read64(u, mathunit.DivResult), uint64(1))
	test.ExpectEquality(t, int64(read64(u, mathunit.DivRemainder)), int64(-16))

	u.Write(mathunit.DivNumerator, 5, 0xffffffff)
	test.ExpectEquality(t, read64(u, mathunit.DivResult), ^uint64(0))
	test.ExpectEquality(t, read64(u, mathunit.DivRemainder), uint64(5))
}

func TestSquareRoot(t *testing.T) {
	u := mathunit.NewUnit()

	for param, root := range map[uint64]uint32{
		0:          0,
		1:          1,
		15:         3,
		16:         4,
		0xffffffff: 0xffff,
	} {
		write64(u, mathunit.SqrtParameter, param)
		r, ok := u.Read(mathunit.SqrtResult)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, r, root, param)
	}

	// only the lower half is used in 32 bit mode
	write64(u, mathunit.SqrtParameter, ^uint64(0))
	r, _ := u.Read(mathunit.SqrtResult)
	test.ExpectEquality(t, r, uint32(0xffff))

	u.Write(mathunit.SqrtControl, mathunit.SqrtMode64, 0xffff)
	r, _ = u.Read(mathunit.SqrtResult)
	test.ExpectEquality(t, r, uint32(0xffffffff))
}

func TestContains(t *testing.T) {
	test.ExpectSuccess(t, mathunit.Contains(0x04000280))
	test.ExpectSuccess(t, mathunit.Contains(0x040002bc))
	test.ExpectFailure(t, mathunit.Contains(0x040002c0))

	u := mathunit.NewUnit()
	_, ok := u.Read(0x04000284)
	test.ExpectFailure(t, ok)
}
