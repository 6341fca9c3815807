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

// Package mathunit implements the division and square root registers of the
// ARM9. Results are available as soon as the operands are written and the
// busy bits always read as zero.
package mathunit

import (
	"math/bits"
)

// Register addresses.
const (
	DivControl    = uint32(0x04000280)
	DivNumerator  = uint32(0x04000290)
	DivDenom      = uint32(0x04000298)
	DivResult     = uint32(0x040002a0)
	DivRemainder  = uint32(0x040002a8)
	SqrtControl   = uint32(0x040002b0)
	SqrtResult    = uint32(0x040002b4)
	SqrtParameter = uint32(0x040002b8)
)

// Bits in the control registers.
const (
	DivMode        = 0x0003
	DivByZero      = 0x4000
	SqrtMode64     = 0x0001
	divControlMask = 0x0003
)

// Division modes.
const (
	Div32   = 0
	Div6432 = 1
	Div64   = 2
)

// Unit is the state of the division and square root registers.
type Unit struct {
	divControl uint16
	numerator  uint64
	denom      uint64
	result     uint64
	remainder  uint64

	sqrtControl uint16
	sqrtParam   uint64
	sqrtResult  uint32
}

// NewUnit is the preferred method of initialisation for the Unit type.
func NewUnit() *Unit {
	u := &Unit{}
	u.Reset()
	return u
}

// Reset all registers to zero.
func (u *Unit) Reset() {
	*u = Unit{}
	u.divide()
	u.squareRoot()
}

// Contains returns true if the address is one of the unit's registers.
func Contains(address uint32) bool {
	return address >= DivControl && address < SqrtParameter+8
}

func half(v uint64, address uint32) uint32 {
	if address&0x04 == 0x04 {
		return uint32(v >> 32)
	}
	return uint32(v)
}

func setHalf(v *uint64, address uint32, value uint32, mask uint32) {
	shift := 0
	if address&0x04 == 0x04 {
		shift = 32
	}
	m := uint64(mask) << shift
	*v = (*v &^ m) | (uint64(value) << shift & m)
}

// Read returns the aligned word at the address. The ok value is false if the
// address is not a register.
func (u *Unit) Read(address uint32) (uint32, bool) {
	address &^= 0x03
	switch address &^ 0x04 {
	case DivControl:
		if address == DivControl {
			return uint32(u.divControl), true
		}
	case DivNumerator:
		return half(u.numerator, address), true
	case DivDenom:
		return half(u.denom, address), true
	case DivResult:
		return half(u.result, address), true
	case DivRemainder:
		return half(u.remainder, address), true
	case SqrtControl:
		if address == SqrtControl {
			return uint32(u.sqrtControl), true
		}
		return u.sqrtResult, true
	case SqrtParameter:
		return half(u.sqrtParam, address), true
	}
	return 0, false
}

// Write the bits selected by mask of the aligned word at the address. The
// result registers are read only. Returns false if the address is not a
// register.
func (u *Unit) Write(address uint32, value uint32, mask uint32) bool {
	address &^= 0x03
	switch address &^ 0x04 {
	case DivControl:
		if address != DivControl {
			return false
		}
		m := uint16(mask) & divControlMask
		u.divControl = (u.divControl &^ m) | (uint16(value) & m)
		u.divide()
	case DivNumerator:
		setHalf(&u.numerator, address, value, mask)
		u.divide()
	case DivDenom:
		setHalf(&u.denom, address, value, mask)
		u.divide()
	case DivResult, DivRemainder:
	case SqrtControl:
		if address == SqrtControl {
			m := uint16(mask) & SqrtMode64
			u.sqrtControl = (u.sqrtControl &^ m) | (uint16(value) & m)
			u.squareRoot()
		}
	case SqrtParameter:
		setHalf(&u.sqrtParam, address, value, mask)
		u.squareRoot()
	default:
		return false
	}
	return true
}

func (u *Unit) divide() {
	if u.denom == 0 {
		u.divControl |= DivByZero
	} else {
		u.divControl &^= DivByZero
	}

	var num, den int64
	switch u.divControl & DivMode {
	case Div32:
		num = int64(int32(u.numerator))
		den = int64(int32(u.denom))
	case Div6432:
		num = int64(u.numerator)
		den = int64(int32(u.denom))
	default:
		num = int64(u.numerator)
		den = int64(u.denom)
	}

	if den == 0 {
		u.remainder = uint64(num)
		if num < 0 {
			u.result = 1
		} else {
			u.result = ^uint64(0)
		}
		return
	}

	// division of the most negative value by -1 results in the numerator
	// and does not trap
	u.result = uint64(num / den)
	u.remainder = uint64(num % den)
}

func (u *Unit) squareRoot() {
	v := u.sqrtParam
	if u.sqrtControl&SqrtMode64 == 0 {
		v = uint64(uint32(v))
	}
	u.sqrtResult = isqrt(v)
}

// integer square root rounded down
func isqrt(v uint64) uint32 {
	if v == 0 {
		return 0
	}

	// start from a power of two at least as large as the root
	r := uint64(1) << ((bits.Len64(v) + 1) / 2)
	for {
		n := (r + v/r) / 2
		if n >= r {
			break
		}
		r = n
	}
	return uint32(r)
}

// Division returns the current numerator, denominator, result and remainder.
func (u *Unit) Division() (uint64, uint64, uint64, uint64) {
	return u.numerator, u.denom, u.result, u.remainder
}
