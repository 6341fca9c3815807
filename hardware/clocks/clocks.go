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

// Package clocks defines the constant values that define the speed of the
// clocks in the console and the timing of the display.
//
// The system timestamp runs at the rate of the ARM7. The ARM9 runs at twice
// that rate and its local clock is compared against the system timestamp
// shifted left by one.
package clocks

// Clock rates in MHz.
const (
	ARM7 = 33.513982
	ARM9 = ARM7 * 2
)

// ARM9Shift is the shift applied to the system timestamp to give the ARM9
// equivalent.
const ARM9Shift = 1

// Display timing in system cycles.
const (
	// cycles from the start of a line to the start of horizontal blank
	HDraw = 1606

	// cycles of horizontal blank
	HBlank = 524

	// total cycles per line
	Line = HDraw + HBlank
)

// Display timing in lines.
const (
	VisibleLines = 192
	TotalLines   = 263

	// vertical blank flag is cleared one line before the end of the frame
	VBlankEnd = 262
)

// Frame is the number of system cycles in one frame.
const Frame = Line * TotalLines

// Prescaler returns the timer divisor, in system cycles, for the prescaler
// field of the timer control register. Only the lower two bits of sel are
// used.
func Prescaler(sel int) int {
	switch sel & 0x03 {
	case 1:
		return 64
	case 2:
		return 256
	case 3:
		return 1024
	}
	return 1
}
