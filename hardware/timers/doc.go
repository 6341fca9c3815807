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

// Package timers implements the eight 16-bit timers of the console. Timers 0
// to 3 belong to the ARM9 and timers 4 to 7 to the ARM7.
//
// A timer counts at the rate of its prescaler or, if count-up timing is
// selected, whenever the timer below it in the same group overflows. The
// first timer of a group has no timer below it and always uses its
// prescaler.
//
// Timers are advanced in system cycles. The console converts ARM9 cycles
// before calling Advance().
package timers
