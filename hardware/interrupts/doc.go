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

// Package interrupts implements the interrupt controller of each processor:
// the IE, IF and IME registers.
//
// The controller is pure flag algebra. A request sets a bit in IF and the bit
// stays set until the owning processor acknowledges it by writing a one to the
// bit. Whether the processor takes the interrupt is decided by the console
// between instructions; the controller never calls into a processor.
package interrupts
