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

// Package cpu defines the contract between the console and the two
// processors. Instruction decode and execution is not part of this module;
// the console only needs a processor to report its clock, its halt state and
// to execute instructions and interrupts when asked.
//
// The Idle type is a processor that executes no program. It is used when no
// interpreter is attached and by tests.
package cpu
