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

// Package script runs a text file of commands against the console. Scripts
// are used by the command line tool to set up registers and memory before a
// run and to check the result of a run.
//
// Each line contains one command. Commands can also be separated by
// semi-colons. Comment lines begin with the # symbol.
//
//	write8|write16|write32 a|b <address> <value>
//	read8|read16|read32 a|b <address> [expected value]
//	frames <n>
//	steps <n>
//	cartridge
//	geometry
//	digest
//
// The processor argument is "a" for the ARM9 and "b" for the ARM7. Numbers
// can be in any base understood by strconv.ParseUint() with a zero base, so
// hexadecimal values are written with a 0x prefix.
//
// A read command without an expected value prints the value read. A read with
// an expected value fails if the value read is different.
//
// Scripts can also be written in Lua. The Lua type provides the same
// commands as global functions, which is useful when a script needs loops or
// conditions. The Open() function chooses the kind of script by the file
// extension.
package script
