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

// Package prefs holds the typed preference values used to configure the
// emulation. Values are safe to read from one goroutine while being set from
// another.
//
// Preferences can be given on the command line as a single string of
// key/value pairs:
//
//	dma.unitcycles::2; bus.logunmapped::true
//
// A Dictionary maps keys to values and applies such a string with the Apply()
// function.
package prefs
