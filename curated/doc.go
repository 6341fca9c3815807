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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values, like the function of the same name in the fmt
// package, but the pattern is kept with the error so that it can be used to
// identify the error later:
//
//	e := curated.Errorf("dma: invalid channel (%d)", 9)
//
//	if curated.Is(e, "dma: invalid channel (%d)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is made by passing a curated error as one of the
// values to Errorf().
//
//	f := curated.Errorf("script: line %d: %v", 10, e)
//
//	curated.Has(f, "dma: invalid channel (%d)") // true
//	curated.Is(f, "dma: invalid channel (%d)")  // false
//
// The Error() function removes duplicate adjacent parts from the message, so
// that the message of a chain does not contain repeated prefixes:
//
//	curated.Errorf("memory: %v", curated.Errorf("memory: unmapped")).Error()
//
// returns "memory: unmapped" and not "memory: memory: unmapped".
//
// Curated errors also implement Unwrap() so that the errors package in the
// standard library can see through them to any non-curated error in the
// value list.
package curated
