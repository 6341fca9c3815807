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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately.
//
// ExpectSuccess and ExpectFailure test for failure and success under generic
// conditions. A bool is a success if it is true. An error is a success if it
// is nil. It is worth noting that the untyped nil is considered a success, as
// it is how a nil error arrives at the function.
//
// The CompareWriter type implements the io.Writer interface and can be used to
// capture output. The Compare() function tests for equality with a string.
package test
