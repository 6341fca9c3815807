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

package test

import "strings"

// CompareWriter is an implementation of the io.Writer interface. It captures
// output so that it can be compared with an expected string.
type CompareWriter struct {
	b strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.b.Write(p)
}

// Clear empties the capture buffer.
func (tw *CompareWriter) Clear() {
	tw.b.Reset()
}

// Compare the captured output with the expected string.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.b.String() == s
}

// Lines returns the captured output split into lines. A final newline does
// not produce an empty line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.b.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// String implements the fmt.Stringer interface.
func (tw *CompareWriter) String() string {
	return tw.b.String()
}
