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

package logger

import (
	"io"
	"strings"
)

// ANSI sequences used by the Colorizer.
const (
	normalPen = "\033[0m"
	tagPen    = "\033[2;36m"
	faultPen  = "\033[2;31m"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// an entry is dimmed and entries with a tag ending in "error" are coloured
// red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := strings.TrimRight(string(p), "\n")
	if len(s) == 0 {
		return 0, nil
	}

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	b := strings.Builder{}
	b.WriteString(tagPen)
	b.WriteString(tag)
	b.WriteString(normalPen)
	b.WriteString(": ")
	if strings.HasSuffix(tag, "error") {
		b.WriteString(faultPen)
		b.WriteString(detail)
		b.WriteString(normalPen)
	} else {
		b.WriteString(detail)
	}
	b.WriteString("\n")

	_, err = c.out.Write([]byte(b.String()))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
