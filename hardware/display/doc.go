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

// Package display is the line timing of the two screens. It is the source of
// the vertical and horizontal blank signals that start DMA transfers and
// raise interrupts. No pixels are produced.
//
// Each line is split into two events on the timeline: the start of the line
// and the start of horizontal blank. The DisplayLine event carries the
// phase in its parameter.
package display
