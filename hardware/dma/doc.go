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

// Package dma implements the eight DMA channels of the console. Channels 0 to
// 3 belong to the ARM9 and channels 4 to 7 to the ARM7. Within each group the
// channel with the lowest index has the highest priority.
//
// A channel is started by setting the enable bit of its control register.
// With immediate timing the transfer starts straight away. With any other
// timing the channel waits for the matching trigger: one of RequestVBlank(),
// RequestHBlank(), RequestCartridge() or RequestGeometryFIFO().
//
// A running transfer moves one unit, a halfword or a word, each time the
// DMAContinue event is dispatched by the console. The console calls
// ContinueTransfer() with the memory bus and the interrupt controller; the
// engine holds no reference to either. While any channel is active the
// processors are stalled.
package dma
