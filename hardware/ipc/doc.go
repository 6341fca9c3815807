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

// Package ipc implements the inter-processor communication registers: the
// IPCSYNC handshake register of each processor and the pair of 16 word FIFOs
// used to pass messages between the processors.
//
// The send FIFO of one processor is the receive FIFO of the other, so there
// are two queues in total. A word written by the ARM9 is read by the ARM7 and
// vice versa.
package ipc
