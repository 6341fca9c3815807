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

// Package faults lists the error patterns raised by the hardware packages.
// Errors are created with curated.Errorf() and can be identified with
// curated.Is() using these patterns.
//
// None of these faults stop the emulation. The component that raises a fault
// logs it and carries on in the same way the real hardware would.
package faults

// Error patterns.
const (
	// a DMA channel or timer index outside of 0 to 7. values are the
	// component name and the index
	InvalidIndex = "%s: invalid index (%d)"

	// a VRAM bank outside of A to I
	InvalidBank = "vram: invalid bank (%d)"

	// an access to an address that is not mapped to memory or a register.
	// values are the processor and the address
	OutOfRangeAddress = "memory: %v: out of range address (%#08x)"

	// boot ROM data is larger than the boot ROM. values are the processor and
	// the size of the data
	BootROMSize = "memory: %v: boot rom too large (%d bytes)"

	// a word written to a full IPC FIFO. value is the processor that wrote
	// the word
	QueueOverflow = "ipc: %v: fifo overflow"

	// a word read from an empty IPC FIFO. value is the processor that read
	// the word
	QueueUnderflow = "ipc: %v: fifo underflow"

	// the scheduler has no handler for the event. value is the event
	UnknownEvent = "scheduler: unknown event (%v)"
)
