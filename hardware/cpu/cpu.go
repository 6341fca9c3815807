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

package cpu

// ID identifies one of the two processors.
type ID int

// List of valid processor IDs. ARM9 is processor A, running at twice the rate
// of the system timestamp. ARM7 is processor B, running at the rate of the
// system timestamp.
const (
	ARM9 ID = iota
	ARM7
)

// NumProcessors is the number of processors in the console.
const NumProcessors = 2

func (id ID) String() string {
	switch id {
	case ARM9:
		return "arm9"
	case ARM7:
		return "arm7"
	}
	return "unknown processor"
}

// Peer returns the ID of the other processor.
func (id ID) Peer() ID {
	if id == ARM9 {
		return ARM7
	}
	return ARM9
}

// Valid returns false if the ID is not one of the listed IDs.
func (id ID) Valid() bool {
	return id == ARM9 || id == ARM7
}

// Processor is the interface to an instruction-set interpreter.
type Processor interface {
	// the local clock of the processor
	Clock() uint64

	// SetClock is used by the console to bring a stalled processor up to date
	SetClock(clock uint64)

	// halt state. a halted processor does not execute instructions until an
	// interrupt is requested for it. Wake() takes the processor out of the
	// halted state
	Halted() bool
	Wake()

	// whether the processor is suppressing interrupts. for an ARM processor
	// this is the I flag of the CPSR
	InterruptsDisabled() bool

	// HandleInterrupt causes the processor to take the IRQ exception
	HandleInterrupt()

	// used by the memory bus for boot ROM protection
	ProgramCounter() uint32

	// ExecuteInstruction executes one instruction, advances the local clock
	// and returns the number of cycles consumed
	ExecuteInstruction() int
}

// Geometry is the interface to the 3D geometry engine. The engine consumes
// commands from its FIFO at the rate it is run. The return value indicates
// whether the FIFO is less than half full and is requesting a DMA transfer.
type Geometry interface {
	Run(cycles int) bool
}
