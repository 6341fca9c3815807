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

// Idle is a Processor that executes no program. Each call to
// ExecuteInstruction() consumes a fixed number of cycles. It can be halted
// and woken and it counts the number of interrupts it has been asked to
// handle.
type Idle struct {
	clock uint64

	// number of cycles consumed by each instruction
	CyclesPerInstruction int

	// program counter reported to the memory bus. it never changes unless
	// set directly
	PC uint32

	halted      bool
	irqDisabled bool

	// count of calls to ExecuteInstruction() and HandleInterrupt()
	Instructions int
	Interrupts   int
}

// NewIdle is the preferred method of initialisation for the Idle type.
func NewIdle(cyclesPerInstruction int, pc uint32) *Idle {
	if cyclesPerInstruction < 1 {
		cyclesPerInstruction = 1
	}
	return &Idle{
		CyclesPerInstruction: cyclesPerInstruction,
		PC:                   pc,
	}
}

// Clock implements the Processor interface.
func (p *Idle) Clock() uint64 {
	return p.clock
}

// SetClock implements the Processor interface.
func (p *Idle) SetClock(clock uint64) {
	p.clock = clock
}

// Halted implements the Processor interface.
func (p *Idle) Halted() bool {
	return p.halted
}

// Halt puts the processor into the halted state.
func (p *Idle) Halt() {
	p.halted = true
}

// Wake implements the Processor interface.
func (p *Idle) Wake() {
	p.halted = false
}

// InterruptsDisabled implements the Processor interface.
func (p *Idle) InterruptsDisabled() bool {
	return p.irqDisabled
}

// DisableInterrupts sets the suppression state reported by
// InterruptsDisabled().
func (p *Idle) DisableInterrupts(disabled bool) {
	p.irqDisabled = disabled
}

// HandleInterrupt implements the Processor interface. Interrupts are
// suppressed once taken, as they are by an ARM processor entering IRQ mode.
func (p *Idle) HandleInterrupt() {
	p.Interrupts++
	p.irqDisabled = true
}

// ProgramCounter implements the Processor interface.
func (p *Idle) ProgramCounter() uint32 {
	return p.PC
}

// ExecuteInstruction implements the Processor interface.
func (p *Idle) ExecuteInstruction() int {
	p.Instructions++
	p.clock += uint64(p.CyclesPerInstruction)
	return p.CyclesPerInstruction
}
