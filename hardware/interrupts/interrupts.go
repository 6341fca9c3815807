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

package interrupts

import (
	"github.com/jetsetilly/gopherds/hardware/cpu"
)

// Requester is implemented by anything that accepts interrupt requests. The
// Controller type is the only implementation in the hardware but other
// implementations are useful for testing.
type Requester interface {
	Request(proc cpu.ID, id ID)
}

// State is the interrupt state of one processor.
type State struct {
	IE  uint32
	IF  uint32
	IME bool
}

// Controller holds the interrupt state for both processors.
type Controller struct {
	state [cpu.NumProcessors]State
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

// Reset all interrupt state.
func (c *Controller) Reset() {
	for i := range c.state {
		c.state[i] = State{}
	}
}

// State returns a copy of the interrupt state for the processor.
func (c *Controller) State(proc cpu.ID) State {
	return c.state[proc]
}

// Request implements the Requester interface. The bit for the interrupt is
// set in the IF register of the processor regardless of the IE and IME
// registers.
func (c *Controller) Request(proc cpu.ID, id ID) {
	c.state[proc].IF |= (1 << uint(id)) & DefinedBits
}

// Requesting returns true if an enabled interrupt has been requested and the
// master enable is set.
func (c *Controller) Requesting(proc cpu.ID) bool {
	s := &c.state[proc]
	return s.IME && s.IE&s.IF != 0
}

// ReadIE returns the value of the IE register.
func (c *Controller) ReadIE(proc cpu.ID) uint32 {
	return c.state[proc].IE
}

// WriteIE writes to the bits of IE selected by mask.
func (c *Controller) WriteIE(proc cpu.ID, value uint32, mask uint32) {
	s := &c.state[proc]
	s.IE = ((s.IE &^ mask) | (value & mask)) & DefinedBits
}

// ReadIF returns the value of the IF register.
func (c *Controller) ReadIF(proc cpu.ID) uint32 {
	return c.state[proc].IF
}

// WriteIF acknowledges interrupts. Every bit set in value and selected by mask
// is cleared in IF.
func (c *Controller) WriteIF(proc cpu.ID, value uint32, mask uint32) {
	c.state[proc].IF &^= value & mask
}

// ReadIME returns the value of the IME register.
func (c *Controller) ReadIME(proc cpu.ID) uint32 {
	if c.state[proc].IME {
		return 1
	}
	return 0
}

// WriteIME writes to the IME register. Only bit zero is defined.
func (c *Controller) WriteIME(proc cpu.ID, value uint32, mask uint32) {
	if mask&0x01 == 0x01 {
		c.state[proc].IME = value&0x01 == 0x01
	}
}
