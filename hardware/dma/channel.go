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

package dma

import (
	"fmt"

	"github.com/jetsetilly/gopherds/hardware/cpu"
)

// Bits in the DMA control register.
const (
	ControlDestMode   = 0x0060
	ControlSourceMode = 0x0180
	ControlRepeat     = 0x0200
	ControlWord       = 0x0400
	ControlIRQ        = 0x4000
	ControlEnable     = 0x8000

	// timing field is three bits wide for the ARM9 and two bits for the ARM7
	controlTimingARM9 = 0x3800
	controlTimingARM7 = 0x3000

	controlMaskARM9 = 0xffe0
	controlMaskARM7 = 0xf7e0
)

// AddressMode describes how an address changes after each unit.
type AddressMode int

// List of address modes. Reload is only valid for the destination address
// and Prohibited is only found in the source address mode.
const (
	Increment AddressMode = iota
	Decrement
	Fixed
	Reload
	Prohibited
)

func (m AddressMode) String() string {
	switch m {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	case Fixed:
		return "fixed"
	case Reload:
		return "reload"
	}
	return "prohibited"
}

// Timing is the event that starts a transfer.
type Timing int

// List of timings.
const (
	Immediate Timing = iota
	VBlank
	HBlank
	DisplaySync
	MainMemoryDisplay
	Cartridge
	Slot2
	GeometryFIFO
	Wireless
)

func (t Timing) String() string {
	switch t {
	case Immediate:
		return "immediate"
	case VBlank:
		return "vblank"
	case HBlank:
		return "hblank"
	case DisplaySync:
		return "display sync"
	case MainMemoryDisplay:
		return "main memory display"
	case Cartridge:
		return "cartridge"
	case Slot2:
		return "slot2"
	case GeometryFIFO:
		return "geometry fifo"
	case Wireless:
		return "wireless"
	}
	return "unknown timing"
}

// Channel is the state of a single DMA channel.
type Channel struct {
	// the processor that owns the channel and the index of the channel within
	// that processor's group
	Proc  cpu.ID
	Local int

	// registers as written by the processor. the Length is stored in its
	// normalised form
	Source      uint32
	Destination uint32
	Length      uint32
	Control     uint16

	// working copies of the registers
	InternalSource uint32
	InternalDest   uint32
	InternalLen    uint32

	// number of units transferred since reset
	Units int
}

func (c Channel) String() string {
	return fmt.Sprintf("%s dma%d: %08x -> %08x [%d/%d] %s", c.Proc, c.Local,
		c.InternalSource, c.InternalDest, c.InternalLen, c.Length, c.Timing())
}

// Enabled returns true if the enable bit is set.
func (c Channel) Enabled() bool {
	return c.Control&ControlEnable == ControlEnable
}

// Repeat returns true if the repeat bit is set.
func (c Channel) Repeat() bool {
	return c.Control&ControlRepeat == ControlRepeat
}

// Word returns true if the unit of transfer is a word.
func (c Channel) Word() bool {
	return c.Control&ControlWord == ControlWord
}

// UnitSize is the number of bytes in each unit of transfer.
func (c Channel) UnitSize() uint32 {
	if c.Word() {
		return 4
	}
	return 2
}

// DestMode returns the destination address mode.
func (c Channel) DestMode() AddressMode {
	return AddressMode((c.Control & ControlDestMode) >> 5)
}

// SourceMode returns the source address mode.
func (c Channel) SourceMode() AddressMode {
	m := AddressMode((c.Control & ControlSourceMode) >> 7)
	if m == Reload {
		return Prohibited
	}
	return m
}

// Timing returns the decoded timing field.
func (c Channel) Timing() Timing {
	if c.Proc == cpu.ARM9 {
		return Timing((c.Control & controlTimingARM9) >> 11)
	}
	switch (c.Control & controlTimingARM7) >> 12 {
	case 1:
		return VBlank
	case 2:
		return Cartridge
	case 3:
		return Wireless
	}
	return Immediate
}

// address masks for the source and destination registers
func (c Channel) addressMasks() (uint32, uint32) {
	if c.Proc == cpu.ARM9 {
		return 0x0fffffff, 0x0fffffff
	}
	src := uint32(0x0fffffff)
	if c.Local == 0 {
		src = 0x07ffffff
	}
	dst := uint32(0x07ffffff)
	if c.Local == 3 {
		dst = 0x0fffffff
	}
	return src, dst
}

// normaliseLength converts the value written to the length register into the
// number of units to transfer. A value of zero is the maximum length.
func (c Channel) normaliseLength(value uint16) uint32 {
	if c.Proc == cpu.ARM9 {
		if value == 0 {
			return 0x200000
		}
		return uint32(value)
	}

	if c.Local == 3 {
		if value == 0 {
			return 0x10000
		}
		return uint32(value)
	}

	if value&0x3fff == 0 {
		return 0x4000
	}
	return uint32(value & 0x3fff)
}

// step the address by one unit according to the mode
func step(address uint32, mode AddressMode, size uint32) uint32 {
	switch mode {
	case Increment, Reload:
		return address + size
	case Decrement:
		return address - size
	}
	return address
}
