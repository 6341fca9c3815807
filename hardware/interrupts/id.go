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

import "fmt"

// ID is an interrupt line. The value is the bit number in the IE and IF
// registers.
type ID int

// List of interrupt lines.
const (
	VBlank ID = iota
	HBlank
	VCount
	Timer0
	Timer1
	Timer2
	Timer3
	RTC
	DMA0
	DMA1
	DMA2
	DMA3
	Keypad
	Slot2
	_
	_
	IPCSync
	IPCSendEmpty
	IPCRecvNotEmpty
	CartTransfer
	CartIREQ
	GeometryFIFO
	Unfold
	SPI
	Wifi
)

var names = map[ID]string{
	VBlank:          "vblank",
	HBlank:          "hblank",
	VCount:          "vcount",
	Timer0:          "timer0",
	Timer1:          "timer1",
	Timer2:          "timer2",
	Timer3:          "timer3",
	RTC:             "rtc",
	DMA0:            "dma0",
	DMA1:            "dma1",
	DMA2:            "dma2",
	DMA3:            "dma3",
	Keypad:          "keypad",
	Slot2:           "slot2",
	IPCSync:         "ipc sync",
	IPCSendEmpty:    "ipc send empty",
	IPCRecvNotEmpty: "ipc recv not empty",
	CartTransfer:    "cart transfer",
	CartIREQ:        "cart ireq",
	GeometryFIFO:    "geometry fifo",
	Unfold:          "unfold",
	SPI:             "spi",
	Wifi:            "wifi",
}

func (id ID) String() string {
	if s, ok := names[id]; ok {
		return s
	}
	return fmt.Sprintf("irq%d", int(id))
}

// Timer returns the interrupt line for a timer in a group of four. Only the
// lower two bits of the index are used.
func Timer(idx int) ID {
	return Timer0 + ID(idx&0x03)
}

// DMA returns the interrupt line for a DMA channel in a group of four. Only
// the lower two bits of the index are used.
func DMA(idx int) ID {
	return DMA0 + ID(idx&0x03)
}

// DefinedBits is the mask of bits in IE and IF that correspond to an
// interrupt line.
const DefinedBits = uint32(0x01ff3fff)
