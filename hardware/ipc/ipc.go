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

package ipc

import (
	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/faults"
	"github.com/jetsetilly/gopherds/hardware/interrupts"
	"github.com/jetsetilly/gopherds/logger"
)

// FIFODepth is the maximum number of words in a FIFO.
const FIFODepth = 16

// Bits in the IPCSYNC register.
const (
	SyncOutput    = 0x000f
	SyncInput     = 0x0f00
	SyncSendIRQ   = 0x2000
	SyncIRQEnable = 0x4000
)

// Bits in the IPCFIFOCNT register.
const (
	FIFOSendEmpty       = 0x0001
	FIFOSendFull        = 0x0002
	FIFOSendEmptyIRQ    = 0x0004
	FIFOSendClear       = 0x0008
	FIFORecvEmpty       = 0x0100
	FIFORecvFull        = 0x0200
	FIFORecvNotEmptyIRQ = 0x0400
	FIFOError           = 0x4000
	FIFOEnable          = 0x8000
)

// Sync is the state of the IPCSYNC register of one processor.
type Sync struct {
	// written by the other processor
	Input uint8

	Output    uint8
	IRQEnable bool
}

// FIFO is the FIFO state of one processor. The queue holds the words sent by
// the processor that have not yet been read by the other processor.
type FIFO struct {
	queue []uint32

	// the most recent word received. returned by a read from an empty or
	// disabled FIFO
	lastRead uint32

	Error           bool
	Enabled         bool
	SendEmptyIRQ    bool
	RecvNotEmptyIRQ bool
}

// Channel is the IPC hardware shared by the two processors.
type Channel struct {
	env  logger.Permission
	irq  interrupts.Requester
	sync [cpu.NumProcessors]Sync
	fifo [cpu.NumProcessors]FIFO
}

// NewChannel is the preferred method of initialisation for the Channel type.
func NewChannel(env logger.Permission, irq interrupts.Requester) *Channel {
	c := &Channel{
		env: env,
		irq: irq,
	}
	c.Reset()
	return c
}

// Reset both sync registers and empty both FIFOs.
func (c *Channel) Reset() {
	for i := range c.sync {
		c.sync[i] = Sync{}
		c.fifo[i] = FIFO{
			queue: make([]uint32, 0, FIFODepth),
		}
	}
}

// Sync returns a copy of the sync state of the processor.
func (c *Channel) Sync(proc cpu.ID) Sync {
	return c.sync[proc]
}

// ReadSync returns the value of the IPCSYNC register for the processor.
func (c *Channel) ReadSync(proc cpu.ID) uint16 {
	s := c.sync[proc]
	v := uint16(s.Output) | uint16(s.Input)<<8
	if s.IRQEnable {
		v |= SyncIRQEnable
	}
	return v
}

// WriteSync writes the bits of the IPCSYNC register selected by mask. The
// output nibble is copied to the input nibble of the other processor
// immediately. Setting the send bit requests an interrupt on the other
// processor if it has enabled the sync interrupt.
func (c *Channel) WriteSync(proc cpu.ID, value uint16, mask uint16) {
	v := (c.ReadSync(proc) &^ mask) | (value & mask)

	s := &c.sync[proc]
	s.Output = uint8(v & SyncOutput)
	s.IRQEnable = v&SyncIRQEnable == SyncIRQEnable

	peer := &c.sync[proc.Peer()]
	peer.Input = s.Output

	if value&mask&SyncSendIRQ == SyncSendIRQ && peer.IRQEnable {
		c.irq.Request(proc.Peer(), interrupts.IPCSync)
	}
}

// SendLen returns the number of words written by the processor and not yet
// read by the other processor.
func (c *Channel) SendLen(proc cpu.ID) int {
	return len(c.fifo[proc].queue)
}

// RecvLen returns the number of words waiting to be read by the processor.
func (c *Channel) RecvLen(proc cpu.ID) int {
	return len(c.fifo[proc.Peer()].queue)
}

// FIFO returns a copy of the FIFO flags of the processor.
func (c *Channel) FIFO(proc cpu.ID) FIFO {
	f := c.fifo[proc]
	f.queue = nil
	return f
}

// ReadFIFOControl returns the value of the IPCFIFOCNT register for the
// processor. The empty and full bits are computed from the queues.
func (c *Channel) ReadFIFOControl(proc cpu.ID) uint16 {
	f := &c.fifo[proc]

	var v uint16

	switch c.SendLen(proc) {
	case 0:
		v |= FIFOSendEmpty
	case FIFODepth:
		v |= FIFOSendFull
	}

	switch c.RecvLen(proc) {
	case 0:
		v |= FIFORecvEmpty
	case FIFODepth:
		v |= FIFORecvFull
	}

	if f.SendEmptyIRQ {
		v |= FIFOSendEmptyIRQ
	}
	if f.RecvNotEmptyIRQ {
		v |= FIFORecvNotEmptyIRQ
	}
	if f.Error {
		v |= FIFOError
	}
	if f.Enabled {
		v |= FIFOEnable
	}

	return v
}

// WriteFIFOControl writes the bits of the IPCFIFOCNT register selected by
// mask. The status bits are read-only. Writing one to the error bit clears
// the error and writing one to the send clear bit empties the send queue.
//
// Enabling an interrupt when its condition is already true requests the
// interrupt immediately.
func (c *Channel) WriteFIFOControl(proc cpu.ID, value uint16, mask uint16) {
	f := &c.fifo[proc]
	value &= mask

	if mask&FIFOSendEmptyIRQ == FIFOSendEmptyIRQ {
		was := f.SendEmptyIRQ
		f.SendEmptyIRQ = value&FIFOSendEmptyIRQ == FIFOSendEmptyIRQ
		if !was && f.SendEmptyIRQ && c.SendLen(proc) == 0 {
			c.irq.Request(proc, interrupts.IPCSendEmpty)
		}
	}

	if value&FIFOSendClear == FIFOSendClear {
		f.queue = f.queue[:0]
	}

	if mask&FIFORecvNotEmptyIRQ == FIFORecvNotEmptyIRQ {
		was := f.RecvNotEmptyIRQ
		f.RecvNotEmptyIRQ = value&FIFORecvNotEmptyIRQ == FIFORecvNotEmptyIRQ
		if !was && f.RecvNotEmptyIRQ && c.RecvLen(proc) > 0 {
			c.irq.Request(proc, interrupts.IPCRecvNotEmpty)
		}
	}

	if value&FIFOError == FIFOError {
		f.Error = false
	}

	if mask&FIFOEnable == FIFOEnable {
		f.Enabled = value&FIFOEnable == FIFOEnable
	}
}

// WriteFIFO pushes a word onto the send queue of the processor. The word is
// dropped if the FIFO is disabled. If the queue is full the word is dropped,
// the error flag is set for both processors and a QueueOverflow error is
// returned.
func (c *Channel) WriteFIFO(proc cpu.ID, word uint32) error {
	f := &c.fifo[proc]
	if !f.Enabled {
		return nil
	}

	if len(f.queue) >= FIFODepth {
		f.Error = true
		c.fifo[proc.Peer()].Error = true
		err := curated.Errorf(faults.QueueOverflow, proc)
		logger.Log(c.env, "ipc", err)
		return err
	}

	f.queue = append(f.queue, word)

	if len(f.queue) == 1 && c.fifo[proc.Peer()].RecvNotEmptyIRQ {
		c.irq.Request(proc.Peer(), interrupts.IPCRecvNotEmpty)
	}

	return nil
}

// ReadFIFO pops a word from the receive queue of the processor. If the FIFO
// is disabled the most recently read word is returned. If the queue is empty
// the error flag is set, the most recently read word is returned and a
// QueueUnderflow error is returned.
func (c *Channel) ReadFIFO(proc cpu.ID) (uint32, error) {
	f := &c.fifo[proc]
	if !f.Enabled {
		return f.lastRead, nil
	}

	sender := &c.fifo[proc.Peer()]

	if len(sender.queue) == 0 {
		f.Error = true
		err := curated.Errorf(faults.QueueUnderflow, proc)
		logger.Log(c.env, "ipc", err)
		return f.lastRead, err
	}

	f.lastRead = sender.queue[0]
	sender.queue = append(sender.queue[:0], sender.queue[1:]...)

	if len(sender.queue) == 0 && sender.SendEmptyIRQ {
		c.irq.Request(proc.Peer(), interrupts.IPCSendEmpty)
	}

	return f.lastRead, nil
}

// LastFIFO returns the most recently read word without popping the receive
// queue.
func (c *Channel) LastFIFO(proc cpu.ID) uint32 {
	return c.fifo[proc].lastRead
}
