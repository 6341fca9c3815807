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

package vram

import (
	"encoding/binary"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/hardware/faults"
	"github.com/jetsetilly/gopherds/hardware/memory/memorymap"
)

// Region describes the placement of a bank. It is the decoded form of the
// bank's VRAMCNT register.
type Region struct {
	MasterSelect uint8
	Offset       uint8
	Enabled      bool

	// the purpose and base address implied by the fields above. Mapped is
	// false if the bank is disabled or if the master select value is not
	// defined for the bank
	Purpose memorymap.Purpose
	Base    uint32
	Mapped  bool
}

type bank struct {
	data    []byte
	control uint8
	region  Region
}

// contains returns the offset into the bank for the address if the bank is
// mapped for the purpose and the address is in the bank's window.
func (b *bank) contains(address uint32, purpose memorymap.Purpose) (uint32, bool) {
	if !b.region.Mapped || b.region.Purpose != purpose {
		return 0, false
	}
	if address < b.region.Base {
		return 0, false
	}
	offset := address - b.region.Base
	if offset >= uint32(len(b.data)) {
		return 0, false
	}
	return offset, true
}

// Mapping is the result of resolving an address to a bank.
type Mapping struct {
	Bank   Bank
	Offset uint32
}

// VRAM is the collection of all nine banks.
type VRAM struct {
	banks [NumBanks]bank
}

// NewVRAM is the preferred method of initialisation for the VRAM type.
func NewVRAM() *VRAM {
	v := &VRAM{}
	for i := range v.banks {
		v.banks[i].data = make([]byte, Bank(i).Size())
	}
	v.Reset()
	return v
}

// Reset clears all banks and all VRAMCNT registers.
func (v *VRAM) Reset() {
	for i := range v.banks {
		clear(v.banks[i].data)
		_ = v.WriteControl(Bank(i), 0)
	}
}

// ReadControl returns the value of the VRAMCNT register for the bank.
func (v *VRAM) ReadControl(b Bank) (uint8, error) {
	if b < A || b >= NumBanks {
		return 0, curated.Errorf(faults.InvalidBank, int(b))
	}
	return v.banks[b].control, nil
}

// WriteControl writes the VRAMCNT register for the bank. Reserved bits are
// cleared.
func (v *VRAM) WriteControl(b Bank, value uint8) error {
	if b < A || b >= NumBanks {
		return curated.Errorf(faults.InvalidBank, int(b))
	}

	bk := &v.banks[b]
	bk.control = value & b.controlMask()

	r := Region{
		MasterSelect: bk.control & 0x07,
		Offset:       (bk.control >> 3) & 0x03,
		Enabled:      bk.control&0x80 == 0x80,
	}
	var ok bool
	r.Purpose, r.Base, ok = b.window(r.MasterSelect, uint32(r.Offset))
	r.Mapped = ok && r.Enabled
	bk.region = r

	return nil
}

// Region returns the decoded VRAMCNT state of the bank.
func (v *VRAM) Region(b Bank) (Region, error) {
	if b < A || b >= NumBanks {
		return Region{}, curated.Errorf(faults.InvalidBank, int(b))
	}
	return v.banks[b].region, nil
}

// Resolve returns every bank that responds to an access at the address for
// the purpose. The list is in bank order and is empty if no bank responds.
func (v *VRAM) Resolve(address uint32, purpose memorymap.Purpose) []Mapping {
	var m []Mapping
	for i := range v.banks {
		if offset, ok := v.banks[i].contains(address, purpose); ok {
			m = append(m, Mapping{Bank: Bank(i), Offset: offset})
		}
	}
	return m
}

// Read8 returns the OR of the byte at the address in every bank that
// responds to the purpose. Returns zero if no bank responds.
func (v *VRAM) Read8(address uint32, purpose memorymap.Purpose) uint8 {
	var d uint8
	for i := range v.banks {
		if offset, ok := v.banks[i].contains(address, purpose); ok {
			d |= v.banks[i].data[offset]
		}
	}
	return d
}

// Read16 returns the little-endian halfword at the address. The address is
// aligned to a halfword boundary.
func (v *VRAM) Read16(address uint32, purpose memorymap.Purpose) uint16 {
	address &^= 0x01
	var b [2]byte
	b[0] = v.Read8(address, purpose)
	b[1] = v.Read8(address+1, purpose)
	return binary.LittleEndian.Uint16(b[:])
}

// Read32 returns the little-endian word at the address. The address is
// aligned to a word boundary.
func (v *VRAM) Read32(address uint32, purpose memorymap.Purpose) uint32 {
	address &^= 0x03
	var b [4]byte
	for i := range b {
		b[i] = v.Read8(address+uint32(i), purpose)
	}
	return binary.LittleEndian.Uint32(b[:])
}

// Write8 writes the byte to every bank that responds to the purpose at the
// address. Returns false if no bank responded.
func (v *VRAM) Write8(address uint32, purpose memorymap.Purpose, data uint8) bool {
	var written bool
	for i := range v.banks {
		if offset, ok := v.banks[i].contains(address, purpose); ok {
			v.banks[i].data[offset] = data
			written = true
		}
	}
	return written
}

// Write16 writes the halfword in little-endian order. The address is aligned
// to a halfword boundary.
func (v *VRAM) Write16(address uint32, purpose memorymap.Purpose, data uint16) bool {
	address &^= 0x01
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], data)
	lo := v.Write8(address, purpose, b[0])
	hi := v.Write8(address+1, purpose, b[1])
	return lo || hi
}

// Write32 writes the word in little-endian order. The address is aligned to
// a word boundary.
func (v *VRAM) Write32(address uint32, purpose memorymap.Purpose, data uint32) bool {
	address &^= 0x03
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], data)
	var written bool
	for i := range b {
		if v.Write8(address+uint32(i), purpose, b[i]) {
			written = true
		}
	}
	return written
}

// ReadBank16 reads a halfword directly from a bank, ignoring the bank's
// placement. This is how the display and texture engines see the banks.
func (v *VRAM) ReadBank16(b Bank, offset uint32) (uint16, error) {
	if b < A || b >= NumBanks {
		return 0, curated.Errorf(faults.InvalidBank, int(b))
	}
	data := v.banks[b].data
	offset &^= 0x01
	if offset+2 > uint32(len(data)) {
		return 0, curated.Errorf(faults.OutOfRangeAddress, b, offset)
	}
	return binary.LittleEndian.Uint16(data[offset:]), nil
}

// BankData returns the bytes of the bank. The slice is the bank's storage
// and should not be retained.
func (v *VRAM) BankData(b Bank) ([]byte, error) {
	if b < A || b >= NumBanks {
		return nil, curated.Errorf(faults.InvalidBank, int(b))
	}
	return v.banks[b].data, nil
}

// ARM7Status returns the value of the VRAMSTAT register seen by the ARM7.
// Bit zero is set if bank C is mapped to the ARM7 and bit one if bank D is.
func (v *VRAM) ARM7Status() uint8 {
	var s uint8
	if r := v.banks[C].region; r.Mapped && r.Purpose == memorymap.ARM7VRAM {
		s |= 0x01
	}
	if r := v.banks[D].region; r.Mapped && r.Purpose == memorymap.ARM7VRAM {
		s |= 0x02
	}
	return s
}
