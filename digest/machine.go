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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopherds/hardware"
	"github.com/jetsetilly/gopherds/hardware/memory/vram"
)

// Machine is a digest of the memory of the console. Each call to Update()
// chains the new state onto the previous digest so the final value depends
// on every state that was hashed.
type Machine struct {
	nds    *hardware.NDS
	digest [sha1.Size]byte

	// number of calls to Update() since the last reset
	Updates int
}

var _ Digest = (*Machine)(nil)

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine(nds *hardware.NDS) *Machine {
	return &Machine{nds: nds}
}

// Hash implements the digest.Digest interface.
func (dig *Machine) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Machine) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.Updates = 0
}

// Update the digest with the current state of the console.
func (dig *Machine) Update() error {
	h := sha1.New()

	// chain the previous value
	h.Write(dig.digest[:])

	mem := dig.nds.Mem
	h.Write(mem.MainRAM)
	h.Write(mem.WRAM.Shared)
	h.Write(mem.WRAM.ARM7)
	h.Write(mem.Palette)
	h.Write(mem.OAM)

	for b := vram.A; b < vram.NumBanks; b++ {
		data, err := mem.VRAM.BankData(b)
		if err != nil {
			return fmt.Errorf("digest: %w", err)
		}
		h.Write(data)
	}

	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], dig.nds.Timeline.Now())
	h.Write(ts[:])

	copy(dig.digest[:], h.Sum(nil))
	dig.Updates++

	return nil
}
