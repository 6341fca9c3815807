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

package main

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/hardware"
)

// writeMemviz writes a graphviz description of the peripherals of the
// console. the memory arrays are left out because they would swamp the graph.
func writeMemviz(filename string, nds *hardware.NDS) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, nds.Timeline, nds.Interrupts, nds.Timers, nds.DMA, nds.IPC, nds.Display, nds.Math)

	return nil
}
