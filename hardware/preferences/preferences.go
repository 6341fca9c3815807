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

package preferences

import (
	"github.com/jetsetilly/gopherds/prefs"
)

// Values accepted by the CompletionCheck preference.
const (
	CompletionReaches = "reaches"
	CompletionExceeds = "exceeds"
)

// Preferences defines and collates all the preference values used by the
// hardware. An instance is created once and passed to the console when it is
// created.
type Preferences struct {
	dct *prefs.Dictionary

	// maximum number of system cycles the timeline advances in one step
	TimelineSlice prefs.Int

	// number of system cycles between DMA continuation ticks
	DMAUnitCycles prefs.Int

	// boot ROM protection threshold for processor B applied at reset
	BootProtect prefs.Int

	// log accesses to addresses that are not mapped to anything
	LogUnmapped prefs.Bool

	// initialise RAM to a random state on reset
	RandomState prefs.Bool

	// boundary used to decide that a DMA transfer has completed. one of
	// CompletionReaches or CompletionExceeds
	CompletionCheck prefs.String
}

func (p *Preferences) String() string {
	return p.dct.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() *Preferences {
	p := &Preferences{
		dct: prefs.NewDictionary(),
	}

	p.TimelineSlice.SetRange(1, 1024)
	p.DMAUnitCycles.SetRange(1, 1024)
	p.BootProtect.SetRange(0, 0x4000)

	p.dct.Add("timeline.slice", &p.TimelineSlice)
	p.dct.Add("dma.unitcycles", &p.DMAUnitCycles)
	p.dct.Add("dma.completion", &p.CompletionCheck)
	p.dct.Add("bus.bootprotect", &p.BootProtect)
	p.dct.Add("bus.logunmapped", &p.LogUnmapped)
	p.dct.Add("bus.randstate", &p.RandomState)

	p.SetDefaults()

	return p
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.TimelineSlice.Set(20)
	_ = p.DMAUnitCycles.Set(1)
	_ = p.BootProtect.Set(0x4000)
	_ = p.LogUnmapped.Set(false)
	_ = p.RandomState.Set(false)
	_ = p.CompletionCheck.Set(CompletionReaches)
}

// Apply a preferences string from the command line. Returns the part of the
// string that was not recognised.
func (p *Preferences) Apply(cmdline string) (string, error) {
	return p.dct.Apply(cmdline)
}
