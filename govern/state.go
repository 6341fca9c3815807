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

package govern

// State indicates the emulation's state. The value is returned by the
// continue check function of the hardware run loops.
type State int

// List of possible emulation states.
//
// Initialising is the state before the emulation has started and is also used
// to stop a run so that the console can be reset.
const (
	Initialising State = iota
	Paused
	Running
	Ending
	numStates
)

var stateNames = [numStates]string{"Initialising", "Paused", "Running", "Ending"}

func (s State) String() string {
	if s < 0 || s >= numStates {
		return ""
	}
	return stateNames[s]
}

// Continuing returns true if a run loop should continue calling the continue
// check. A paused emulation continues but does not advance the console.
func (s State) Continuing() bool {
	return s == Running || s == Paused
}
