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

package hardware

import (
	"github.com/jetsetilly/gopherds/govern"
)

// RunFrame steps the console until the display completes a frame.
func (nds *NDS) RunFrame() {
	for {
		nds.Step()
		if nds.Display.FrameComplete() {
			return
		}
	}
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called at the end of every frame and the emulation stops when
// it returns the Ending or Initialising state. A nil continueCheck runs
// forever.
func (nds *NDS) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state.Continuing() {
		// a paused console is not advanced
		if state == govern.Running {
			nds.RunFrame()
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames.
// The continueCheck function is called after every frame with the number of
// frames completed since reset and can be nil.
func (nds *NDS) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	targetFrame := nds.Display.Frames + numFrames

	state := govern.Running
	for nds.Display.Frames < targetFrame && state != govern.Ending {
		nds.RunFrame()

		var err error
		state, err = continueCheck(nds.Display.Frames)
		if err != nil {
			return err
		}
	}

	return nil
}
