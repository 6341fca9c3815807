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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/govern"
	"github.com/jetsetilly/gopherds/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the emulation runs for this long before measurement starts so that the
// frame rate can settle down
var leadtime = 2 * time.Second

// Check the performance of the emulation. The console should have been
// prepared before the call. Emulation will run for the specified duration
// and will create a cpu profile, memory profile, trace (or a combination of
// those) as defined by the Profile argument.
//
// The check ends early with an error if the context is cancelled.
func Check(ctx context.Context, output io.Writer, nds *hardware.NDS, profile Profile, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive (%v)", duration)
	}

	startFrame := nds.Display.Frames

	runner := func() error {
		lead := time.NewTimer(leadtime)
		defer lead.Stop()

		// nil until the leadtime has elapsed
		var measure *time.Timer
		var end <-chan time.Time
		defer func() {
			if measure != nil {
				measure.Stop()
			}
		}()

		return nds.Run(func() (govern.State, error) {
			select {
			case <-ctx.Done():
				return govern.Ending, ctx.Err()
			case <-lead.C:
				startFrame = nds.Display.Frames
				measure = time.NewTimer(duration)
				end = measure.C
			case <-end:
				return govern.Ending, timedOut
			default:
			}
			return govern.Running, nil
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := nds.Display.Frames - startFrame
	fps, accuracy := CalcFPS(numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return nil
}
