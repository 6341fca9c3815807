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

package comparison

import (
	"context"
	"fmt"

	"github.com/jetsetilly/gopherds/curated"
	"github.com/jetsetilly/gopherds/digest"
	"github.com/jetsetilly/gopherds/environment"
	"github.com/jetsetilly/gopherds/govern"
	"github.com/jetsetilly/gopherds/hardware"
	"github.com/jetsetilly/gopherds/hardware/cpu"
	"github.com/jetsetilly/gopherds/hardware/preferences"
	"github.com/jetsetilly/gopherds/script"
	"golang.org/x/sync/errgroup"
)

// Sentinal error patterns.
const (
	Divergence  = "comparison: instance %d: frame %d: digest %s differs from %s"
	TooFew      = "comparison: at least two instances are required (%d)"
	Instance    = "comparison: instance %d: %v"
	FrameLength = "comparison: instance %d: ran %d frames, expected %d"
)

// ProcessorCreator returns a new processor for the ID. It is called once per
// processor per instance.
type ProcessorCreator func(id cpu.ID) cpu.Processor

type instance struct {
	nds *hardware.NDS
	dig *digest.Machine

	// digest after every frame
	frames []string
}

// Comparison type runs parallel emulations with the intention of comparing
// the state of each.
type Comparison struct {
	instances []*instance
}

// NewComparison is the preferred method of initialisation for the Comparison
// type. The prefs argument can be nil.
func NewComparison(numInstances int, prefs *preferences.Preferences, create ProcessorCreator) (*Comparison, error) {
	if numInstances < 2 {
		return nil, curated.Errorf(TooFew, numInstances)
	}

	cmp := &Comparison{}

	for i := 0; i < numInstances; i++ {
		label := environment.Label(fmt.Sprintf("comparison/%d", i))
		nds, err := hardware.NewNDS(label, prefs, create(cpu.ARM9), create(cpu.ARM7), nil)
		if err != nil {
			return nil, curated.Errorf(Instance, i, err)
		}

		// random state must be the same in every instance
		nds.Env.Random.ZeroSeed = true
		nds.Reset()

		cmp.instances = append(cmp.instances, &instance{
			nds: nds,
			dig: digest.NewMachine(nds),
		})
	}

	return cmp, nil
}

// Len returns the number of instances.
func (cmp *Comparison) Len() int {
	return len(cmp.instances)
}

// LoadBootROM loads the same boot ROM into every instance.
func (cmp *Comparison) LoadBootROM(proc cpu.ID, data []byte) error {
	for i, inst := range cmp.instances {
		if err := inst.nds.Mem.LoadBootROM(proc, data); err != nil {
			return curated.Errorf(Instance, i, err)
		}
	}
	return nil
}

// Run the script, which can be nil, in every instance and then run each
// instance for the number of frames. The instances run concurrently. The
// digests are compared once every instance has finished.
//
// Running stops early if the context is cancelled or if any instance fails.
func (cmp *Comparison) Run(ctx context.Context, numFrames int, scr script.Runner) error {
	g, ctx := errgroup.WithContext(ctx)

	for i, inst := range cmp.instances {
		i, inst := i, inst
		g.Go(func() error {
			inst.frames = inst.frames[:0]

			if scr != nil {
				if err := scr.Run(inst.nds, inst.dig, nil); err != nil {
					return curated.Errorf(Instance, i, err)
				}
			}

			err := inst.nds.RunForFrameCount(numFrames, func(frame int) (govern.State, error) {
				if err := inst.dig.Update(); err != nil {
					return govern.Ending, err
				}
				inst.frames = append(inst.frames, inst.dig.Hash())

				select {
				case <-ctx.Done():
					return govern.Ending, ctx.Err()
				default:
				}
				return govern.Running, nil
			})
			if err != nil {
				return curated.Errorf(Instance, i, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return cmp.compare(numFrames)
}

func (cmp *Comparison) compare(numFrames int) error {
	for i, inst := range cmp.instances {
		if len(inst.frames) != numFrames {
			return curated.Errorf(FrameLength, i, len(inst.frames), numFrames)
		}
	}

	ref := cmp.instances[0]
	for i, inst := range cmp.instances[1:] {
		for f := range inst.frames {
			if inst.frames[f] != ref.frames[f] {
				return curated.Errorf(Divergence, i+1, f, inst.frames[f], ref.frames[f])
			}
		}
	}

	return nil
}

// Hash returns the final digest of the first instance. After a successful
// call to Run() every instance has the same digest.
func (cmp *Comparison) Hash() string {
	return cmp.instances[0].dig.Hash()
}

// Console returns the console of the numbered instance. Returns nil if the
// number is out of range.
func (cmp *Comparison) Console(i int) *hardware.NDS {
	if i < 0 || i >= len(cmp.instances) {
		return nil
	}
	return cmp.instances[i].nds
}
