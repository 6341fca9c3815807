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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Timeline is implemented by anything that can report a position in the
// emulation. The scheduler timeline satisfies this interface.
type Timeline interface {
	Now() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation. Required for parallel emulations.
type Random struct {
	timeline Timeline

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// nil timeline is allowed and will be treated as time zero.
func NewRandom(timeline Timeline) *Random {
	return &Random{
		timeline: timeline,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	var t int64
	if rnd.timeline != nil {
		t = int64(rnd.timeline.Now())
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(t))
	}
	return rand.New(rand.NewSource(baseSeed + t))
}

// Intn returns a number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill the byte slice with random values. A single source is used for the
// entire slice.
func (rnd *Random) Fill(b []byte) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
}
