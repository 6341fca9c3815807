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

// Package limiter provides a rough and ready way of limiting the emulation to
// a fixed frame rate.
//
// A new Limiter is created with a context. The ticker goroutine ends when the
// context is done:
//
//	lim := limiter.NewLimiter(ctx, performance.FramesPerSecond)
//
// Frames can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		nds.RunFrame()
//	}
package limiter

import (
	"context"
	"time"
)

// Limiter will trigger the number of frames per second.
type Limiter struct {
	ctx    context.Context
	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(ctx context.Context, framesPerSecond float64) *Limiter {
	lim := &Limiter{
		ctx:    ctx,
		ticker: time.NewTicker(period(framesPerSecond)),
	}

	go func() {
		<-ctx.Done()
		lim.ticker.Stop()
	}()

	return lim
}

func period(framesPerSecond float64) time.Duration {
	if framesPerSecond <= 0 {
		framesPerSecond = 1
	}
	return time.Duration(float64(time.Second) / framesPerSecond)
}

// SetLimit changes the limit at which the Limiter waits.
func (lim *Limiter) SetLimit(framesPerSecond float64) {
	lim.ticker.Reset(period(framesPerSecond))
}

// Wait will block until the next trigger. Returns false if the context is
// done.
func (lim *Limiter) Wait() bool {
	select {
	case <-lim.ticker.C:
		return true
	case <-lim.ctx.Done():
		return false
	}
}

// HasWaited will return true if the trigger has already happened and false
// if it is still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}
