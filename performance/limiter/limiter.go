// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(30)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		tick()
//	}
package limiter

import (
	"sync/atomic"
	"time"
)

// FpsLimiter will trigger every frames per second. It implements the
// frontend.Limiter interface.
type FpsLimiter struct {
	// frame duration in nanoseconds
	frame atomic.Int64

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter
// type. A framesPerSecond value of zero or less is treated as one frame per
// second.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	// run ticker concurrently
	go func() {
		adjusted := lim.FrameDuration()
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			time.Sleep(adjusted)

			// the sleep duration is adjusted to account for the time taken
			// by the consumer of the tick
			nt := time.Now()
			frame := lim.FrameDuration()
			adjusted -= nt.Sub(t) - frame
			if adjusted < 0 {
				adjusted = 0
			} else if adjusted > frame {
				adjusted = frame
			}
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits. The frame delay
// is 1000/fps milliseconds, truncated to the millisecond.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond <= 0 {
		framesPerSecond = 1
	}
	lim.frame.Store(int64(time.Duration(1000/framesPerSecond) * time.Millisecond))
}

// FrameDuration returns the current frame delay.
func (lim *FpsLimiter) FrameDuration() time.Duration {
	return time.Duration(lim.frame.Load())
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the ticker goroutine. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	close(lim.quit)
}
