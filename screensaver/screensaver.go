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

// Package screensaver decides when the carousel should be replaced by the
// screensaver. The screensaver is triggered when no key has been released for
// the timeout period. While the screensaver is active it triggers again every
// five seconds, which is when the screensaver image is moved.
package screensaver

import "time"

// Reposition is the interval between triggers while the screensaver is
// active.
const Reposition = 5 * time.Second

// Timer tracks the idle time of the carousel.
type Timer struct {
	timeout time.Duration
	next    time.Time
	active  bool
}

// NewTimer is the preferred method of initialisation for the Timer type. The
// first trigger is the timeout period after now.
func NewTimer(timeout time.Duration, now time.Time) *Timer {
	return &Timer{
		timeout: timeout,
		next:    now.Add(timeout),
	}
}

// Tick checks whether the screensaver should trigger. Returns true if it has
// triggered, in which case the screensaver is active and the display should
// be redrawn.
func (tmr *Timer) Tick(now time.Time) bool {
	if now.Before(tmr.next) {
		return false
	}
	tmr.next = now.Add(Reposition)
	tmr.active = true
	return true
}

// Reset the idle timer. Returns true if the screensaver was active, in which
// case the display should be redrawn.
func (tmr *Timer) Reset(now time.Time) bool {
	tmr.next = now.Add(tmr.timeout)
	wasActive := tmr.active
	tmr.active = false
	return wasActive
}

// Active returns true if the screensaver is active.
func (tmr *Timer) Active() bool {
	return tmr.active
}

// Next returns the time of the next trigger.
func (tmr *Timer) Next() time.Time {
	return tmr.next
}
