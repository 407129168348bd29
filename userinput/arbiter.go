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

package userinput

import (
	"time"

	"github.com/jetsetilly/marquee/carousel"
)

// RepeatInterval is the time between pulses while a direction is held.
const RepeatInterval = time.Second

// Action is the result of handling an event.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionSelect
	ActionEscape
	ActionVolumeUp
	ActionVolumeDown
)

func (a Action) String() string {
	switch a {
	case ActionSelect:
		return "select"
	case ActionEscape:
		return "escape"
	case ActionVolumeUp:
		return "volume up"
	case ActionVolumeDown:
		return "volume down"
	}
	return "none"
}

// Result of the Arbiter.Handle() function.
type Result struct {
	Action Action

	// the event was a key release. a key release dismisses the screensaver
	// and resets the idle timer
	Release bool
}

type hold struct {
	held bool
	due  time.Time
}

// Arbiter converts events into carousel actions.
type Arbiter struct {
	// swap the direction associated with the left and right keys
	reverse bool

	// the Up and Down keys change the volume
	volumeKeys bool

	left  hold
	right hold
}

// NewArbiter is the preferred method of initialisation for the Arbiter type.
func NewArbiter(reverse bool, volumeKeys bool) *Arbiter {
	return &Arbiter{
		reverse:    reverse,
		volumeKeys: volumeKeys,
	}
}

// direction returns the carousel direction for the key. returns nil if the
// key is not a direction key
func (arb *Arbiter) direction(key string) *hold {
	r := isRightKey(key)
	l := isLeftKey(key)
	if !r && !l {
		return nil
	}
	if arb.reverse {
		r, l = l, r
	}
	if r {
		return &arb.left
	}
	return &arb.right
}

// Handle an event. The screensaver argument indicates whether the screensaver
// is currently displayed.
//
// While the screensaver is displayed direction and volume presses are
// ignored and a select key does not select. The key release is still
// reported in the Result so that the screensaver can be dismissed.
func (arb *Arbiter) Handle(ev Event, now time.Time, screensaver bool) Result {
	switch ev := ev.(type) {
	case EventQuit:
		return Result{Action: ActionEscape}

	case EventMouseButton:
		if !ev.Down && !screensaver {
			return Result{Action: ActionSelect}
		}

	case EventKeyboard:
		if ev.Repeat {
			return Result{}
		}
		if ev.Down {
			return arb.press(ev.Key, now, screensaver)
		}
		return arb.release(ev.Key, screensaver)
	}

	return Result{}
}

func (arb *Arbiter) press(key string, now time.Time, screensaver bool) Result {
	if screensaver {
		return Result{}
	}

	if h := arb.direction(key); h != nil {
		h.held = true
		h.due = now
		return Result{}
	}

	if arb.volumeKeys {
		switch key {
		case KeyUp:
			return Result{Action: ActionVolumeUp}
		case KeyDown:
			return Result{Action: ActionVolumeDown}
		}
	}

	return Result{}
}

func (arb *Arbiter) release(key string, screensaver bool) Result {
	res := Result{Release: true}

	switch {
	case key == KeyEscape:
		res.Action = ActionEscape
	case IsSelectKey(key):
		if !screensaver {
			res.Action = ActionSelect
		}
	default:
		if h := arb.direction(key); h != nil {
			h.held = false
		}
	}

	return res
}

// Pulse returns the direction in which the carousel should be pulsed. Returns
// carousel.None if no held direction is due a pulse. If both directions are
// held then left takes priority.
func (arb *Arbiter) Pulse(now time.Time) carousel.Direction {
	if arb.left.held && !now.Before(arb.left.due) {
		arb.left.due = now.Add(RepeatInterval)
		return carousel.Left
	}
	if arb.right.held && !now.Before(arb.right.due) {
		arb.right.due = now.Add(RepeatInterval)
		return carousel.Right
	}
	return carousel.None
}

// Held returns true if the direction is held down.
func (arb *Arbiter) Held(dir carousel.Direction) bool {
	switch dir {
	case carousel.Left:
		return arb.left.held
	case carousel.Right:
		return arb.right.held
	}
	return false
}

// Reset forgets all held directions.
func (arb *Arbiter) Reset() {
	arb.left = hold{}
	arb.right = hold{}
}
