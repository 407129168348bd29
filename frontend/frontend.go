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

package frontend

import (
	"context"
	"image"
	"math/rand"
	"time"

	"github.com/jetsetilly/marquee/carousel"
	"github.com/jetsetilly/marquee/carousel/layout"
	"github.com/jetsetilly/marquee/catalog"
	"github.com/jetsetilly/marquee/config"
	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/launcher"
	"github.com/jetsetilly/marquee/logger"
	"github.com/jetsetilly/marquee/performance"
	"github.com/jetsetilly/marquee/performance/limiter"
	"github.com/jetsetilly/marquee/screensaver"
	"github.com/jetsetilly/marquee/selection"
	"github.com/jetsetilly/marquee/userinput"
)

// Sentinel error patterns.
const (
	StartFailed = "frontend: %v"
	TickFailed  = "frontend: %v"
)

const logTag = "frontend"

// the amount the volume changes with each press of a volume key
const volumeStep = 10

// the length of time the volume bar is shown after a volume change
const volumeDisplay = 2 * time.Second

// Outcome of a tick or of the complete loop.
type Outcome int

// List of valid Outcome values.
const (
	Continue Outcome = iota
	Launched
	Escaped
)

func (o Outcome) String() string {
	switch o {
	case Launched:
		return "launched"
	case Escaped:
		return "escaped"
	}
	return "continue"
}

// Limiter is used to pace the loop. Implemented by limiter.FpsLimiter.
type Limiter interface {
	Wait()
}

// Options for the Frontend. Only the launcher is required.
type Options struct {
	// location of the persisted selection. the selection is not persisted if
	// this is empty
	StatePath string

	Launcher launcher.Launcher

	// defaults to time.Now
	Now func() time.Time

	// defaults to a limiter.FpsLimiter at the configured fps
	Limiter Limiter

	// source of random numbers for the screensaver position
	Rand *rand.Rand
}

// Frontend is the carousel loop.
type Frontend struct {
	cfg     *config.Config
	cat     *catalog.Catalog
	display gui.Display
	audio   gui.Audio
	opts    Options

	car   *carousel.Carousel
	arb   *userinput.Arbiter
	saver *screensaver.Timer

	// the limiter created by NewFrontend(). nil if a limiter was provided
	// in the options
	fps *limiter.FpsLimiter

	width  int
	height int

	dirty       bool
	saverAt     image.Point
	volumeUntil time.Time
	patience    bool

	// the command line of the launched card
	command string

	// frame count for the session and when the session started
	frames int
	start  time.Time
}

// NewFrontend is the preferred method of initialisation for the Frontend
// type.
func NewFrontend(cfg *config.Config, cat *catalog.Catalog, display gui.Display, opts Options) (*Frontend, error) {
	if opts.Launcher == nil {
		return nil, curated.Errorf(StartFailed, "no launcher")
	}

	fe := &Frontend{
		cfg:     cfg,
		cat:     cat,
		display: display,
		audio:   display.Audio(),
		opts:    opts,
		arb:     userinput.NewArbiter(cfg.ReverseKeys.Value(), cfg.VolumeControl()),
	}

	if fe.opts.Now == nil {
		fe.opts.Now = time.Now
	}
	if fe.opts.Rand == nil {
		fe.opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if fe.opts.Limiter == nil {
		fe.fps = limiter.NewFPSLimiter(cfg.FPS.Value())
		fe.opts.Limiter = fe.fps
	}

	fe.width, fe.height = display.Size()

	var err error
	fe.car, err = carousel.NewCarousel(display, cfg.Slots(), layout.Spacing(fe.width, cfg.Slots()),
		cfg.FPS.Value(), cfg.Speed.Value())
	if err != nil {
		fe.Close()
		return nil, curated.Errorf(StartFailed, err)
	}

	return fe, nil
}

// Close releases the resources held by the frontend. The display is not
// destroyed.
func (fe *Frontend) Close() {
	if fe.car != nil {
		fe.car.Close()
	}
	if fe.fps != nil {
		fe.fps.Stop()
		fe.fps = nil
	}
}

// Carousel returns the carousel state machine.
func (fe *Frontend) Carousel() *carousel.Carousel {
	return fe.car
}

// Screensaver returns the screensaver timer.
func (fe *Frontend) Screensaver() *screensaver.Timer {
	return fe.saver
}

// Command returns the command line of the most recently launched card.
func (fe *Frontend) Command() string {
	return fe.command
}

// Start a session. The carousel is positioned on the persisted selection in
// the root list.
func (fe *Frontend) Start() error {
	idx := 0
	if fe.opts.StatePath != "" {
		idx = selection.Load(fe.opts.StatePath)
	}
	return fe.startAt(fe.cat.Root, idx)
}

func (fe *Frontend) startAt(list *catalog.List, idx int) error {
	if err := fe.car.StartAt(list, idx); err != nil {
		return curated.Errorf(StartFailed, err)
	}

	now := fe.opts.Now()
	fe.saver = screensaver.NewTimer(fe.cfg.IdleTimeout(), now)
	fe.arb.Reset()
	fe.patience = false
	fe.volumeUntil = time.Time{}
	fe.dirty = true
	fe.frames = 0
	fe.start = now

	logger.Logf(logger.Allow, logTag, "starting at %s", fe.car.SelectedCard())

	return nil
}

// Run the loop until a card is launched and the launcher does not require a
// restart, or until escape. The persisted selection is updated whenever a
// card is launched.
func (fe *Frontend) Run(ctx context.Context) (Outcome, error) {
	if err := fe.Start(); err != nil {
		return Escaped, err
	}

	for {
		outcome, err := fe.Tick()
		if err != nil {
			return outcome, err
		}

		if outcome == Continue {
			if err := ctx.Err(); err != nil {
				return Escaped, nil
			}
			fe.opts.Limiter.Wait()
			continue
		}

		fe.logFPS()

		if outcome == Escaped {
			return Escaped, nil
		}

		restart, err := fe.opts.Launcher.Launch(ctx, fe.command)
		if err != nil {
			return Launched, err
		}
		if !restart {
			return Launched, nil
		}

		// the display might have been disturbed by the emulator
		if err := fe.startAt(fe.car.List(), fe.car.Selected()); err != nil {
			return Escaped, err
		}
	}
}

func (fe *Frontend) logFPS() {
	fps, accuracy := performance.CalcFPS(fe.frames, fe.opts.Now().Sub(fe.start), fe.cfg.FPS.Value())
	logger.Logf(logger.Allow, logTag, "%d frames: %.1f fps (%.0f%%)", fe.frames, fps, accuracy)
}
