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
	"image"
	"time"

	"github.com/jetsetilly/marquee/carousel"
	"github.com/jetsetilly/marquee/carousel/layout"
	"github.com/jetsetilly/marquee/catalog"
	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/logger"
	"github.com/jetsetilly/marquee/selection"
	"github.com/jetsetilly/marquee/userinput"
)

// Tick runs a single iteration of the loop. Start() must have been called.
func (fe *Frontend) Tick() (Outcome, error) {
	now := fe.opts.Now()
	fe.frames++

	// the carousel spacing follows the size of the display
	if w, h := fe.display.Size(); w != fe.width || h != fe.height {
		fe.width, fe.height = w, h
		fe.car.SetSpacing(layout.Spacing(w, fe.car.NumSlots()))
		fe.dirty = true
	}

	if fe.car.Moving() {
		shifted, err := fe.car.Tick()
		if err != nil {
			return Escaped, curated.Errorf(TickFailed, err)
		}
		if shifted && fe.cfg.Click.Value() {
			fe.audio.Click()
		}
		fe.dirty = true
	}

	if !fe.volumeUntil.IsZero() && !now.Before(fe.volumeUntil) {
		fe.volumeUntil = time.Time{}
		fe.dirty = true
	}

	if fe.dirty {
		if err := fe.render(); err != nil {
			return Escaped, curated.Errorf(TickFailed, err)
		}
		fe.dirty = false
	}

	if fe.saver.Tick(now) {
		if w, h := fe.width-gui.ScreensaverSize, fe.height-gui.ScreensaverSize; w > 0 && h > 0 {
			fe.saverAt = image.Pt(fe.opts.Rand.Intn(w), fe.opts.Rand.Intn(h))
		} else {
			fe.saverAt = image.Point{}
		}
		fe.audio.Pause()
		fe.dirty = true
	}

	for _, ev := range fe.display.Poll() {
		res := fe.arb.Handle(ev, now, fe.saver.Active())

		if res.Release && fe.saver.Reset(now) {
			fe.dirty = true
		}

		switch res.Action {
		case userinput.ActionEscape:
			logger.Log(logger.Allow, logTag, "escape")
			return Escaped, nil

		case userinput.ActionSelect:
			outcome, err := fe.selectCard()
			if err != nil || outcome != Continue {
				return outcome, err
			}

		case userinput.ActionVolumeUp:
			fe.changeVolume(volumeStep, now)

		case userinput.ActionVolumeDown:
			fe.changeVolume(-volumeStep, now)
		}
	}

	if dir := fe.arb.Pulse(now); dir != carousel.None {
		fe.car.Pulse(dir)
		fe.dirty = true
	}

	return Continue, nil
}

func (fe *Frontend) render() error {
	rects := layout.Positions(fe.width, fe.height, fe.car.NumSlots(), fe.car.Offset())
	return fe.display.Render(gui.Frame{
		Slots:         fe.car.Slots(),
		Rects:         rects,
		Order:         layout.RenderOrder(rects),
		Screensaver:   fe.saver.Active(),
		ScreensaverAt: fe.saverAt,
		Patience:      fe.patience,
		ShowVolume:    !fe.volumeUntil.IsZero(),
		Volume:        fe.audio.Volume(),
	})
}

func (fe *Frontend) changeVolume(step int, now time.Time) {
	fe.audio.SetVolume(fe.audio.Volume() + step)
	fe.audio.Blip()
	fe.volumeUntil = now.Add(volumeDisplay)
	fe.dirty = true
}

// selectCard acts on the card in the centre of the carousel. genre and back
// cards change the list shown by the carousel. any other card is launched
func (fe *Frontend) selectCard() (Outcome, error) {
	card := fe.car.SelectedCard()
	list := fe.car.List()

	switch {
	case card.Back:
		idx := fe.cat.Root.Find(func(c catalog.Card) bool {
			return c.Opens == list.Name
		})
		if idx < 0 {
			idx = 0
		}
		return Continue, fe.changeList(fe.cat.Root, idx)

	case card.Opens != "":
		genre, ok := fe.cat.List(card.Opens)
		if !ok {
			return Escaped, curated.Errorf(TickFailed, curated.Errorf(catalog.UnknownGenre, card.Opens))
		}
		return Continue, fe.changeList(genre, 0)
	}

	cmd, err := fe.cat.Command(card)
	if err != nil {
		return Escaped, curated.Errorf(TickFailed, err)
	}
	fe.command = cmd

	fe.saveSelection(list)

	logger.Logf(logger.Allow, logTag, "launching %s", card)

	fe.audio.Pause()

	if card.Patience {
		fe.patience = true
		if err := fe.render(); err != nil {
			return Escaped, curated.Errorf(TickFailed, err)
		}
	}

	return Launched, nil
}

func (fe *Frontend) changeList(list *catalog.List, idx int) error {
	if err := fe.car.StartAt(list, idx); err != nil {
		return curated.Errorf(TickFailed, err)
	}
	fe.arb.Reset()
	fe.dirty = true
	return nil
}

// the persisted index is always an index into the root list
func (fe *Frontend) saveSelection(list *catalog.List) {
	if fe.opts.StatePath == "" {
		return
	}

	idx := fe.car.Selected()
	if list.Name != catalog.RootList {
		idx = fe.cat.Root.Find(func(c catalog.Card) bool {
			return c.Opens == list.Name
		})
		if idx < 0 {
			idx = 0
		}
	}

	if err := selection.Save(fe.opts.StatePath, idx); err != nil {
		logger.Log(logger.Allow, logTag, err)
	}
}
