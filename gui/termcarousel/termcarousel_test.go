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

package termcarousel_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/bmp"

	"github.com/jetsetilly/marquee/carousel"
	"github.com/jetsetilly/marquee/carousel/layout"
	"github.com/jetsetilly/marquee/catalog"
	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/gui/termcarousel"
	"github.com/jetsetilly/marquee/paths"
	"github.com/jetsetilly/marquee/sample"
	"github.com/jetsetilly/marquee/test"
	"github.com/jetsetilly/marquee/userinput"
)

func writeBMP(t *testing.T, dir string, name string, col color.Color) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, col)
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	test.DemandSuccess(t, err)
	defer f.Close()
	test.DemandSuccess(t, bmp.Encode(f, img))
}

func resources(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	paths.SetResourceDir(dir)
	t.Cleanup(func() { paths.SetResourceDir("") })

	writeBMP(t, dir, gui.BackgroundImage, color.RGBA{R: 0, G: 0, B: 64, A: 255})
	writeBMP(t, dir, gui.ScreensaverImage, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	writeBMP(t, dir, "galaxian.bmp", color.RGBA{R: 255, G: 0, B: 0, A: 255})
}

func newDisplay(t *testing.T) (*termcarousel.TermCarousel, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	scr, err := termcarousel.NewTermCarousel(screen, false)
	test.DemandSuccess(t, err)
	t.Cleanup(scr.Destroy)
	screen.SetSize(80, 24)

	return scr, screen
}

// wait for events to arrive from the event goroutine
func poll(scr *termcarousel.TermCarousel, n int) []userinput.Event {
	var events []userinput.Event
	deadline := time.Now().Add(time.Second)
	for len(events) < n && time.Now().Before(deadline) {
		events = append(events, scr.Poll()...)
		time.Sleep(time.Millisecond)
	}
	return events
}

func TestMissingResources(t *testing.T) {
	paths.SetResourceDir(t.TempDir())
	defer paths.SetResourceDir("")

	_, err := termcarousel.NewTermCarousel(tcell.NewSimulationScreen("UTF-8"), false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gui.ResourceFailed))
}

func TestSize(t *testing.T) {
	resources(t)
	scr, _ := newDisplay(t)

	w, h := scr.Size()
	test.ExpectEquality(t, w, 80)
	test.ExpectEquality(t, h, 48)
}

func TestLoad(t *testing.T) {
	resources(t)
	scr, _ := newDisplay(t)

	var loader carousel.Loader = scr
	res, err := loader.Load(catalog.Card{Image: "galaxian.bmp"})
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, res, nil)
	res.Release()

	_, err = loader.Load(catalog.Card{Image: "missing.bmp"})
	test.ExpectSuccess(t, curated.Is(err, gui.ResourceFailed))
}

func TestRender(t *testing.T) {
	resources(t)
	scr, screen := newDisplay(t)

	card := catalog.Card{Image: "galaxian.bmp", ROM: "galaxian"}
	res, err := scr.Load(card)
	test.DemandSuccess(t, err)

	w, h := scr.Size()
	rects := layout.Positions(w, h, 3, 0)
	slots := []carousel.Slot{{}, {Card: card, Resource: res}, {}}

	test.ExpectSuccess(t, scr.Render(gui.Frame{
		Slots: slots,
		Rects: rects,
		Order: layout.RenderOrder(rects),
	}))

	// the centre of the screen is covered by the centre card
	r, _, _, _ := screen.GetContent(40, 12)
	test.ExpectEquality(t, r, '▀')

	// the label is printed under the card
	row := (rects[1].Y + rects[1].H) / 2
	x := rects[1].X + rects[1].W/2 - len("galaxian")/2
	r, _, _, _ = screen.GetContent(x, row)
	test.ExpectEquality(t, r, 'g')

	test.ExpectSuccess(t, scr.Render(gui.Frame{
		Slots:         slots,
		Rects:         rects,
		Order:         layout.RenderOrder(rects),
		Screensaver:   true,
		ScreensaverAt: image.Pt(0, 0),
	}))
	r, _, _, _ = screen.GetContent(x, row)
	test.ExpectEquality(t, r, '▀')
}

func TestKeyEvents(t *testing.T) {
	resources(t)
	scr, screen := newDisplay(t)

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	events := poll(scr, 1)
	test.DemandEquality(t, len(events), 1)
	test.ExpectEquality(t, events[0].(userinput.EventKeyboard).Key, userinput.KeyRight)
	test.ExpectEquality(t, events[0].(userinput.EventKeyboard).Down, true)

	// release is sent on the next poll
	events = scr.Poll()
	test.DemandEquality(t, len(events), 1)
	test.ExpectEquality(t, events[0].(userinput.EventKeyboard).Key, userinput.KeyRight)
	test.ExpectEquality(t, events[0].(userinput.EventKeyboard).Down, false)

	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	events = poll(scr, 1)
	test.DemandEquality(t, len(events), 1)
	test.ExpectEquality(t, userinput.IsSelectKey(events[0].(userinput.EventKeyboard).Key), true)

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	events = poll(scr, 2)
	test.DemandEquality(t, len(events), 2)
	_, ok := events[1].(userinput.EventQuit)
	test.ExpectEquality(t, ok, true)
}

func TestSampleBuffer(t *testing.T) {
	test.ExpectEquality(t, termcarousel.SampleBuffer(nil) == nil, true)

	smp := &sample.Sample{SampleRate: 44100, Channels: 1, Data: make([]int16, 441)}
	buf := termcarousel.SampleBuffer(smp)
	test.DemandEquality(t, buf != nil, true)
	test.ExpectEquality(t, buf.Len(), 441)

	smp = &sample.Sample{SampleRate: 44100, Channels: 2, Data: make([]int16, 882)}
	buf = termcarousel.SampleBuffer(smp)
	test.ExpectEquality(t, buf.Len(), 441)
}
