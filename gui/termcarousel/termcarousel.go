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

package termcarousel

import (
	"image"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/bmp"

	"github.com/jetsetilly/marquee/carousel"
	"github.com/jetsetilly/marquee/catalog"
	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/gui"
	"github.com/jetsetilly/marquee/logger"
	"github.com/jetsetilly/marquee/paths"
	"github.com/jetsetilly/marquee/sample"
	"github.com/jetsetilly/marquee/userinput"
)

const logTag = "term"

// the size of the screensaver image in pixels. much smaller than the SDL
// version because the pixels are much bigger
const screensaverSize = 16

// picture is a card image in the visible window. Implements the
// carousel.Resource interface.
type picture struct {
	img image.Image
}

// Release implements the carousel.Resource interface.
func (p picture) Release() {}

// TermCarousel is the terminal implementation of the gui.Display interface.
type TermCarousel struct {
	screen tcell.Screen
	cnv    canvas

	background  image.Image
	screensaver image.Image
	patience    image.Image

	// events are read from the screen in a separate goroutine. see Poll()
	events chan tcell.Event

	// keys pressed in the previous call to Poll(). a release event is sent
	// for each key on the next call to Poll()
	pressed []string

	// mouse button state from the previous mouse event
	buttons tcell.ButtonMask

	audio gui.Audio
	beep  *beepAudio

	closed sync.Once
}

// NewTermCarousel is the preferred method of initialisation for the
// TermCarousel type. The screen should not have been initialised. Audio is
// played through the beep speaker if withAudio is true.
//
// The background and screensaver images must exist.
func NewTermCarousel(screen tcell.Screen, withAudio bool) (*TermCarousel, error) {
	err := screen.Init()
	if err != nil {
		return nil, curated.Errorf(gui.DisplayFailed, err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	scr := &TermCarousel{
		screen: screen,
		events: make(chan tcell.Event, 64),
		audio:  gui.NewSilent(),
	}

	scr.background, err = loadImage(gui.BackgroundImage)
	if err != nil {
		scr.Destroy()
		return nil, err
	}

	scr.screensaver, err = loadImage(gui.ScreensaverImage)
	if err != nil {
		scr.Destroy()
		return nil, err
	}

	scr.patience, err = loadImage(gui.PatienceImage)
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
	}

	if withAudio {
		scr.beep, err = newBeepAudio(gui.LoadSound(gui.ClickSound), gui.LoadSound(gui.BlipSound))
		if err != nil {
			logger.Log(logger.Allow, logTag, err)
		} else {
			scr.audio = scr.beep
		}
	}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(scr.events)
				return
			}
			scr.events <- ev
		}
	}()

	return scr, nil
}

func loadImage(filename string) (image.Image, error) {
	f, err := os.Open(paths.ResourcePath(filename))
	if err != nil {
		return nil, curated.Errorf(gui.ResourceFailed, filename, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, curated.Errorf(gui.ResourceFailed, filename, err)
	}

	return img, nil
}

// Load implements the carousel.Loader interface.
func (scr *TermCarousel) Load(card catalog.Card) (carousel.Resource, error) {
	img, err := loadImage(card.Image)
	if err != nil {
		return nil, err
	}
	return picture{img: img}, nil
}

// Size implements the gui.Display interface.
func (scr *TermCarousel) Size() (int, int) {
	w, h := scr.screen.Size()
	return w, h * 2
}

// Audio implements the gui.Display interface.
func (scr *TermCarousel) Audio() gui.Audio {
	return scr.audio
}

// Destroy implements the gui.Display interface.
func (scr *TermCarousel) Destroy() {
	scr.closed.Do(func() {
		if scr.beep != nil {
			scr.beep.close()
		}
		scr.screen.Fini()
	})
}

func cardLabel(card catalog.Card) string {
	switch {
	case card.Back:
		return "back"
	case card.Opens != "":
		return card.Opens
	}
	return card.ROM
}

// Render implements the gui.Display interface.
func (scr *TermCarousel) Render(frame gui.Frame) error {
	w, h := scr.Size()
	scr.cnv.resize(w, h)
	scr.screen.Clear()

	if frame.Screensaver {
		scr.cnv.fill(tcell.ColorBlack)
		scale := func(v int) int {
			return v * screensaverSize / gui.ScreensaverSize
		}
		at := image.Pt(scale(frame.ScreensaverAt.X), scale(frame.ScreensaverAt.Y))
		scr.cnv.draw(scr.screensaver, image.Rectangle{Min: at, Max: at.Add(image.Pt(screensaverSize, screensaverSize))})
		scr.cnv.show(scr.screen)
		scr.screen.Show()
		return nil
	}

	scr.cnv.draw(scr.background, image.Rect(0, 0, w, h))

	top := -1
	for _, i := range frame.Order {
		r := frame.Rects[i]
		if r.Empty() {
			continue
		}
		p, ok := frame.Slots[i].Resource.(picture)
		if !ok {
			continue
		}
		scr.cnv.draw(p.img, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H))
		top = i
	}

	if frame.Patience && scr.patience != nil {
		scr.cnv.draw(scr.patience, image.Rect(0, 0, w, h))
	}

	scr.cnv.show(scr.screen)

	// the label of the card drawn last is printed underneath it
	if top >= 0 && !frame.Patience {
		r := frame.Rects[top]
		label := cardLabel(frame.Slots[top].Card)
		row := (r.Y + r.H) / 2
		if row >= h/2 {
			row = h/2 - 1
		}
		scr.text(r.X+r.W/2-len(label)/2, row, label)
	}

	if frame.ShowVolume {
		const barLength = 20
		n := frame.Volume * barLength / sample.MaxVolume
		bar := "volume [" + strings.Repeat("#", n) + strings.Repeat(" ", barLength-n) + "]"
		scr.text(w/2-len(bar)/2, h/2-1, bar)
	}

	scr.screen.Show()

	return nil
}

func (scr *TermCarousel) text(x int, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range s {
		scr.screen.SetContent(x+i, y, r, nil, style)
	}
}

// translate tcell keys to the key names used by the userinput package
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return userinput.KeyLeft
	case tcell.KeyRight:
		return userinput.KeyRight
	case tcell.KeyUp:
		return userinput.KeyUp
	case tcell.KeyDown:
		return userinput.KeyDown
	case tcell.KeyEscape:
		return userinput.KeyEscape
	case tcell.KeyEnter:
		return userinput.KeyReturn
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "Space"
		}
		return strings.ToUpper(string(ev.Rune()))
	}
	return ""
}

// Poll implements the gui.Display interface.
func (scr *TermCarousel) Poll() []userinput.Event {
	var events []userinput.Event

	for _, k := range scr.pressed {
		events = append(events, userinput.EventKeyboard{Key: k, Down: false})
	}
	scr.pressed = scr.pressed[:0]

	for {
		select {
		case ev, ok := <-scr.events:
			if !ok {
				return append(events, userinput.EventQuit{})
			}
			events = scr.translate(events, ev)
		default:
			return events
		}
	}
}

func (scr *TermCarousel) translate(events []userinput.Event, ev tcell.Event) []userinput.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return append(events, userinput.EventQuit{})
		}
		k := keyName(ev)
		if k == "" {
			return events
		}
		scr.pressed = append(scr.pressed, k)
		return append(events, userinput.EventKeyboard{Key: k, Down: true})

	case *tcell.EventMouse:
		buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
		changed := buttons ^ scr.buttons
		scr.buttons = buttons
		for _, b := range []struct {
			mask   tcell.ButtonMask
			button userinput.MouseButton
		}{
			{tcell.Button1, userinput.MouseButtonLeft},
			{tcell.Button2, userinput.MouseButtonRight},
			{tcell.Button3, userinput.MouseButtonMiddle},
		} {
			if changed&b.mask == b.mask {
				events = append(events, userinput.EventMouseButton{
					Button: b.button,
					Down:   buttons&b.mask == b.mask,
				})
			}
		}

	case *tcell.EventResize:
		scr.screen.Sync()
	}

	return events
}
