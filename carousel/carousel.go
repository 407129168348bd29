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

package carousel

import (
	"fmt"

	"github.com/jetsetilly/marquee/catalog"
	"github.com/jetsetilly/marquee/curated"
	"github.com/jetsetilly/marquee/logger"
)

// Sentinel error patterns.
const (
	ImageLoadFailed = "carousel: image load failed: %v"
	BadSlotCount    = "carousel: slot count must be odd and at least three (%d)"
)

const logTag = "carousel"

// MaxSpeed is the upper limit of the carousel momentum.
const MaxSpeed = 10

// Direction of carousel motion.
type Direction int

// List of valid Direction values. Moving left advances the window through the
// catalog list.
const (
	Left  Direction = -1
	None  Direction = 0
	Right Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Resource is a loaded card image.
type Resource interface {
	// Release is called when the resource leaves the visible window
	Release()
}

// Loader loads the image for a card. Implementations are provided by the
// display.
type Loader interface {
	Load(card catalog.Card) (Resource, error)
}

// Slot is a single visible card.
type Slot struct {
	Card     catalog.Card
	Resource Resource
}

// Carousel is the state machine for the rotating carousel. It should be
// created with NewCarousel() and then positioned with StartAt().
type Carousel struct {
	loader Loader

	list     *catalog.List
	slots    []Slot
	numSlots int

	// catalog index of the first and last slots
	low  int
	high int

	// distance between slots and the number of ticks per second. the
	// distance moved per tick is proportional to spacing/fps
	spacing      int
	fps          int
	initialSpeed int

	dir    Direction
	offset int
	speed  int
}

// NewCarousel is the preferred method of initialisation for the Carousel
// type. The number of slots includes the two hidden slots at either edge and
// must be odd and at least three.
func NewCarousel(loader Loader, numSlots int, spacing int, fps int, initialSpeed int) (*Carousel, error) {
	if numSlots < 3 || numSlots%2 == 0 {
		return nil, curated.Errorf(BadSlotCount, numSlots)
	}
	if fps < 1 {
		fps = 1
	}
	return &Carousel{
		loader:       loader,
		numSlots:     numSlots,
		slots:        make([]Slot, numSlots),
		spacing:      spacing,
		fps:          fps,
		initialSpeed: initialSpeed,
	}, nil
}

func (car *Carousel) String() string {
	return fmt.Sprintf("low=%d high=%d dir=%s offset=%d speed=%d", car.low, car.high, car.dir, car.offset, car.speed)
}

// StartAt loads the window of slots from the list, centred on the selected
// index. Any resources already in the window are released and any motion is
// stopped. An index outside the length of the list is wrapped.
func (car *Carousel) StartAt(list *catalog.List, selected int) error {
	car.release()

	car.list = list
	car.dir = None
	car.offset = 0
	car.speed = 0

	car.low = list.Wrap(selected - car.numSlots/2)
	car.high = list.Wrap(selected + car.numSlots/2)

	for i := range car.slots {
		if err := car.load(i, car.low+i); err != nil {
			return err
		}
	}

	logger.Logf(logger.Allow, logTag, "%s list started at %d", listName(list), list.Wrap(selected))

	return nil
}

func listName(list *catalog.List) string {
	if list.Name == catalog.RootList {
		return "root"
	}
	return list.Name
}

// load card at catalog index into the slot.
func (car *Carousel) load(slot int, index int) error {
	card := car.list.At(index)
	res, err := car.loader.Load(card)
	if err != nil {
		return curated.Errorf(ImageLoadFailed, err)
	}
	car.slots[slot] = Slot{Card: card, Resource: res}
	return nil
}

func (car *Carousel) release() {
	for i := range car.slots {
		if car.slots[i].Resource != nil {
			car.slots[i].Resource.Release()
		}
		car.slots[i] = Slot{}
	}
}

// Close releases all resources in the window.
func (car *Carousel) Close() {
	car.release()
}

// Pulse applies a single directional impulse. If the carousel is already
// moving in the same direction then the speed is increased. If it is moving
// in the opposite direction the speed is reduced to zero, so the current
// slide completes and the carousel stops. Otherwise the carousel starts
// moving in the direction.
func (car *Carousel) Pulse(dir Direction) {
	if dir == None {
		return
	}

	switch car.dir {
	case dir:
		if car.speed < MaxSpeed {
			car.speed++
		}
	case None:
		car.dir = dir
	default:
		car.speed = 0
	}
}

// Step returns the distance moved by a single tick.
func (car *Carousel) Step() int {
	s := car.spacing / car.fps * (car.initialSpeed + car.speed)
	if s < 1 {
		s = 1
	}
	return s
}

// Tick advances the carousel by one frame. Returns true if the window shifted
// by a card during the tick. An error is returned if the image for the
// incoming card cannot be loaded.
func (car *Carousel) Tick() (bool, error) {
	if car.dir == None {
		return false, nil
	}

	car.offset += int(car.dir) * car.Step()
	if car.offset < car.spacing && car.offset > -car.spacing {
		return false, nil
	}

	var err error
	switch car.dir {
	case Left:
		err = car.shiftLeft()
	case Right:
		err = car.shiftRight()
	}

	car.offset = 0
	if car.speed > 0 {
		car.speed--
	} else {
		car.dir = None
	}

	return true, err
}

// shiftLeft moves every card one slot to the left. the card in the first slot
// is released and the next card in the list is loaded into the last slot.
func (car *Carousel) shiftLeft() error {
	car.low = car.list.Wrap(car.low + 1)
	car.high = car.list.Wrap(car.high + 1)

	if car.slots[0].Resource != nil {
		car.slots[0].Resource.Release()
	}
	copy(car.slots, car.slots[1:])
	car.slots[car.numSlots-1] = Slot{}

	return car.load(car.numSlots-1, car.high)
}

// shiftRight moves every card one slot to the right. the card in the last
// slot is released and the previous card in the list is loaded into the first
// slot.
func (car *Carousel) shiftRight() error {
	car.low = car.list.Wrap(car.low - 1)
	car.high = car.list.Wrap(car.high - 1)

	if car.slots[car.numSlots-1].Resource != nil {
		car.slots[car.numSlots-1].Resource.Release()
	}
	copy(car.slots[1:], car.slots[:car.numSlots-1])
	car.slots[0] = Slot{}

	return car.load(0, car.low)
}

// Selected returns the catalog index of the card in the centre slot.
func (car *Carousel) Selected() int {
	i := car.low + car.numSlots/2
	if i < 0 {
		i = -i
	}
	return i % car.list.Len()
}

// SelectedCard returns the card in the centre slot.
func (car *Carousel) SelectedCard() catalog.Card {
	return car.list.At(car.Selected())
}

// List returns the list currently shown by the carousel.
func (car *Carousel) List() *catalog.List {
	return car.list
}

// Slots returns the visible window. The returned slice should not be
// modified.
func (car *Carousel) Slots() []Slot {
	return car.slots
}

// NumSlots returns the number of slots in the window, including the two
// hidden edge slots.
func (car *Carousel) NumSlots() int {
	return car.numSlots
}

// Low returns the catalog index of the first slot.
func (car *Carousel) Low() int {
	return car.low
}

// High returns the catalog index of the last slot.
func (car *Carousel) High() int {
	return car.high
}

// Offset returns the distance in pixels of the slots from their home
// position.
func (car *Carousel) Offset() int {
	return car.offset
}

// Direction returns the direction of motion.
func (car *Carousel) Direction() Direction {
	return car.dir
}

// Speed returns the current momentum. The speed is zero when the carousel
// will stop at the end of the current slide.
func (car *Carousel) Speed() int {
	return car.speed
}

// Moving returns true if the carousel is in motion.
func (car *Carousel) Moving() bool {
	return car.dir != None
}

// SetSpacing changes the slot spacing. Used when the window size changes.
func (car *Carousel) SetSpacing(spacing int) {
	car.spacing = spacing
}
