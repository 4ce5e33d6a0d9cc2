// This file is part of x86launcher.
//
// x86launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// x86launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with x86launcher.  If not, see <https://www.gnu.org/licenses/>.

// Package ebitenvga is a display backend that shows the framebuffer in an
// Ebitengine window. It also implements input.Poller for the keyboard of
// that window.
//
// The Ebitengine game loop runs in its own goroutine. The framebuffer is
// read by the loop once per frame.
package ebitenvga

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/x86launcher/x86launcher/display"
	"github.com/x86launcher/x86launcher/input"
)

const windowTitle = "x86launcher"

// number of key presses that can be queued before they are dropped
const keyQueueLen = 32

// EbitenVGA implements the display.Backend and input.Poller interfaces.
type EbitenVGA struct {
	*display.Framebuffer

	scale int

	crit    sync.Mutex
	running bool
	closing bool
	width   int
	height  int
	pixels  []byte
	window  *ebiten.Image

	keys  chan input.Key
	vsync chan struct{}
	done  chan struct{}
}

// NewEbitenVGA is the preferred method of initialisation for the EbitenVGA
// type. The window is opened when a graphics mode is set.
func NewEbitenVGA(windowKB int, scale int) *EbitenVGA {
	if scale < 1 {
		scale = 1
	}
	return &EbitenVGA{
		Framebuffer: display.NewFramebuffer("Ebitengine VGA", windowKB, true),
		scale:       scale,
		keys:        make(chan input.Key, keyQueueLen),
		vsync:       make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
}

// SetMode implements the display.Backend interface. The game loop is started
// on the first call and the function waits for the first frame to be drawn.
func (vga *EbitenVGA) SetMode(number int) (display.ModeInfo, error) {
	mi, err := vga.Framebuffer.SetMode(number)
	if err != nil {
		return mi, err
	}

	vga.crit.Lock()
	vga.width = mi.Width
	vga.height = mi.Height
	vga.pixels = make([]byte, mi.Width*mi.Height*4)
	if vga.window != nil {
		vga.window.Deallocate()
		vga.window = nil
	}
	start := !vga.running
	vga.running = true
	vga.crit.Unlock()

	ebiten.SetWindowSize(mi.Width*vga.scale, mi.Height*vga.scale)

	if start {
		ebiten.SetWindowTitle(windowTitle)
		ebiten.SetRunnableOnUnfocused(true)
		ebiten.SetVsyncEnabled(true)

		go func() {
			defer close(vga.done)
			_ = ebiten.RunGame(vga)
		}()

		<-vga.vsync
	}

	return mi, nil
}

// Close implements the display.Backend interface. The game loop is stopped.
func (vga *EbitenVGA) Close() error {
	vga.crit.Lock()
	running := vga.running
	vga.closing = true
	vga.crit.Unlock()

	if running {
		<-vga.done
	}
	return vga.Framebuffer.Close()
}

// Update implements the ebiten.Game interface.
func (vga *EbitenVGA) Update() error {
	vga.crit.Lock()
	closing := vga.closing
	vga.crit.Unlock()

	if closing {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() {
		vga.queue(input.Quit)
		return nil
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if t := translate(k); t != input.None {
			vga.queue(t)
		}
	}

	return nil
}

// queue a key press. the key is dropped if the queue is full
func (vga *EbitenVGA) queue(k input.Key) {
	select {
	case vga.keys <- k:
	default:
	}
}

// Draw implements the ebiten.Game interface.
func (vga *EbitenVGA) Draw(screen *ebiten.Image) {
	vga.crit.Lock()
	if vga.window == nil {
		vga.window = ebiten.NewImage(vga.width, vga.height)
	}
	if vga.RGBA(vga.pixels) {
		vga.window.WritePixels(vga.pixels)
	} else {
		vga.window.Clear()
	}
	vga.crit.Unlock()

	screen.DrawImage(vga.window, nil)

	select {
	case vga.vsync <- struct{}{}:
	default:
	}
}

// Layout implements the ebiten.Game interface.
func (vga *EbitenVGA) Layout(_, _ int) (int, int) {
	vga.crit.Lock()
	defer vga.crit.Unlock()
	return vga.width, vga.height
}

// Poll implements the input.Poller interface.
func (vga *EbitenVGA) Poll() (input.Key, error) {
	select {
	case k := <-vga.keys:
		return k, nil
	default:
		return input.None, nil
	}
}

func translate(k ebiten.Key) input.Key {
	switch k {
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return input.Select
	case ebiten.KeyEscape:
		return input.Cancel
	case ebiten.KeyTab:
		return input.Switch
	case ebiten.KeyArrowUp:
		return input.Up
	case ebiten.KeyArrowDown:
		return input.Down
	case ebiten.KeyArrowLeft:
		return input.Left
	case ebiten.KeyArrowRight:
		return input.Right
	case ebiten.KeyPageUp:
		return input.PageUp
	case ebiten.KeyPageDown:
		return input.PageDown
	case ebiten.KeySpace:
		return input.Toggle
	case ebiten.KeyQ:
		return input.Quit
	case ebiten.KeyF:
		return input.Filter
	case ebiten.KeyH:
		return input.Help
	}
	return input.None
}
