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

// Package sdlvga is a display backend that shows the framebuffer in an SDL
// window. It also implements input.Poller for the keyboard of that window.
//
// All functions must be called from the main thread.
package sdlvga

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/x86launcher/x86launcher/assert"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/display"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/input"
)

const windowTitle = "x86launcher"

// SDLVGA implements the display.Backend and input.Poller interfaces.
type SDLVGA struct {
	*display.Framebuffer

	scale int32

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// video memory converted to RGBA
	pixels []byte
	width  int32
	height int32

	// keys decoded from events but not yet returned by Poll()
	pending []input.Key

	// the goroutine that created the window
	owner assert.Owner
}

// NewSDLVGA is the preferred method of initialisation for the SDLVGA type.
// The window remains hidden until a graphics mode is set.
func NewSDLVGA(windowKB int, scale int) (*SDLVGA, error) {
	if scale < 1 {
		scale = 1
	}

	vga := &SDLVGA{
		Framebuffer: display.NewFramebuffer("SDL VGA", windowKB, true),
		scale:       int32(scale),
		owner:       assert.NewOwner(),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(faults.HardwareError, err)
	}

	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	vga.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(faults.HardwareError, err)
	}

	vga.renderer, err = sdl.CreateRenderer(vga.window, -1, uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		vga.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(faults.HardwareError, err)
	}

	return vga, nil
}

// SetMode implements the display.Backend interface. The window is resized
// to the mode and shown.
func (vga *SDLVGA) SetMode(number int) (display.ModeInfo, error) {
	vga.owner.Check("sdlvga")
	mi, err := vga.Framebuffer.SetMode(number)
	if err != nil {
		return mi, err
	}

	if vga.texture != nil {
		vga.texture.Destroy()
		vga.texture = nil
	}

	vga.width = int32(mi.Width)
	vga.height = int32(mi.Height)
	vga.pixels = make([]byte, mi.Width*mi.Height*4)

	vga.texture, err = vga.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), vga.width, vga.height)
	if err != nil {
		return display.ModeInfo{}, curated.Errorf(faults.HardwareError, err)
	}

	vga.window.SetSize(vga.width*vga.scale, vga.height*vga.scale)
	if err := vga.renderer.SetScale(float32(vga.scale), float32(vga.scale)); err != nil {
		return display.ModeInfo{}, curated.Errorf(faults.HardwareError, err)
	}
	vga.window.Show()

	return mi, nil
}

// TextMode implements the display.Backend interface. The window is hidden.
func (vga *SDLVGA) TextMode() error {
	vga.owner.Check("sdlvga")
	vga.window.Hide()
	return vga.Framebuffer.TextMode()
}

// Close implements the display.Backend interface.
func (vga *SDLVGA) Close() error {
	vga.owner.Check("sdlvga")
	if vga.texture != nil {
		vga.texture.Destroy()
	}
	if err := vga.renderer.Destroy(); err != nil {
		return curated.Errorf(faults.HardwareError, err)
	}
	if err := vga.window.Destroy(); err != nil {
		return curated.Errorf(faults.HardwareError, err)
	}
	sdl.Quit()
	return nil
}

// render video memory to the window
func (vga *SDLVGA) render() error {
	if vga.texture == nil || !vga.RGBA(vga.pixels) {
		return nil
	}

	dst, pitch, err := vga.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(faults.HardwareError, err)
	}
	rowBytes := int(vga.width) * 4
	for y := 0; y < int(vga.height); y++ {
		copy(dst[y*pitch:y*pitch+rowBytes], vga.pixels[y*rowBytes:(y+1)*rowBytes])
	}
	vga.texture.Unlock()

	if err := vga.renderer.Copy(vga.texture, nil, nil); err != nil {
		return curated.Errorf(faults.HardwareError, err)
	}
	vga.renderer.Present()

	return nil
}

// Poll implements the input.Poller interface. Pending window events are
// serviced and the window is redrawn.
func (vga *SDLVGA) Poll() (input.Key, error) {
	vga.owner.Check("sdlvga")
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			vga.pending = append(vga.pending, input.Quit)
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
				if k := translate(ev.Keysym.Sym); k != input.None {
					vga.pending = append(vga.pending, k)
				}
			}
		}
	}

	if err := vga.render(); err != nil {
		return input.None, err
	}

	if len(vga.pending) == 0 {
		return input.None, nil
	}

	k := vga.pending[0]
	vga.pending = vga.pending[1:]
	return k, nil
}

func translate(sym sdl.Keycode) input.Key {
	switch sym {
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		return input.Select
	case sdl.K_ESCAPE:
		return input.Cancel
	case sdl.K_TAB:
		return input.Switch
	case sdl.K_UP:
		return input.Up
	case sdl.K_DOWN:
		return input.Down
	case sdl.K_LEFT:
		return input.Left
	case sdl.K_RIGHT:
		return input.Right
	case sdl.K_PAGEUP:
		return input.PageUp
	case sdl.K_PAGEDOWN:
		return input.PageDown
	case sdl.K_SPACE:
		return input.Toggle
	case sdl.K_q:
		return input.Quit
	case sdl.K_f:
		return input.Filter
	case sdl.K_h:
		return input.Help
	}
	return input.None
}
