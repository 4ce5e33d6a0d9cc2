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


package ebitenvga

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/x86launcher/x86launcher/input"
	"github.com/x86launcher/x86launcher/test"
)

func TestTranslate(t *testing.T) {
	test.ExpectEquality(t, translate(ebiten.KeyEnter), input.Select)
	test.ExpectEquality(t, translate(ebiten.KeyEscape), input.Cancel)
	test.ExpectEquality(t, translate(ebiten.KeyPageDown), input.PageDown)
	test.ExpectEquality(t, translate(ebiten.KeyQ), input.Quit)
	test.ExpectEquality(t, translate(ebiten.KeyZ), input.None)
}

func TestKeyQueue(t *testing.T) {
	vga := NewEbitenVGA(64, 1)

	k, err := vga.Poll()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, k, input.None)

	// keys beyond the queue length are dropped
	for i := 0; i < keyQueueLen+5; i++ {
		vga.queue(input.Down)
	}
	vga.queue(input.Up)

	var n int
	for {
		k, _ := vga.Poll()
		if k == input.None {
			break
		}
		test.ExpectEquality(t, k, input.Down)
		n++
	}
	test.ExpectEquality(t, n, keyQueueLen)
}
