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

package palette

import "github.com/x86launcher/x86launcher/bitmap"

// Indexes of the fixed UI colours.
const (
	UIBlack = iota
	UIWhite
	UILightGrey
	UIMidGrey
	UIDarkGrey
	UIRed
	UIGreen
	UIYellow
	UIBlue
)

// UIColors are set at the start of the reserved range by SetUI().
var UIColors = []bitmap.Color{
	UIBlack:     {R: 0x00, G: 0x00, B: 0x00},
	UIWhite:     {R: 0xfc, G: 0xfc, B: 0xfc},
	UILightGrey: {R: 0xb4, G: 0xb4, B: 0xb4},
	UIMidGrey:   {R: 0x80, G: 0x80, B: 0x80},
	UIDarkGrey:  {R: 0x40, G: 0x40, B: 0x40},
	UIRed:       {R: 0xd0, G: 0x20, B: 0x20},
	UIGreen:     {R: 0x20, G: 0xb0, B: 0x40},
	UIYellow:    {R: 0xf0, G: 0xd0, B: 0x30},
	UIBlue:      {R: 0x28, G: 0x48, B: 0xc0},
}
