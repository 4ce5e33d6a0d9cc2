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

package environment_test

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/x86launcher/x86launcher/display/headless"
	"github.com/x86launcher/x86launcher/environment"
	"github.com/x86launcher/x86launcher/palette"
	"github.com/x86launcher/x86launcher/preferences"
	"github.com/x86launcher/x86launcher/test"
)

func TestEnvironment(t *testing.T) {
	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.DACWidth.Set(8))

	// backend can't switch DAC width
	hl := headless.NewHeadless(64, false)

	env, err := environment.NewEnvironment(prefs, hl)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, env.Surface.DACWidth(), 6)
	test.ExpectEquality(t, env.Palette.DACWidth(), 6)

	// UI colours have been sent to the backend
	test.ExpectEquality(t, hl.Palette()[palette.UIWhite], color.Color(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}))

	test.ExpectFailure(t, env.AllowLogging())
	test.ExpectSuccess(t, prefs.Verbose.Set(true))
	test.ExpectSuccess(t, env.AllowLogging())

	test.ExpectSuccess(t, env.Close())
}

func TestSwitchableDAC(t *testing.T) {
	prefs, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(prefs, headless.NewHeadless(64, true))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, env.Palette.DACWidth(), 8)
	test.ExpectSuccess(t, env.Close())
}
