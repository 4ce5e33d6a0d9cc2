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

package environment

import (
	"github.com/x86launcher/x86launcher/display"
	"github.com/x86launcher/x86launcher/logger"
	"github.com/x86launcher/x86launcher/palette"
	"github.com/x86launcher/x86launcher/preferences"
	"github.com/x86launcher/x86launcher/vram"
)

// Label is used to name the environment
type Label string

// Environment is the context in which the launcher runs. It owns the display
// surface and the palette, and decides whether components are allowed to log.
type Environment struct {
	Label Label

	Prefs   *preferences.Preferences
	Backend display.Backend
	Surface *vram.Surface
	Palette *palette.Table
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created and loaded from disk. The backend is switched into the graphics mode
// and the UI colours are loaded into the palette.
func NewEnvironment(prefs *preferences.Preferences, backend display.Backend) (*Environment, error) {
	env := &Environment{
		Backend: backend,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
		err = prefs.Load()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	env.Surface, err = vram.NewSurface(env, backend, prefs.DACWidth.Get().(int))
	if err != nil {
		return nil, err
	}

	// the surface knows the DAC width the hardware settled on
	env.Palette, err = palette.NewTable(env, env.Surface.DACWidth())
	if err != nil {
		env.Surface.Close()
		return nil, err
	}

	env.Palette.SetUI()
	err = env.Palette.Sync(backend)
	if err != nil {
		env.Surface.Close()
		return nil, err
	}

	return env, nil
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.Prefs.AllowLogging()
}

// Close returns the display to text mode and closes the backend.
func (env *Environment) Close() error {
	err := env.Surface.Close()
	if cerr := env.Backend.Close(); err == nil {
		err = cerr
	}
	logger.Log(env, "environment", "closed")
	return err
}
