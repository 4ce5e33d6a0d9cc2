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

// Package paths contains functions to prepare paths to x86launcher
// resources, such as the preferences file and screenshots.
//
// ResourcePath() prepends the appropriate config directory to the supplied
// sub-path and filename, creating the directory if necessary:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the base directory is ".x86launcher" in the current
// directory. For release builds (the "release" build tag) the base directory
// is "x86launcher" in the user's config directory, as returned by
// os.UserConfigDir(). On a Linux system that would be:
//
//	/home/user/.config/x86launcher/preferences
package paths
