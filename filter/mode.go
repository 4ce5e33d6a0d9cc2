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

package filter

// Mode is the filter mode of the Engine.
type Mode int

// List of valid Mode values.
const (
	None Mode = iota
	Genre
	Series
	Company
	TechSpec
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Genre:
		return "genre"
	case Series:
		return "series"
	case Company:
		return "company"
	case TechSpec:
		return "tech spec"
	}
	return "unknown"
}

// Limits of keyword sets and selections.
const (
	MaxSelection = 999

	MaxKeywords         = 200
	MaxSelectedKeywords = 30
	KeywordsPerPage     = 33
	KeywordsPerColumn   = 11
)

// NoSelection is the game ID of an empty selection.
const NoSelection = -1

// Sentinel errors.
const (
	BadMode         = "filter: bad mode: %v"
	NothingSelected = "filter: no keyword selected"
)
