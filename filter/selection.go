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

// Selection is an ordered list of game IDs and a cursor. The cursor is a page,
// counting from one, and a line on that page, counting from zero.
//
// The cursor always points to a game in the list, unless the list is empty in
// which case the page is one and the line is zero.
type Selection struct {
	ids   []int
	lines int
	page  int
	line  int
}

func newSelection(ids []int, linesPerPage int) *Selection {
	if linesPerPage < 1 {
		linesPerPage = 1
	}
	return &Selection{
		ids:   ids,
		lines: linesPerPage,
		page:  1,
	}
}

// IDs returns the selected game IDs in order.
func (sel *Selection) IDs() []int {
	return sel.ids
}

// Max returns the number of selected games.
func (sel *Selection) Max() int {
	return len(sel.ids)
}

// LinesPerPage returns the number of games on each page.
func (sel *Selection) LinesPerPage() int {
	return sel.lines
}

// Page returns the page of the cursor, counting from one.
func (sel *Selection) Page() int {
	return sel.page
}

// Line returns the line of the cursor on the page, counting from zero.
func (sel *Selection) Line() int {
	return sel.line
}

// TotalPages returns the number of pages. Zero if the list is empty.
func (sel *Selection) TotalPages() int {
	return (len(sel.ids) + sel.lines - 1) / sel.lines
}

// the index of the cursor in the list
func (sel *Selection) index() int {
	return (sel.page-1)*sel.lines + sel.line
}

func (sel *Selection) setIndex(i int) {
	sel.page = i/sel.lines + 1
	sel.line = i % sel.lines
}

// GameID returns the ID of the game under the cursor. Returns NoSelection if
// the list is empty.
func (sel *Selection) GameID() int {
	if len(sel.ids) == 0 {
		return NoSelection
	}
	return sel.ids[sel.index()]
}

// Current returns the ID of the game under the cursor. The boolean is false
// if the list is empty.
func (sel *Selection) Current() (int, bool) {
	if len(sel.ids) == 0 {
		return NoSelection, false
	}
	return sel.ids[sel.index()], true
}

// PageIDs returns the IDs of the games on the cursor's page.
func (sel *Selection) PageIDs() []int {
	start := (sel.page - 1) * sel.lines
	if start >= len(sel.ids) {
		return nil
	}
	return sel.ids[start:min(start+sel.lines, len(sel.ids))]
}

// Down moves the cursor to the next game. Returns false if the cursor is on
// the last game.
func (sel *Selection) Down() bool {
	i := sel.index()
	if i+1 >= len(sel.ids) {
		return false
	}
	sel.setIndex(i + 1)
	return true
}

// Up moves the cursor to the previous game. Returns false if the cursor is on
// the first game.
func (sel *Selection) Up() bool {
	i := sel.index()
	if i == 0 {
		return false
	}
	sel.setIndex(i - 1)
	return true
}

// PageDown moves the cursor to the same line of the next page, or to the last
// game if the next page is shorter. On the last page the cursor moves to the
// last game. Returns false if the cursor did not move.
func (sel *Selection) PageDown() bool {
	if len(sel.ids) == 0 {
		return false
	}
	i := sel.index()
	n := min(i+sel.lines, len(sel.ids)-1)
	if n == i {
		return false
	}
	sel.setIndex(n)
	return true
}

// PageUp moves the cursor to the same line of the previous page. On the first
// page the cursor moves to the first game. Returns false if the cursor did
// not move.
func (sel *Selection) PageUp() bool {
	i := sel.index()
	n := max(i-sel.lines, 0)
	if n == i {
		return false
	}
	sel.setIndex(n)
	return true
}

// Select moves the cursor to the game with the ID. Returns false if the game
// is not in the list.
func (sel *Selection) Select(id int) bool {
	for i, v := range sel.ids {
		if v == id {
			sel.setIndex(i)
			return true
		}
	}
	return false
}
