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

import (
	"sort"

	"github.com/x86launcher/x86launcher/catalog"
)

// KeywordSet is a sorted list of distinct keywords, any of which can be
// selected.
type KeywordSet struct {
	strings  []string
	selected []bool
	page     int
}

// newKeywordSet sorts the strings. The strings should already be distinct.
func newKeywordSet(s []string) *KeywordSet {
	sort.Strings(s)
	return &KeywordSet{
		strings:  s,
		selected: make([]bool, len(s)),
	}
}

// Strings returns every keyword in order.
func (ks *KeywordSet) Strings() []string {
	return ks.strings
}

// Len returns the number of keywords.
func (ks *KeywordSet) Len() int {
	return len(ks.strings)
}

// Pages returns the number of pages of keywords.
func (ks *KeywordSet) Pages() int {
	return (len(ks.strings) + KeywordsPerPage - 1) / KeywordsPerPage
}

// Page returns the keywords on page n, counting from zero. The index of the
// first keyword on the page is n*KeywordsPerPage.
func (ks *KeywordSet) Page(n int) []string {
	start := n * KeywordsPerPage
	if n < 0 || start >= len(ks.strings) {
		return nil
	}
	return ks.strings[start:min(start+KeywordsPerPage, len(ks.strings))]
}

// CurrentPage returns the page being shown.
func (ks *KeywordSet) CurrentPage() int {
	return ks.page
}

// NextPage moves to the next page. Returns false if there are no more pages.
func (ks *KeywordSet) NextPage() bool {
	if ks.page+1 >= ks.Pages() {
		return false
	}
	ks.page++
	return true
}

// PrevPage moves to the previous page. Returns false if this is the first
// page.
func (ks *KeywordSet) PrevPage() bool {
	if ks.page == 0 {
		return false
	}
	ks.page--
	return true
}

// Selected returns true if keyword i is selected.
func (ks *KeywordSet) Selected(i int) bool {
	if i < 0 || i >= len(ks.selected) {
		return false
	}
	return ks.selected[i]
}

// NumSelected returns the number of selected keywords.
func (ks *KeywordSet) NumSelected() int {
	var n int
	for _, s := range ks.selected {
		if s {
			n++
		}
	}
	return n
}

// Toggle the selection of keyword i. Returns false if the keyword does not
// exist or if selecting it would select more than MaxSelectedKeywords.
func (ks *KeywordSet) Toggle(i int) bool {
	if i < 0 || i >= len(ks.selected) {
		return false
	}
	if !ks.selected[i] && ks.NumSelected() >= MaxSelectedKeywords {
		return false
	}
	ks.selected[i] = !ks.selected[i]
	return true
}

// SelectOnly selects keyword i and no others.
func (ks *KeywordSet) SelectOnly(i int) bool {
	if i < 0 || i >= len(ks.selected) {
		return false
	}
	clear(ks.selected)
	ks.selected[i] = true
	return true
}

// SelectedStrings returns the selected keywords in order.
func (ks *KeywordSet) SelectedStrings() []string {
	var s []string
	for i, sel := range ks.selected {
		if sel {
			s = append(s, ks.strings[i])
		}
	}
	return s
}

// SelectedCapabilities interprets the selected keywords as capability labels.
// Keywords that aren't capability labels are ignored.
func (ks *KeywordSet) SelectedCapabilities() catalog.Capabilities {
	var cs catalog.Capabilities
	for _, s := range ks.SelectedStrings() {
		if c, ok := catalog.CapabilityFromLabel(s); ok {
			cs.Set(c)
		}
	}
	return cs
}
