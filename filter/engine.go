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
	"github.com/RoaringBitmap/roaring"
	"github.com/x86launcher/x86launcher/catalog"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/logger"
)

// Engine filters the games in a catalog.
type Engine struct {
	perm   logger.Permission
	cat    *catalog.Catalog
	loader catalog.Loader

	linesPerPage int

	mode      Mode
	selection *Selection

	// the keyword set and the mode it was built for. the mode only becomes
	// the filter mode when the keywords are applied
	keywords    *KeywordSet
	keywordMode Mode
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The engine starts in the None mode with every game selected.
func NewEngine(perm logger.Permission, cat *catalog.Catalog, loader catalog.Loader, linesPerPage int) *Engine {
	if perm == nil {
		perm = logger.Deny
	}
	eng := &Engine{
		perm:         perm,
		cat:          cat,
		loader:       loader,
		linesPerPage: linesPerPage,
		keywords:     newKeywordSet(nil),
	}
	eng.ApplyNone()
	return eng
}

// Mode returns the mode of the filter that made the current selection.
func (eng *Engine) Mode() Mode {
	return eng.mode
}

// KeywordMode returns the mode the current keyword set was built for. It is
// the mode ApplySelected() will filter with.
func (eng *Engine) KeywordMode() Mode {
	return eng.keywordMode
}

// Keywords returns the keyword set built by the most recent call to
// GetKeywords() or GetTechSpecKeywords().
func (eng *Engine) Keywords() *KeywordSet {
	return eng.keywords
}

// Selection returns the selection made by the most recent filter.
func (eng *Engine) Selection() *Selection {
	return eng.selection
}

// call f with the metadata of every entry that has metadata that can be
// loaded
func (eng *Engine) eachMetadata(f func(e catalog.Entry, md *catalog.Metadata) bool) {
	for _, e := range eng.cat.Entries() {
		if !e.HasMetadata {
			continue
		}
		md, err := eng.loader.Load(e)
		if err != nil {
			logger.Logf(eng.perm, "filter", "%s: %v", e.Name, err)
			continue
		}
		if !f(e, md) {
			return
		}
	}
}

// GetKeywords builds the keyword set for the Genre, Series or Company mode
// from the metadata of every game. For the Company mode the developer and
// the publisher of a game are separate keywords. The filter mode does not
// change until the keywords are applied.
func (eng *Engine) GetKeywords(field Mode) (*KeywordSet, error) {
	if field != Genre && field != Series && field != Company {
		return nil, curated.Errorf(faults.BoundsError, curated.Errorf(BadMode, field))
	}

	var kw []string
	seen := make(map[string]bool)

	add := func(s string) bool {
		if s == "" || seen[s] {
			return true
		}
		if len(kw) >= MaxKeywords {
			logger.Logf(eng.perm, "filter", "more than %d keywords for %s", MaxKeywords, field)
			return false
		}
		seen[s] = true
		kw = append(kw, s)
		return true
	}

	eng.eachMetadata(func(_ catalog.Entry, md *catalog.Metadata) bool {
		switch field {
		case Genre:
			return add(md.Genre)
		case Series:
			return add(md.Series)
		case Company:
			return add(md.Developer) && add(md.Publisher)
		}
		return true
	})

	eng.keywordMode = field
	eng.keywords = newKeywordSet(kw)
	logger.Logf(eng.perm, "filter", "%d %s keywords", len(kw), field)

	return eng.keywords, nil
}

// GetTechSpecKeywords builds the keyword set for the TechSpec mode. The
// keywords are the labels of every capability and do not depend on the
// catalog. The filter mode does not change until the keywords are applied.
func (eng *Engine) GetTechSpecKeywords() *KeywordSet {
	kw := make([]string, 0, catalog.NumCapabilities)
	for c := catalog.Capability(0); c < catalog.NumCapabilities; c++ {
		kw = append(kw, c.Label())
	}
	eng.keywordMode = TechSpec
	eng.keywords = newKeywordSet(kw)
	return eng.keywords
}

// select the IDs and reset the cursor
func (eng *Engine) apply(ids []int) *Selection {
	if len(ids) > MaxSelection {
		logger.Logf(eng.perm, "filter", "selection of %d games limited to %d", len(ids), MaxSelection)
		ids = ids[:MaxSelection]
	}
	eng.selection = newSelection(ids, eng.linesPerPage)
	logger.Logf(eng.perm, "filter", "%s: %d games selected", eng.mode, len(ids))
	return eng.selection
}

// ApplyNone selects every game in catalog order. The Engine moves to the None
// mode.
func (eng *Engine) ApplyNone() *Selection {
	ids := make([]int, 0, eng.cat.Len())
	for _, e := range eng.cat.Entries() {
		ids = append(ids, e.ID)
	}
	eng.mode = None
	eng.keywordMode = None
	eng.keywords = newKeywordSet(nil)
	return eng.apply(ids)
}

// ApplySingle selects the games whose metadata field exactly matches the
// keyword. For the Company mode a game matches if either the developer or
// the publisher matches.
func (eng *Engine) ApplySingle(field Mode, keyword string) (*Selection, error) {
	var match func(md *catalog.Metadata) bool
	switch field {
	case Genre:
		match = func(md *catalog.Metadata) bool { return md.Genre == keyword }
	case Series:
		match = func(md *catalog.Metadata) bool { return md.Series == keyword }
	case Company:
		match = func(md *catalog.Metadata) bool { return md.Developer == keyword || md.Publisher == keyword }
	default:
		return nil, curated.Errorf(faults.BoundsError, curated.Errorf(BadMode, field))
	}

	var ids []int
	eng.eachMetadata(func(e catalog.Entry, md *catalog.Metadata) bool {
		if match(md) {
			ids = append(ids, e.ID)
		}
		return true
	})

	eng.mode = field
	return eng.apply(ids), nil
}

// ApplyTech selects the games that have every one of the capabilities. An
// empty set of capabilities selects every game with metadata.
func (eng *Engine) ApplyTech(caps catalog.Capabilities) *Selection {
	// one bitmap of game IDs per capability
	var index [catalog.NumCapabilities]*roaring.Bitmap
	for c := range index {
		index[c] = roaring.New()
	}
	all := roaring.New()

	eng.eachMetadata(func(e catalog.Entry, md *catalog.Metadata) bool {
		all.Add(uint32(e.ID))
		for _, c := range md.Capabilities.List() {
			index[c].Add(uint32(e.ID))
		}
		return true
	})

	result := all.Clone()
	for _, c := range caps.List() {
		result.And(index[c])
	}

	var ids []int
	for _, e := range eng.cat.Entries() {
		if result.Contains(uint32(e.ID)) {
			ids = append(ids, e.ID)
		}
	}

	eng.mode = TechSpec
	return eng.apply(ids)
}

// ApplySearch selects the games whose name begins with the prefix, ignoring
// case. The Engine moves to the None mode.
func (eng *Engine) ApplySearch(prefix string) *Selection {
	match := make(map[int]bool)
	for _, id := range catalog.NewNameIndex(eng.cat).Prefix(prefix) {
		match[id] = true
	}

	var ids []int
	for _, e := range eng.cat.Entries() {
		if match[e.ID] {
			ids = append(ids, e.ID)
		}
	}

	eng.mode = None
	return eng.apply(ids)
}

// ApplySelected applies the filter for the keyword mode using the selected
// keywords of the current keyword set. In the Genre, Series and Company modes
// the first selected keyword is used.
func (eng *Engine) ApplySelected() (*Selection, error) {
	switch eng.keywordMode {
	case None:
		return eng.ApplyNone(), nil
	case TechSpec:
		return eng.ApplyTech(eng.keywords.SelectedCapabilities()), nil
	}

	s := eng.keywords.SelectedStrings()
	if len(s) == 0 {
		return nil, curated.Errorf(faults.BoundsError, curated.Errorf(NothingSelected))
	}
	return eng.ApplySingle(eng.keywordMode, s[0])
}
