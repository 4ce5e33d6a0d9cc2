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

package catalog

import "strings"

// Capability is a hardware requirement or feature of a game.
type Capability int

// List of valid Capability values.
const (
	AudioBeeper Capability = iota
	AudioTandy
	AudioAdlib
	AudioSoundblaster
	AudioMT32
	AudioGM
	AudioCovox
	AudioDisney
	AudioUltrasound
	VideoText
	VideoHercules
	VideoTandy
	VideoCGA
	VideoEGA
	VideoVGA
	VideoSVGA
	CPU8086
	CPU286
	CPU386
	CPU486
	CPU586
	RAMXMS
	RAMEMS
	MiscDPMI

	NumCapabilities
)

type capabilityInfo struct {
	label   string
	section string
	key     string
}

var capabilities = [NumCapabilities]capabilityInfo{
	AudioBeeper:       {"Audio: PC Speaker", "sound", "beeper"},
	AudioTandy:        {"Audio: Tandy", "sound", "tandy"},
	AudioAdlib:        {"Audio: Adlib", "sound", "adlib"},
	AudioSoundblaster: {"Audio: Soundblaster", "sound", "soundblaster"},
	AudioMT32:         {"Audio: Roland MT32", "sound", "mt32"},
	AudioGM:           {"Audio: General MIDI", "sound", "gm"},
	AudioCovox:        {"Audio: Covox", "sound", "covox"},
	AudioDisney:       {"Audio: Disney", "sound", "disney"},
	AudioUltrasound:   {"Audio: Ultrasound", "sound", "ultrasound"},
	VideoText:         {"Video: Text mode", "video", "text"},
	VideoHercules:     {"Video: Hercules", "video", "hercules"},
	VideoTandy:        {"Video: Tandy", "video", "tandy"},
	VideoCGA:          {"Video: CGA", "video", "cga"},
	VideoEGA:          {"Video: EGA", "video", "ega"},
	VideoVGA:          {"Video: VGA", "video", "vga"},
	VideoSVGA:         {"Video: SVGA", "video", "svga"},
	CPU8086:           {"CPU: 8086", "cpu", "8086"},
	CPU286:            {"CPU: 80286", "cpu", "286"},
	CPU386:            {"CPU: 80386", "cpu", "386"},
	CPU486:            {"CPU: 80486", "cpu", "486"},
	CPU586:            {"CPU: 586/Pentium", "cpu", "586"},
	RAMXMS:            {"RAM: Extended XMS", "cpu", "xms"},
	RAMEMS:            {"RAM: Expanded EMS", "cpu", "ems"},
	MiscDPMI:          {"Misc: DPMI", "cpu", "dpmi"},
}

// Label is the text shown to the user for the capability.
func (c Capability) Label() string {
	if c < 0 || c >= NumCapabilities {
		return ""
	}
	return capabilities[c].label
}

// Section is the launch.dat section that the capability is found in.
func (c Capability) Section() string {
	if c < 0 || c >= NumCapabilities {
		return ""
	}
	return capabilities[c].section
}

// Key is the launch.dat key for the capability.
func (c Capability) Key() string {
	if c < 0 || c >= NumCapabilities {
		return ""
	}
	return capabilities[c].key
}

func (c Capability) String() string {
	return c.Label()
}

// CapabilityFromLabel returns the capability with the label.
func CapabilityFromLabel(label string) (Capability, bool) {
	for i, c := range capabilities {
		if c.label == label {
			return Capability(i), true
		}
	}
	return 0, false
}

// capability for a launch.dat section and key
func capabilityFromKey(section, key string) (Capability, bool) {
	for i, c := range capabilities {
		if c.section == section && c.key == key {
			return Capability(i), true
		}
	}
	return 0, false
}

// Capabilities is a set of Capability values.
type Capabilities uint32

// Set adds the capability to the set.
func (cs *Capabilities) Set(c Capability) {
	*cs |= 1 << uint(c)
}

// Has returns true if the capability is in the set.
func (cs Capabilities) Has(c Capability) bool {
	return cs&(1<<uint(c)) != 0
}

// Contains returns true if every capability in o is also in the set.
func (cs Capabilities) Contains(o Capabilities) bool {
	return cs&o == o
}

// List returns the capabilities in the set in order.
func (cs Capabilities) List() []Capability {
	var l []Capability
	for c := Capability(0); c < NumCapabilities; c++ {
		if cs.Has(c) {
			l = append(l, c)
		}
	}
	return l
}

func (cs Capabilities) String() string {
	l := cs.List()
	s := make([]string, len(l))
	for i, c := range l {
		s[i] = c.Label()
	}
	return strings.Join(s, ", ")
}
