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

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/ini"
	"github.com/x86launcher/x86launcher/logger"
)

// MetadataFile is the name of the metadata file in a game directory.
const MetadataFile = "launch.dat"

// Maximum lengths of metadata strings in bytes. Longer values are truncated.
const (
	MaxNameSize     = 64
	MaxStringSize   = 32
	MaxFilenameSize = 64
	MaxImagesSize   = 256
)

// MaxImages is the maximum number of images returned by ImageList().
const MaxImages = 16

// DefaultYear is the year of a game whose metadata does not say otherwise.
const DefaultYear = 0

// NoMetadata is returned by a Loader for an entry without a metadata file.
const NoMetadata = "no metadata: %s"

// Metadata is the content of a launch.dat file.
type Metadata struct {
	Name      string
	Genre     string
	Series    string
	Developer string
	Publisher string
	Year      int

	MidiMPU    bool
	MidiSerial bool

	// the main and alternative commands that start the game
	Start    string
	AltStart string

	// the unparsed image list. see ImageList()
	Images string

	Capabilities Capabilities
}

// truncate a string to a maximum length in bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// LoadMetadata reads launch.dat formatted data. Fields not present in the
// data have their default values.
//
// Unknown keys and malformed lines do not stop the metadata from being read.
// In that case the returned Metadata is valid and the error describes the
// first problem. If the returned Metadata is nil the error is fatal.
func LoadMetadata(r io.Reader) (*Metadata, error) {
	md := &Metadata{Year: DefaultYear}

	err := ini.Parse(r, func(section, name, value string) bool {
		if section == "default" {
			switch name {
			case "name":
				md.Name = truncate(value, MaxNameSize)
			case "genre":
				md.Genre = truncate(value, MaxStringSize)
			case "series":
				md.Series = truncate(value, MaxStringSize)
			case "developer":
				md.Developer = truncate(value, MaxStringSize)
			case "publisher":
				md.Publisher = truncate(value, MaxStringSize)
			case "year":
				// a year that isn't a number is the same as a missing year
				md.Year, _ = strconv.Atoi(value)
			case "midi_mpu":
				md.MidiMPU = ini.Flag(value)
			case "midi_serial":
				md.MidiSerial = ini.Flag(value)
			case "start":
				md.Start = truncate(value, MaxFilenameSize)
			case "alt_start":
				md.AltStart = truncate(value, MaxFilenameSize)
			case "images":
				md.Images = truncate(value, MaxImagesSize)
			default:
				return false
			}
			return true
		}

		c, ok := capabilityFromKey(section, name)
		if !ok {
			return false
		}
		if ini.Flag(value) {
			md.Capabilities.Set(c)
		}
		return true
	})

	if err != nil && curated.Has(err, faults.IOError) {
		return nil, err
	}

	return md, err
}

// LoadMetadataFile opens the named file and calls LoadMetadata().
func LoadMetadataFile(filename string) (*Metadata, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(faults.IOError, err)
	}
	defer f.Close()

	return LoadMetadata(f)
}

// ImageList splits the images field into file names. Names are separated by
// commas, semi-colons or spaces. At most MaxImages names are returned.
func (md *Metadata) ImageList() []string {
	l := strings.FieldsFunc(md.Images, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	if len(l) > MaxImages {
		l = l[:MaxImages]
	}
	return l
}

// Loader is implemented by any type that can load the metadata for an entry.
type Loader interface {
	Load(e Entry) (*Metadata, error)
}

// DiskLoader loads metadata from the launch.dat file in the game directory.
type DiskLoader struct {
	perm logger.Permission
}

// NewDiskLoader is the preferred method of initialisation for the DiskLoader
// type.
func NewDiskLoader(perm logger.Permission) *DiskLoader {
	if perm == nil {
		perm = logger.Deny
	}
	return &DiskLoader{perm: perm}
}

// Load implements the Loader interface. Problems that don't prevent the file
// from being read are logged.
func (ldr *DiskLoader) Load(e Entry) (*Metadata, error) {
	if !e.HasMetadata {
		return nil, curated.Errorf(NoMetadata, e.Name)
	}

	fn, ok := findMetadata(e.Path)
	if !ok {
		fn = filepath.Join(e.Path, MetadataFile)
	}

	md, err := LoadMetadataFile(fn)
	if md == nil {
		return nil, err
	}
	if err != nil {
		logger.Logf(ldr.perm, "catalog", "%s: %v", e.Name, err)
	}

	return md, nil
}
