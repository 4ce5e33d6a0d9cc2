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
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sourcegraph/conc/pool"
	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/faults"
	"github.com/x86launcher/x86launcher/logger"
)

// IgnoreFile is the name of the file in a search directory that lists the
// sub-directories that are not games.
const IgnoreFile = ".launcherignore"

// ScanOptions alter the behaviour of Scan().
type ScanOptions struct {
	// read the name of each game from its metadata rather than using the name
	// of the directory
	PreloadNames bool

	// the number of search directories scanned at once. zero means one per
	// CPU
	MaxWorkers int
}

// the metadata file in the directory, if there is one. the file name is
// matched without regard to case
func findMetadata(dir string) (string, bool) {
	for _, n := range []string{MetadataFile, strings.ToUpper(MetadataFile)} {
		p := filepath.Join(dir, n)
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// Scan creates a catalog from the sub-directories of the search directories.
// Search directories that can't be read are logged and skipped.
//
// The catalog is sorted by name and IDs are assigned in that order, starting
// from one.
func Scan(ctx context.Context, perm logger.Permission, dirs []string, opts ScanOptions) (*Catalog, error) {
	if perm == nil {
		perm = logger.Deny
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([][]Entry, len(dirs))

	p := pool.New().WithMaxGoroutines(workers).WithContext(ctx)
	for i, dir := range dirs {
		p.Go(func(ctx context.Context) error {
			entries, err := scanDir(ctx, perm, dir, opts)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Logf(perm, "catalog", "%s: %v", dir, err)
				return nil
			}
			results[i] = entries
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, curated.Errorf("catalog: scan: %v", err)
	}

	var all []Entry
	for _, r := range results {
		all = append(all, r...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})

	cat := NewCatalog()
	for i := range all {
		all[i].ID = i + 1
		if err := cat.Add(all[i]); err != nil {
			return nil, err
		}
	}

	logger.Logf(perm, "catalog", "%d games in %d search directories", cat.Len(), len(dirs))

	return cat, nil
}

func scanDir(ctx context.Context, perm logger.Permission, dir string, opts ScanOptions) ([]Entry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, curated.Errorf(faults.IOError, err)
	}

	des, err := os.ReadDir(abs)
	if err != nil {
		return nil, curated.Errorf(faults.IOError, err)
	}

	var ign *ignore.GitIgnore
	if _, err := os.Stat(filepath.Join(abs, IgnoreFile)); err == nil {
		ign, err = ignore.CompileIgnoreFile(filepath.Join(abs, IgnoreFile))
		if err != nil {
			return nil, curated.Errorf(faults.IOError, err)
		}
	}

	var entries []Entry
	for _, de := range des {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !de.IsDir() {
			continue
		}

		if ign != nil && (ign.MatchesPath(de.Name()) || ign.MatchesPath(de.Name()+"/")) {
			logger.Logf(perm, "catalog", "ignoring %s", de.Name())
			continue
		}

		e := Entry{
			Name:  de.Name(),
			Drive: filepath.VolumeName(abs),
			Path:  filepath.Join(abs, de.Name()),
		}

		var mdFile string
		mdFile, e.HasMetadata = findMetadata(e.Path)

		if e.HasMetadata && opts.PreloadNames {
			md, err := LoadMetadataFile(mdFile)
			if md != nil && md.Name != "" {
				e.Name = md.Name
			}
			if err != nil {
				logger.Logf(perm, "catalog", "%s: %v", e.Path, err)
			}
		}

		entries = append(entries, e)
	}

	return entries, nil
}
