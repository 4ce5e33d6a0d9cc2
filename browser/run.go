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

package browser

import (
	"context"
	"time"

	"github.com/x86launcher/x86launcher/input"
	"github.com/x86launcher/x86launcher/performance/limiter"
)

// the main loop runs at this many iterations per second
const loopRate = 60

// artwork rows drawn between each presentation of the surface
const rowsPerIteration = 4

// Run is the main loop of the browser. Keys are read from the poller until
// the user launches a game or quits. A nil Launch is returned if the user
// quit.
//
// The loop also ends, with the context's error, if the context is cancelled.
func (b *Browser) Run(ctx context.Context, poller input.Poller) (*Launch, error) {
	lim := limiter.NewLimiter(loopRate)
	defer lim.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		k, err := poller.Poll()
		if err != nil {
			return nil, err
		}

		ev, err := b.HandleKey(k)
		if err != nil {
			return nil, err
		}

		switch ev {
		case Quit:
			return nil, nil
		case Launched:
			l := b.Launch()
			return &l, nil
		}

		var drawn bool
		for range rowsPerIteration {
			if !b.Tick(time.Now()) {
				break
			}
			drawn = true
		}
		if drawn {
			if err := b.srf.Present(); err != nil {
				return nil, err
			}
		}

		lim.Wait()
	}
}
