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

package performance

import (
	"time"

	"github.com/x86launcher/x86launcher/logger"
)

// Timer starts timing an operation. The returned function stops the timer and
// logs the elapsed time. Nothing is logged if enabled is false.
//
//	defer performance.Timer("scan", env.Prefs.Timers.Get().(bool))()
func Timer(name string, enabled bool) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		if enabled {
			logger.Logf(logger.Allow, "timer", "%-30s: %v", name, d)
		}
		return d
	}
}
