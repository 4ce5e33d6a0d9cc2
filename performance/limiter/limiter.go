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

// Package limiter paces a loop to a fixed rate.
//
//	lim := limiter.NewLimiter(60)
//	defer lim.Stop()
//	for {
//		lim.Wait()
//		poll()
//	}
package limiter

import (
	"sync"
	"time"
)

// Limiter triggers a fixed number of times per second.
type Limiter struct {
	crit   sync.Mutex
	rate   int
	ticker *time.Ticker
}

func period(rate int) time.Duration {
	return time.Second / time.Duration(max(rate, 1))
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of less than one is treated as one.
func NewLimiter(rate int) *Limiter {
	return &Limiter{
		rate:   max(rate, 1),
		ticker: time.NewTicker(period(rate)),
	}
}

// Rate returns the number of triggers per second.
func (lim *Limiter) Rate() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.rate
}

// SetRate changes the number of triggers per second.
func (lim *Limiter) SetRate(rate int) {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.rate = max(rate, 1)
	lim.ticker.Reset(period(rate))
}

// Wait blocks until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited returns true if the trigger has already happened. It does not
// block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
