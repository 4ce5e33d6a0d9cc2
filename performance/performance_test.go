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

package performance_test

import (
	"os"
	"testing"
	"time"

	"github.com/x86launcher/x86launcher/curated"
	"github.com/x86launcher/x86launcher/performance"
	"github.com/x86launcher/x86launcher/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, trace")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "cpu,trace")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "none")

	_, err = performance.ParseProfile("gpu")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	t.Chdir(t.TempDir())

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat("test_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat("test_cpu.profile")
	test.ExpectFailure(t, err)
}

func TestTimer(t *testing.T) {
	stop := performance.Timer("sleep", false)
	time.Sleep(5 * time.Millisecond)
	test.ExpectSuccess(t, stop() >= 5*time.Millisecond)
}
