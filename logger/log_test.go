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

package logger_test

import (
	"math/rand"
	"testing"

	"github.com/x86launcher/x86launcher/logger"
	"github.com/x86launcher/x86launcher/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	log.Log(logger.Allow, "vram", "present")
	log.Log(logger.Allow, "vram", "present")
	log.Log(logger.Allow, "vram", "present")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "vram: present (repeat x3)\n")
	test.ExpectEquality(t, log.Len(), 1)
}

func TestMaximum(t *testing.T) {
	log := logger.NewLogger(10)
	for i := 0; i < 25; i++ {
		log.Logf(logger.Allow, "tag", "entry %d", i)
	}
	test.ExpectEquality(t, log.Len(), 10)

	tw := &test.Writer{}
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "tag: entry 24\n")
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.Writer{}

	var p prohibitLogging

	for i := 0; i < 100; i++ {
		p.allow = rand.Intn(100)
		log.Clear()
		tw.Clear()
		log.Log(p, "tag", "detail")
		log.Write(tw)
		if p.AllowLogging() {
			test.ExpectEquality(t, tw.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, tw.String(), "")
		}
	}

	log.Clear()
	tw.Clear()
	log.Log(logger.Deny, "tag", "detail")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log(logger.Allow, "before", "echo")

	tw := &test.Writer{}
	log.SetEcho(tw, true)
	test.ExpectEquality(t, tw.String(), "before: echo\n")

	log.Log(logger.Allow, "after", "echo")
	test.ExpectEquality(t, tw.String(), "before: echo\nafter: echo\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "ignored", "echo")
	test.ExpectEquality(t, tw.String(), "before: echo\nafter: echo\n")
}
