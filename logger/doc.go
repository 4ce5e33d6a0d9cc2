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

// Package logger is the central log repository for the launcher. Entries are
// kept in memory, up to a maximum number, and can be written to any
// io.Writer on request.
//
// Logging is gated by a Permission. Components of the launcher core never
// log with the Allow permission. They log through the environment they were
// created with, which only permits logging when the verbose preference is
// set.
//
// Identical consecutive entries are merged and the number of repeats noted.
package logger
