// This file is part of GopherDS.
//
// GopherDS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDS.  If not, see <https://www.gnu.org/licenses/>.

// Package scheduler implements the timeline that the console is driven by.
//
// The timeline has a single monotonic system timestamp and one event for each
// kind of scheduled activity. An event is scheduled relative to the current
// timestamp and becomes due when the timestamp reaches its activation time.
// Scheduling an event that is already pending moves it.
//
// The timeline does not call anything when an event becomes due. The console
// asks for due events with Due() and dispatches them itself.
package scheduler
