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

package scheduler

import "fmt"

// Kind identifies the class of a scheduled event.
type Kind int

// List of event kinds. The order of the list is the order in which events
// that are due at the same time are dispatched.
const (
	DisplayLine Kind = iota
	DMAContinue
	NumKinds
)

func (k Kind) String() string {
	switch k {
	case DisplayLine:
		return "display line"
	case DMAContinue:
		return "dma continue"
	}
	return fmt.Sprintf("event kind %d", int(k))
}

// Event is an instance of a scheduled activity.
type Event struct {
	Kind Kind

	// absolute system timestamp at which the event is due
	ActivationTime uint64

	// event is waiting to be dispatched
	Pending bool

	// meaning depends on kind. for DMAContinue it is the DMA channel
	Param int
}

func (e Event) String() string {
	return fmt.Sprintf("%s @ %d [%d]", e.Kind, e.ActivationTime, e.Param)
}

// Timeline is the system timestamp and the events scheduled against it.
type Timeline struct {
	timestamp uint64
	events    [NumKinds]Event

	// maximum advance of Step()
	slice uint64
}

// NewTimeline is the preferred method of initialisation for the Timeline
// type. The slice argument is the maximum number of cycles that Step() will
// advance the timestamp by.
func NewTimeline(slice int) *Timeline {
	if slice < 1 {
		slice = 1
	}
	t := &Timeline{
		slice: uint64(slice),
	}
	t.Reset()
	return t
}

// Reset timestamp to zero and forget all events.
func (t *Timeline) Reset() {
	t.timestamp = 0
	for k := range t.events {
		t.events[k] = Event{Kind: Kind(k)}
	}
}

// Now returns the current system timestamp.
func (t *Timeline) Now() uint64 {
	return t.timestamp
}

// Schedule the event kind for activation relative cycles from now.
func (t *Timeline) Schedule(kind Kind, relative uint64, param int) {
	if kind < 0 || kind >= NumKinds {
		return
	}
	t.events[kind] = Event{
		Kind:           kind,
		ActivationTime: t.timestamp + relative,
		Pending:        true,
		Param:          param,
	}
}

// Pending returns the event of the kind and whether it is pending.
func (t *Timeline) Pending(kind Kind) (Event, bool) {
	if kind < 0 || kind >= NumKinds {
		return Event{Kind: kind}, false
	}
	e := t.events[kind]
	return e, e.Pending
}

// Due returns the event of the kind if it is pending and its activation time
// has been reached. The event is no longer pending after it has been
// returned by this function.
func (t *Timeline) Due(kind Kind) (Event, bool) {
	if kind < 0 || kind >= NumKinds {
		return Event{Kind: kind}, false
	}
	e := &t.events[kind]
	if !e.Pending || t.timestamp < e.ActivationTime {
		return Event{}, false
	}
	e.Pending = false
	return *e, true
}

// Next returns the earliest activation time of all pending events. If there
// are no pending events the time returned is one slice from now.
func (t *Timeline) Next() uint64 {
	next := t.timestamp + t.slice
	for _, e := range t.events {
		if e.Pending && e.ActivationTime < next {
			next = e.ActivationTime
		}
	}
	return next
}

// Step advances the timestamp to the next event or by one slice, whichever
// is sooner. If an event is already due the timestamp advances by one slice.
// Returns the number of cycles the timestamp advanced by.
func (t *Timeline) Step() uint64 {
	delta := t.slice
	if next := t.Next(); next > t.timestamp {
		delta = next - t.timestamp
	}
	t.timestamp += delta
	return delta
}
