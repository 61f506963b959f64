// Package events provides an append-only log of model mutations.
//
// A Log is created once by the application, passed to the components that
// record events and drained when the application shuts down.
package events

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DateFormat is used when an Event is printed.
const DateFormat = "Mon Jan 02 15:04:05 MST 2006"

// Event is a single entry in the Log.
type Event struct {
	// ID identifies the event, it is unique within a process.
	ID uuid.UUID
	// Description tells what happened.
	Description string
	// Date is the time at which the event was logged.
	Date time.Time
}

func (e Event) String() string {
	return fmt.Sprintf("%v     |     %v", e.Description, e.Date.Format(DateFormat))
}

// Logger is implemented by anything that can record an event.
type Logger interface {
	LogEvent(description string) Event
}

// Log is a Logger that keeps all events in memory, oldest first.
//
// It is safe for concurrent use.
type Log struct {
	mx     sync.RWMutex
	events []Event
	now    func() time.Time
}

// New creates an empty Log.
func New() *Log {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty Log which takes timestamps from the given
// function.
func NewWithClock(now func() time.Time) *Log {
	return &Log{
		events: make([]Event, 0),
		now:    now,
	}
}

// LogEvent appends a new event with the current time and returns it.
func (l *Log) LogEvent(description string) Event {
	l.mx.Lock()
	defer l.mx.Unlock()

	e := Event{
		ID:          uuid.New(),
		Description: description,
		Date:        l.now(),
	}
	l.events = append(l.events, e)
	return e
}

// Events returns a snapshot of all events in the order in which they were
// logged.
func (l *Log) Events() []Event {
	l.mx.RLock()
	defer l.mx.RUnlock()

	snapshot := make([]Event, len(l.events))
	copy(snapshot, l.events)
	return snapshot
}

// Each calls fn for every event, oldest first.
//
// fn works on a snapshot and may log new events without deadlocking.
func (l *Log) Each(fn func(Event)) {
	for _, e := range l.Events() {
		fn(e)
	}
}

// Len returns the number of logged events.
func (l *Log) Len() int {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return len(l.events)
}

// Clear removes all events.
//
// Meant for tests, the application never clears its log.
func (l *Log) Clear() {
	l.mx.Lock()
	defer l.mx.Unlock()
	l.events = make([]Event, 0)
}

type discard struct{}

func (discard) LogEvent(description string) Event {
	return Event{Description: description}
}

// Discard is a Logger that records nothing.
var Discard Logger = discard{}
