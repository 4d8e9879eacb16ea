package eventbus

import (
	"log"
	"runtime/debug"
	"sync"
)

// EventType identifies a kind of surface lifecycle event
type EventType string

// Event type constants
const (
	EventSurfaceOpened   EventType = "surface_opened"
	EventSurfaceClosed   EventType = "surface_closed"
	EventPositionApplied EventType = "position_applied"
)

// Event is a surface lifecycle event
type Event interface {
	Type() EventType
}

// SurfaceOpenedEvent fires once a surface becomes visible
type SurfaceOpenedEvent struct {
	QuickOpen bool
}

func (SurfaceOpenedEvent) Type() EventType { return EventSurfaceOpened }

// SurfaceClosedEvent fires once a surface has fully closed
type SurfaceClosedEvent struct{}

func (SurfaceClosedEvent) Type() EventType { return EventSurfaceClosed }

// PositionAppliedEvent carries the outcome of an autoposition pass
type PositionAppliedEvent struct {
	Origin    string
	Top       string
	Bottom    string
	Left      string
	Right     string
	MaxHeight string
}

func (PositionAppliedEvent) Type() EventType { return EventPositionApplied }

// EventHandler is a function that handles lifecycle events
type EventHandler func(Event)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    int
	handlers  map[EventType]map[int]EventHandler
	eventChan chan Event
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType]map[int]EventHandler),
		eventChan: make(chan Event, 100),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers. A full channel drops
// the event rather than blocking the caller.
func (b *bus) Publish(event Event) {
	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[int]EventHandler)
	}
	b.handlers[eventType][id] = handler

	// Return unsubscribe function
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[eventType], id)
	}
}

// Close stops the dispatcher and discards any undelivered events
func (b *bus) Close() {
	close(b.quit)
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Make a copy to avoid holding lock during handler execution
			b.mu.RLock()
			handlers := make([]EventHandler, 0, len(b.handlers[event.Type()]))
			for _, h := range b.handlers[event.Type()] {
				handlers = append(handlers, h)
			}
			b.mu.RUnlock()

			for _, handler := range handlers {
				b.invoke(handler, event)
			}

		case <-b.quit:
			return
		}
	}
}

// invoke calls a handler, shielding the dispatcher from panics
func (b *bus) invoke(handler EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	handler(event)
}
