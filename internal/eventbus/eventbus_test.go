package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPublishDeliversToSubscriber(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var got []Event
	b.Subscribe(EventSurfaceOpened, func(e Event) {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
	})

	b.Publish(SurfaceOpenedEvent{QuickOpen: true})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	})

	mu.Lock()
	defer mu.Unlock()
	opened, ok := got[0].(SurfaceOpenedEvent)
	require.True(t, ok)
	assert.True(t, opened.QuickOpen)
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var closedCount int
	b.Subscribe(EventSurfaceClosed, func(Event) {
		mu.Lock()
		closedCount++
		mu.Unlock()
	})

	b.Publish(SurfaceOpenedEvent{})
	b.Publish(PositionAppliedEvent{Origin: "left top"})
	b.Publish(SurfaceClosedEvent{})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return closedCount == 1
	})
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var first, second int
	unsub := b.Subscribe(EventPositionApplied, func(Event) {
		mu.Lock()
		first++
		mu.Unlock()
	})
	b.Subscribe(EventPositionApplied, func(Event) {
		mu.Lock()
		second++
		mu.Unlock()
	})

	unsub()
	b.Publish(PositionAppliedEvent{Top: "20px"})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return second == 1
	})

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, first, "unsubscribed handler should not run")
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventSurfaceOpened, func(Event) {
		panic("boom")
	})

	var mu sync.Mutex
	var delivered int
	b.Subscribe(EventSurfaceOpened, func(Event) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	b.Publish(SurfaceOpenedEvent{})
	b.Publish(SurfaceOpenedEvent{})

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return delivered == 2
	})
}
