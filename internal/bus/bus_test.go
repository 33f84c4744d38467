package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, NamespaceTimeline)
	defer unsub()

	b.Publish(NewEvent(KindTimelineAppended, "m1"))

	select {
	case evt := <-ch:
		if evt.Kind != KindTimelineAppended {
			t.Errorf("got kind %q, want %s", evt.Kind, KindTimelineAppended)
		}
		if evt.Payload != "m1" {
			t.Errorf("payload = %v, want m1", evt.Payload)
		}
		if evt.Timestamp.IsZero() {
			t.Error("timestamp not set")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, NamespaceAttachment)
	defer unsub()

	b.Publish(NewEvent(KindOverlayChanged, nil))
	b.Publish(NewEvent(KindAttachmentFailed, nil))

	select {
	case evt := <-ch:
		if evt.Kind != KindAttachmentFailed {
			t.Errorf("got kind %q, want %s", evt.Kind, KindAttachmentFailed)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEmptyNamespaceReceivesAll(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10)
	defer unsub()

	b.Publish(NewEvent(KindFilterChanged, nil))
	b.Publish(NewEvent(KindNavigate, nil))

	for _, want := range []string{KindFilterChanged, KindNavigate} {
		select {
		case evt := <-ch:
			if evt.Kind != want {
				t.Errorf("got %q, want %q", evt.Kind, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for %s", want)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, NamespaceOverlay)
	unsub()
	unsub()

	b.Publish(NewEvent(KindOverlayChanged, nil))

	if evt, ok := <-ch; ok {
		t.Errorf("received event after unsubscribe: %v", evt)
	}
}

func TestMultipleNamespaces(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, NamespaceNav, NamespaceOverlay)
	defer unsub()

	b.Publish(NewEvent(KindFilterChanged, nil))
	b.Publish(NewEvent(KindOverlayChanged, nil))
	b.Publish(NewEvent(KindNavigate, nil))

	for _, want := range []string{KindOverlayChanged, KindNavigate} {
		select {
		case evt := <-ch:
			if evt.Kind != want {
				t.Errorf("got %q, want %q", evt.Kind, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timeout waiting for %s", want)
		}
	}
	if len(ch) != 0 {
		t.Errorf("%d unexpected events buffered", len(ch))
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(1, NamespaceHome)
	defer unsub()

	b.Publish(Event{Kind: KindFilterChanged, Payload: 1})
	// Dropped, buffer is full.
	b.Publish(Event{Kind: KindSwipeChanged, Payload: 2})

	evt := <-ch
	if evt.Kind != KindFilterChanged {
		t.Errorf("got %q, want %s", evt.Kind, KindFilterChanged)
	}
	if got := b.Dropped(); got != 1 {
		t.Errorf("Dropped() = %d, want 1", got)
	}
}

func TestNilBusPublish(t *testing.T) {
	var b *Bus
	b.Publish(NewEvent(KindNavigate, nil))
}
