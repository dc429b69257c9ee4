package core

import (
	"testing"
	"time"
)

// mustEvent waits for an event of the given kind on ch.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// recvEvent pops an already-queued event; Dispatch delivers synchronously
// so nothing to wait for.
func recvEvent(t *testing.T, c *Client) *Event {
	t.Helper()

	select {
	case ev := <-c.Events:
		return ev
	default:
		t.Fatal("expected a queued event")
		return nil
	}
}

// assertNoEvent fails if the client has anything queued.
func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()

	select {
	case ev := <-c.Events:
		t.Fatalf("unexpected event: %+v", ev)
	default:
	}
}
