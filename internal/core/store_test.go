package core

import "testing"

func TestStoreCreateMessage(t *testing.T) {
	store := NewMessageStore()

	msg := store.CreateMessage("r1", "alice", "Alice", "hi")
	if msg.ID == "" {
		t.Fatal("message should get an id")
	}
	if msg.Room != "r1" || msg.AuthorID != "alice" || msg.AuthorName != "Alice" || msg.Body != "hi" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if got := msg.Upvotes(); got != 0 {
		t.Fatalf("new message should have 0 upvotes, got %d", got)
	}

	found, ok := store.GetMessage("r1", msg.ID)
	if !ok || found != msg {
		t.Fatal("created message should be retrievable")
	}
}

func TestStoreIDsUniqueAcrossRooms(t *testing.T) {
	store := NewMessageStore()
	seen := make(map[string]struct{})

	for _, room := range []string{"r1", "r2", "r1", "r3"} {
		msg := store.CreateMessage(room, "alice", "Alice", "x")
		if _, dup := seen[msg.ID]; dup {
			t.Fatalf("id %q reused", msg.ID)
		}
		seen[msg.ID] = struct{}{}
	}
}

func TestStoreUpvoteIsIdempotent(t *testing.T) {
	store := NewMessageStore()
	msg := store.CreateMessage("r1", "alice", "Alice", "hi")

	for i := 0; i < 5; i++ {
		got, ok := store.RecordUpvote("r1", "bob", msg.ID)
		if !ok {
			t.Fatal("upvote on existing message should succeed")
		}
		if got != msg {
			t.Fatal("upvote should return the stored message")
		}
	}

	if got := msg.Upvotes(); got != 1 {
		t.Fatalf("repeated votes from one user should count once, got %d", got)
	}
	if !msg.HasVoted("bob") {
		t.Fatal("bob should be recorded as voter")
	}

	store.RecordUpvote("r1", "carol", msg.ID)
	if got := msg.Upvotes(); got != 2 {
		t.Fatalf("distinct voters should accumulate, got %d", got)
	}
}

func TestStoreUpvoteNotFound(t *testing.T) {
	store := NewMessageStore()
	store.CreateMessage("r1", "alice", "Alice", "hi")

	if _, ok := store.RecordUpvote("r1", "bob", "999"); ok {
		t.Fatal("unknown chat id should not be upvotable")
	}
	if _, ok := store.RecordUpvote("ghost", "bob", "1"); ok {
		t.Fatal("unknown room should not be upvotable")
	}
}

func TestStoreListMessagesOrder(t *testing.T) {
	store := NewMessageStore()
	bodies := []string{"one", "two", "three"}
	for _, body := range bodies {
		store.CreateMessage("r1", "alice", "Alice", body)
	}

	msgs := store.ListMessages("r1")
	if len(msgs) != len(bodies) {
		t.Fatalf("expected %d messages, got %d", len(bodies), len(msgs))
	}
	for i, body := range bodies {
		if msgs[i].Body != body {
			t.Fatalf("position %d: expected %q, got %q", i, body, msgs[i].Body)
		}
	}

	if got := store.ListMessages("ghost"); got != nil {
		t.Fatalf("unknown room should list nothing, got %v", got)
	}
}

func TestStoreListMessagesPage(t *testing.T) {
	store := NewMessageStore()
	for _, body := range []string{"1", "2", "3", "4", "5"} {
		store.CreateMessage("r1", "alice", "Alice", body)
	}

	page := store.ListMessagesPage("r1", 2, 0)
	if len(page) != 2 || page[0].Body != "4" || page[1].Body != "5" {
		t.Fatalf("latest page wrong: %v", bodies(page))
	}

	page = store.ListMessagesPage("r1", 2, 2)
	if len(page) != 2 || page[0].Body != "2" || page[1].Body != "3" {
		t.Fatalf("second page wrong: %v", bodies(page))
	}

	page = store.ListMessagesPage("r1", 2, 4)
	if len(page) != 1 || page[0].Body != "1" {
		t.Fatalf("last page wrong: %v", bodies(page))
	}

	if got := store.ListMessagesPage("r1", 2, 5); got != nil {
		t.Fatalf("offset past history should be empty, got %v", bodies(got))
	}
	if got := store.ListMessagesPage("r1", 0, 0); got != nil {
		t.Fatalf("zero limit should be empty, got %v", bodies(got))
	}
}

func bodies(msgs []*Message) []string {
	out := make([]string, len(msgs))
	for i, msg := range msgs {
		out[i] = msg.Body
	}
	return out
}
