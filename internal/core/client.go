package core

// Client is the core's view of one live connection. It carries no user
// identity of its own: identities arrive per command at join time, and a
// single client may hold memberships in several rooms.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with buffered command and event channels.
func NewClient(id string, buffer int) *Client {
	if buffer <= 0 {
		buffer = 8
	}
	return &Client{
		ID:       id,
		Commands: make(chan *Command, buffer),
		Events:   make(chan *Event, buffer),
	}
}

// trySend queues an event without blocking. Returns false if the client's
// event buffer is full (slow consumer) and the event was dropped.
func (c *Client) trySend(event *Event) bool {
	select {
	case c.Events <- event:
		return true
	default:
		return false
	}
}
