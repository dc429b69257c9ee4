package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventChatAdded notifies room members about a new chat message.
	EventChatAdded EventKind = iota
	// EventChatUpdated notifies room members about a changed upvote count.
	EventChatUpdated
)

// Event is sent to clients to describe what happened in a room. Body and
// Name are only set on EventChatAdded.
type Event struct {
	Kind    EventKind
	ChatID  string
	Room    string
	Body    string
	Name    string
	Upvotes int
}
