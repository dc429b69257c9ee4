package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinRoom registers the sender as a member of a room.
	CommandJoinRoom CommandKind = iota
	// CommandSendMessage posts a chat message to a room.
	CommandSendMessage
	// CommandUpvote records an upvote on an existing chat message.
	CommandUpvote
	// CommandDisconnect purges the sender's memberships. Issued internally
	// when a connection goes away, never by the client itself.
	CommandDisconnect
)

// Command represents an action requested by a client. Room and UserID are
// set on every client-issued command; Name only on join, Body only on
// send-message, ChatID only on upvote.
type Command struct {
	Kind   CommandKind
	Room   string
	UserID string
	Name   string
	Body   string
	ChatID string
}
