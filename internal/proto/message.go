package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

const (
	InboundTypeJoinRoom      = "JOIN_ROOM"
	InboundTypeSendMessage   = "SEND_MESSAGE"
	InboundTypeUpvoteMessage = "UPVOTE_MESSAGE"

	OutboundTypeAddChat    = "ADD_CHAT"
	OutboundTypeUpdateChat = "UPDATE_CHAT"
)

// JoinRoomPayload announces an identity entering a room.
type JoinRoomPayload struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
	RoomID string `json:"roomId"`
}

// SendMessagePayload is a chat message from the client.
type SendMessagePayload struct {
	UserID  string `json:"userId"`
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
}

// UpvoteMessagePayload upvotes an existing chat message.
type UpvoteMessagePayload struct {
	UserID string `json:"userId"`
	RoomID string `json:"roomId"`
	ChatID string `json:"chatId"`
}

// Outbound is the envelope for messages pushed to clients.
type Outbound struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// AddChatPayload notifies room members about a new chat message.
type AddChatPayload struct {
	ChatID  string `json:"chatId"`
	RoomID  string `json:"roomId"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Upvotes int    `json:"upvotes"`
}

// UpdateChatPayload notifies room members about a changed upvote count.
type UpdateChatPayload struct {
	ChatID  string `json:"chatId"`
	RoomID  string `json:"roomId"`
	Upvotes int    `json:"upvotes"`
}
