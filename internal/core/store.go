package core

import "strconv"

// Message is an immutable posted chat item plus the set of identities
// that upvoted it. AuthorName is captured at creation time and does not
// follow later renames.
type Message struct {
	ID         string
	Room       string
	AuthorID   string
	AuthorName string
	Body       string
	voters     map[string]struct{}
}

// Upvotes returns the number of distinct identities that upvoted.
func (m *Message) Upvotes() int {
	return len(m.voters)
}

// HasVoted reports whether the given identity already upvoted.
func (m *Message) HasVoted(userID string) bool {
	_, ok := m.voters[userID]
	return ok
}

type roomHistory struct {
	chats []*Message
	byID  map[string]*Message
}

// MessageStore owns every room's message history. Like the registry it is
// unsynchronized; the hub serializes all access. A room's history is kept
// even after its last member leaves.
type MessageStore struct {
	nextID int64
	rooms  map[string]*roomHistory
}

// NewMessageStore constructs an empty message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{nextID: 1, rooms: make(map[string]*roomHistory)}
}

// CreateMessage appends a new message to the room's history, creating the
// room entry if absent. Ids are unique for the process lifetime, across
// rooms.
func (s *MessageStore) CreateMessage(room, authorID, authorName, body string) *Message {
	history, ok := s.rooms[room]
	if !ok {
		history = &roomHistory{byID: make(map[string]*Message)}
		s.rooms[room] = history
	}

	msg := &Message{
		ID:         strconv.FormatInt(s.nextID, 10),
		Room:       room,
		AuthorID:   authorID,
		AuthorName: authorName,
		Body:       body,
		voters:     make(map[string]struct{}),
	}
	s.nextID++

	history.chats = append(history.chats, msg)
	history.byID[msg.ID] = msg
	return msg
}

// RecordUpvote adds voterID to the message's voter set. A repeat vote by
// the same identity leaves the set unchanged; the message is still
// returned so callers can rebroadcast the current count. Returns false if
// the room or message does not exist.
func (s *MessageStore) RecordUpvote(room, voterID, chatID string) (*Message, bool) {
	msg, ok := s.GetMessage(room, chatID)
	if !ok {
		return nil, false
	}
	msg.voters[voterID] = struct{}{}
	return msg, true
}

// GetMessage finds a message by id within a room.
func (s *MessageStore) GetMessage(room, chatID string) (*Message, bool) {
	history, ok := s.rooms[room]
	if !ok {
		return nil, false
	}
	msg, ok := history.byID[chatID]
	return msg, ok
}

// ListMessages returns the room's messages in insertion order. The slice
// is a copy; the messages are not.
func (s *MessageStore) ListMessages(room string) []*Message {
	history, ok := s.rooms[room]
	if !ok {
		return nil
	}
	out := make([]*Message, len(history.chats))
	copy(out, history.chats)
	return out
}

// ListMessagesPage returns up to limit messages ending offset entries
// before the newest, oldest first. offset 0 yields the most recent page.
func (s *MessageStore) ListMessagesPage(room string, limit, offset int) []*Message {
	history, ok := s.rooms[room]
	if !ok || limit <= 0 || offset < 0 {
		return nil
	}
	end := len(history.chats) - offset
	if end <= 0 {
		return nil
	}
	start := end - limit
	if start < 0 {
		start = 0
	}
	out := make([]*Message, end-start)
	copy(out, history.chats[start:end])
	return out
}
