package core

// Member is the association of a user identity with a room and the live
// connection it arrived on.
type Member struct {
	UserID string
	Name   string
	Client *Client
}

// Registry tracks which identities are present in which rooms. It does no
// locking of its own; the hub serializes all access.
type Registry struct {
	rooms map[string]map[string]*Member // room -> userID -> member
}

// NewRegistry constructs an empty membership registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]map[string]*Member)}
}

// Join adds (room, userID) as a member, creating the room entry if absent.
// Rejoining with an identity that is already present refreshes the stored
// client handle so a reconnect takes over delivery, but changes nothing
// else.
func (r *Registry) Join(room, userID, name string, client *Client) {
	members, ok := r.rooms[room]
	if !ok {
		members = make(map[string]*Member)
		r.rooms[room] = members
	}
	if existing, ok := members[userID]; ok {
		existing.Client = client
		return
	}
	members[userID] = &Member{UserID: userID, Name: name, Client: client}
}

// Leave removes the member and drops the room entry once it is empty.
func (r *Registry) Leave(room, userID string) {
	members, ok := r.rooms[room]
	if !ok {
		return
	}
	delete(members, userID)
	if len(members) == 0 {
		delete(r.rooms, room)
	}
}

// Lookup returns the member for (room, userID), or false if either the
// room or the identity is unknown.
func (r *Registry) Lookup(room, userID string) (*Member, bool) {
	members, ok := r.rooms[room]
	if !ok {
		return nil, false
	}
	member, ok := members[userID]
	return member, ok
}

// RemoveConnection purges every membership held by the given client, in
// any room, dropping rooms left empty. Safe to call for a client with no
// memberships.
func (r *Registry) RemoveConnection(client *Client) {
	for room, members := range r.rooms {
		for userID, member := range members {
			if member.Client == client {
				delete(members, userID)
			}
		}
		if len(members) == 0 {
			delete(r.rooms, room)
		}
	}
}

// MembersExcept returns the client handles of every member in the room,
// skipping exceptUserID if non-empty. Order is unspecified.
func (r *Registry) MembersExcept(room, exceptUserID string) []*Client {
	members, ok := r.rooms[room]
	if !ok {
		return nil
	}
	targets := make([]*Client, 0, len(members))
	for userID, member := range members {
		if exceptUserID != "" && userID == exceptUserID {
			continue
		}
		targets = append(targets, member.Client)
	}
	return targets
}

// RoomCount reports how many rooms currently have at least one member.
func (r *Registry) RoomCount() int {
	return len(r.rooms)
}

// MemberCount reports the total number of memberships across all rooms.
func (r *Registry) MemberCount() int {
	n := 0
	for _, members := range r.rooms {
		n += len(members)
	}
	return n
}
