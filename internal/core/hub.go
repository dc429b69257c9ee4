package core

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type dispatch struct {
	client *Client
	cmd    *Command
}

// Hub is the broadcast router: it owns the membership registry and the
// message store, applies client commands to them, and fans the resulting
// events out to the affected room's members.
type Hub struct {
	mu       sync.Mutex
	registry *Registry
	store    *MessageStore

	commands chan dispatch
	done     chan struct{}

	log     *zerolog.Logger
	metrics *hubMetrics
}

// NewHub constructs a hub with empty state. promRegistry may be nil, in
// which case metrics are collected but not registered anywhere.
func NewHub(logger *zerolog.Logger, promRegistry prometheus.Registerer) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		registry: NewRegistry(),
		store:    NewMessageStore(),
		commands: make(chan dispatch, 64),
		done:     make(chan struct{}),
		log:      logger,
		metrics:  newHubMetrics(promRegistry),
	}
}

// Run consumes commands until ctx is cancelled. Commands from every
// registered client funnel through this single loop, so per-recipient
// delivery order matches the order commands were applied.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return
		case d := <-h.commands:
			h.Dispatch(d.client, d.cmd)
		}
	}
}

// RegisterClient starts pumping the client's command channel into the hub
// loop. When the channel is closed, a disconnect command is queued behind
// whatever is still buffered so cleanup cannot overtake earlier commands.
func (h *Hub) RegisterClient(c *Client) {
	go func() {
		for {
			select {
			case cmd, ok := <-c.Commands:
				if !ok {
					h.enqueue(c, &Command{Kind: CommandDisconnect})
					return
				}
				if !h.enqueue(c, cmd) {
					return
				}
			case <-h.done:
				return
			}
		}
	}()
}

func (h *Hub) enqueue(c *Client, cmd *Command) bool {
	select {
	case h.commands <- dispatch{client: c, cmd: cmd}:
		return true
	case <-h.done:
		return false
	}
}

// UnregisterClient ends the client's session and triggers membership
// cleanup. The caller must not write to the client's command channel
// afterwards.
func (h *Hub) UnregisterClient(c *Client) {
	close(c.Commands)
}

// Dispatch applies a single command and fans out the resulting event, if
// any. It is safe to call directly by callers that serialize commands
// themselves; Run uses it for everything arriving via RegisterClient.
func (h *Hub) Dispatch(c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandJoinRoom:
		h.handleJoin(c, cmd)
	case CommandSendMessage:
		h.handleSend(cmd)
	case CommandUpvote:
		h.handleUpvote(cmd)
	case CommandDisconnect:
		h.handleDisconnect(c)
	}
}

// handleJoin registers membership. Joining is silent: other members learn
// about a newcomer only when their first message arrives.
func (h *Hub) handleJoin(c *Client, cmd *Command) {
	h.mu.Lock()
	h.registry.Join(cmd.Room, cmd.UserID, cmd.Name, c)
	h.metrics.observeOccupancy(h.registry)
	h.mu.Unlock()

	h.log.Debug().
		Str("room", cmd.Room).
		Str("user_id", cmd.UserID).
		Msg("joined room")
}

func (h *Hub) handleSend(cmd *Command) {
	h.mu.Lock()
	member, ok := h.registry.Lookup(cmd.Room, cmd.UserID)
	if !ok {
		h.mu.Unlock()
		h.metrics.rejectedTotal.Inc()
		h.log.Debug().
			Str("room", cmd.Room).
			Str("user_id", cmd.UserID).
			Msg("dropped message from non-member")
		return
	}
	msg := h.store.CreateMessage(cmd.Room, cmd.UserID, member.Name, cmd.Body)
	targets := h.registry.MembersExcept(cmd.Room, cmd.UserID)
	h.mu.Unlock()

	h.metrics.messagesTotal.Inc()
	h.deliver(targets, &Event{
		Kind:   EventChatAdded,
		ChatID: msg.ID,
		Room:   msg.Room,
		Body:   msg.Body,
		Name:   msg.AuthorName,
	})
}

// handleUpvote records a vote and rebroadcasts the current count. A repeat
// vote is not an error: the count simply comes back unchanged. Membership
// is deliberately not checked here.
func (h *Hub) handleUpvote(cmd *Command) {
	h.mu.Lock()
	msg, ok := h.store.RecordUpvote(cmd.Room, cmd.UserID, cmd.ChatID)
	if !ok {
		h.mu.Unlock()
		h.metrics.rejectedTotal.Inc()
		h.log.Debug().
			Str("room", cmd.Room).
			Str("chat_id", cmd.ChatID).
			Msg("dropped upvote for unknown message")
		return
	}
	upvotes := msg.Upvotes()
	targets := h.registry.MembersExcept(cmd.Room, cmd.UserID)
	h.mu.Unlock()

	h.metrics.upvotesTotal.Inc()
	h.deliver(targets, &Event{
		Kind:    EventChatUpdated,
		ChatID:  msg.ID,
		Room:    msg.Room,
		Upvotes: upvotes,
	})
}

func (h *Hub) handleDisconnect(c *Client) {
	h.mu.Lock()
	h.registry.RemoveConnection(c)
	h.metrics.observeOccupancy(h.registry)
	h.mu.Unlock()

	h.log.Debug().Str("client_id", c.ID).Msg("connection removed")
}

// deliver pushes one event to each target. Targets are snapshotted under
// the hub lock by the caller; delivery itself runs outside it. A full or
// dead client buffer loses that one event and never affects the rest of
// the fan-out.
func (h *Hub) deliver(targets []*Client, event *Event) {
	for _, target := range targets {
		if target.trySend(event) {
			h.metrics.deliveredTotal.Inc()
		} else {
			h.metrics.droppedTotal.Inc()
			h.log.Warn().
				Str("client_id", target.ID).
				Msg("event dropped, slow consumer")
		}
	}
}

// History returns a page of the room's messages, oldest first within the
// page. offset 0 is the most recent page.
func (h *Hub) History(room string, limit, offset int) []*Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.store.ListMessagesPage(room, limit, offset)
}
