package http

import (
	"encoding/json"
	"fmt"

	"github.com/voteroom/voteroom-server/internal/core"
	"github.com/voteroom/voteroom-server/internal/proto"
)

var errUnknownType = fmt.Errorf("unknown inbound type")

// inboundToCommand maps a decoded envelope to a core command.
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinRoom:
		var join proto.JoinRoomPayload
		if err := json.Unmarshal(inbound.Payload, &join); err != nil {
			return nil, fmt.Errorf("decode join payload: %w", err)
		}
		return &core.Command{
			Kind:   core.CommandJoinRoom,
			Room:   join.RoomID,
			UserID: join.UserID,
			Name:   join.Name,
		}, nil
	case proto.InboundTypeSendMessage:
		var send proto.SendMessagePayload
		if err := json.Unmarshal(inbound.Payload, &send); err != nil {
			return nil, fmt.Errorf("decode send payload: %w", err)
		}
		return &core.Command{
			Kind:   core.CommandSendMessage,
			Room:   send.RoomID,
			UserID: send.UserID,
			Body:   send.Message,
		}, nil
	case proto.InboundTypeUpvoteMessage:
		var upvote proto.UpvoteMessagePayload
		if err := json.Unmarshal(inbound.Payload, &upvote); err != nil {
			return nil, fmt.Errorf("decode upvote payload: %w", err)
		}
		return &core.Command{
			Kind:   core.CommandUpvote,
			Room:   upvote.RoomID,
			UserID: upvote.UserID,
			ChatID: upvote.ChatID,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownType, inbound.Type)
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventChatAdded:
		return proto.Outbound{
			Type: proto.OutboundTypeAddChat,
			Payload: proto.AddChatPayload{
				ChatID:  event.ChatID,
				RoomID:  event.Room,
				Message: event.Body,
				Name:    event.Name,
				Upvotes: event.Upvotes,
			},
		}
	case core.EventChatUpdated:
		return proto.Outbound{
			Type: proto.OutboundTypeUpdateChat,
			Payload: proto.UpdateChatPayload{
				ChatID:  event.ChatID,
				RoomID:  event.Room,
				Upvotes: event.Upvotes,
			},
		}
	default:
		return proto.Outbound{}
	}
}
