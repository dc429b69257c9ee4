package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type hubMetrics struct {
	activeRooms    prometheus.Gauge
	activeMembers  prometheus.Gauge
	messagesTotal  prometheus.Counter
	upvotesTotal   prometheus.Counter
	rejectedTotal  prometheus.Counter
	deliveredTotal prometheus.Counter
	droppedTotal   prometheus.Counter
}

func newHubMetrics(registry prometheus.Registerer) *hubMetrics {
	factory := promauto.With(registry)
	return &hubMetrics{
		activeRooms: factory.NewGauge(prometheus.GaugeOpts{
			Name: "voteroom_rooms_active",
			Help: "number of rooms with at least one member",
		}),
		activeMembers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "voteroom_members_active",
			Help: "total memberships across all rooms",
		}),
		messagesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "voteroom_messages_total",
			Help: "chat messages accepted",
		}),
		upvotesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "voteroom_upvotes_total",
			Help: "upvote commands accepted, including redundant ones",
		}),
		rejectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "voteroom_commands_rejected_total",
			Help: "commands dropped for referencing an unknown room, member or message",
		}),
		deliveredTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "voteroom_events_delivered_total",
			Help: "events queued to client buffers",
		}),
		droppedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "voteroom_events_dropped_total",
			Help: "events dropped because a client buffer was full",
		}),
	}
}

func (m *hubMetrics) observeOccupancy(registry *Registry) {
	m.activeRooms.Set(float64(registry.RoomCount()))
	m.activeMembers.Set(float64(registry.MemberCount()))
}
