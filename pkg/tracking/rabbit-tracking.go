package tracking

import (
	"net/http"

	"github.com/matst80/slask-photos/pkg/messaging"
	"github.com/matst80/slask-photos/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitTracking struct {
	library    string
	connection *amqp.Connection
}

const trackingTopic = messaging.ChangeTopic("tracking")

func NewRabbitTracking(url, library string) (*RabbitTracking, error) {
	ret := RabbitTracking{
		library: library,
	}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, t.library, trackingTopic)
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.SendChange(t.connection, t.library, trackingTopic, data)
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Library   string `json:"library,omitempty"`
	Event     uint16 `json:"event"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

type FilterEvent struct {
	*BaseEvent
	Filters     *types.FilterState `json:"filters,omitempty"`
	ResultCount int                `json:"results"`
}

type SearchEvent struct {
	*BaseEvent
	Query       string `json:"query"`
	ResultCount int    `json:"results"`
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) error {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.RemoteAddr
	}
	return t.send(SessionEvent{
		BaseEvent: &BaseEvent{SessionId: sessionId, Library: t.library, Event: 1},
		UserAgent: r.UserAgent(),
		Ip:        ip,
		Language:  r.Header.Get("Accept-Language"),
	})
}

func (t *RabbitTracking) TrackFilter(sessionId string, filters *types.FilterState, resultCount int) error {
	return t.send(FilterEvent{
		BaseEvent:   &BaseEvent{SessionId: sessionId, Library: t.library, Event: 2},
		Filters:     filters,
		ResultCount: resultCount,
	})
}

func (t *RabbitTracking) TrackSearch(sessionId string, query string, resultCount int) error {
	return t.send(SearchEvent{
		BaseEvent:   &BaseEvent{SessionId: sessionId, Library: t.library, Event: 3},
		Query:       query,
		ResultCount: resultCount,
	})
}
