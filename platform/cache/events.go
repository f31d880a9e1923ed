package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"
)

const maxEvents = 500

type Event struct {
	Name    string      `json:"name"`
	Payload interface{} `json:"payload"`
	At      int64       `json:"at"`
}

// EventLog appends every broadcast of a game to a capped Redis list so a
// client that reconnects can replay what it missed.
type EventLog struct {
	pool *redis.Pool
	log  logrus.FieldLogger
}

func NewEventLog(pool *redis.Pool, log logrus.FieldLogger) *EventLog {
	return &EventLog{pool: pool, log: log}
}

func eventsKey(gameID string) string {
	return fmt.Sprintf("%s.events", gameID)
}

func (e *EventLog) Broadcast(gameID, event string, payload interface{}) {
	data, err := json.Marshal(Event{Name: event, Payload: payload, At: time.Now().Unix()})
	if err != nil {
		e.log.WithError(err).WithField("event", event).Error("failed encoding event")
		return
	}
	conn := e.pool.Get()
	defer conn.Close()
	key := eventsKey(gameID)
	if err := RPUSH(key, []interface{}{data}, conn); err != nil {
		e.log.WithError(err).WithField("game_id", gameID).Error("failed storing event")
		return
	}
	if err := LTRIM(key, -maxEvents, -1, conn); err != nil {
		e.log.WithError(err).WithField("game_id", gameID).Warn("failed trimming events")
	}
}

// Recent returns up to n of the latest events of a game, oldest first.
func (e *EventLog) Recent(gameID string, n int) ([]Event, error) {
	conn := e.pool.Get()
	defer conn.Close()
	raw, err := LRANGE(eventsKey(gameID), -n, -1, conn)
	if err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(raw))
	for _, r := range raw {
		var ev Event
		if err := json.Unmarshal([]byte(r), &ev); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
