package queue

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// TopicCampaignEvents carries workflow transitions and reassignments.
const TopicCampaignEvents = "campaign_events"

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// CampaignEvent describes a change to a campaign or task, consumed by the
// activity feed.
type CampaignEvent struct {
	CampaignID string    `json:"campaign_id"`
	Kind       string    `json:"kind"`
	Detail     string    `json:"detail"`
	At         time.Time `json:"at"`
}

// InMemoryQueue is a minimal in-process pub/sub queue.
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// Publish sends a message to all subscribers
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		if err := handler(payload); err != nil {
			log.Printf("⚠️ handler for topic %s failed: %v\n", topic, err)
		}
	}
	return nil
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// ActivityLog is a bounded in-memory feed of recent campaign events,
// newest first.
type ActivityLog struct {
	mu     sync.Mutex
	events []CampaignEvent
	limit  int
}

func NewActivityLog(limit int) *ActivityLog {
	if limit < 1 {
		limit = 50
	}
	return &ActivityLog{limit: limit}
}

func (l *ActivityLog) Record(e CampaignEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append([]CampaignEvent{e}, l.events...)
	if len(l.events) > l.limit {
		l.events = l.events[:l.limit]
	}
}

// Recent returns up to n events, newest first.
func (l *ActivityLog) Recent(n int) []CampaignEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.events) {
		n = len(l.events)
	}
	out := make([]CampaignEvent, n)
	copy(out, l.events[:n])
	return out
}

// StartActivitySubscriber routes campaign events into the feed.
func StartActivitySubscriber(q Queue, feed *ActivityLog) {
	err := q.Subscribe(TopicCampaignEvents, func(payload any) error {
		event, ok := payload.(CampaignEvent)
		if !ok {
			log.Println("⚠️ Invalid payload type, expected CampaignEvent")
			return nil
		}
		feed.Record(event)
		return nil
	})
	if err != nil {
		log.Println("⚠️ Failed to start subscriber for campaign_events:", err)
	}
}
