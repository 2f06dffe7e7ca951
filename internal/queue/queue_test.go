package queue_test

import (
	"testing"
	"time"

	"github.com/unclebandit/contentcal-backend/internal/queue"
)

func TestPublishWithoutSubscribers(t *testing.T) {
	q := queue.NewInMemoryQueue()

	if err := q.Publish(queue.TopicCampaignEvents, "payload"); err == nil {
		t.Error("expected error when no subscribers are registered")
	}
}

func TestActivitySubscriberRecordsEvents(t *testing.T) {
	q := queue.NewInMemoryQueue()
	feed := queue.NewActivityLog(10)
	queue.StartActivitySubscriber(q, feed)

	events := []queue.CampaignEvent{
		{CampaignID: "c-1", Kind: "created", At: time.Now()},
		{CampaignID: "c-2", Kind: "transition", At: time.Now()},
	}
	for _, e := range events {
		if err := q.Publish(queue.TopicCampaignEvents, e); err != nil {
			t.Fatalf("publish failed: %v", err)
		}
	}

	recent := feed.Recent(10)
	if len(recent) != 2 {
		t.Fatalf("got %d events, want 2", len(recent))
	}
	// Newest first.
	if recent[0].CampaignID != "c-2" || recent[1].CampaignID != "c-1" {
		t.Errorf("wrong order: %+v", recent)
	}
}

func TestActivityLogBounded(t *testing.T) {
	feed := queue.NewActivityLog(3)
	for i := 0; i < 5; i++ {
		feed.Record(queue.CampaignEvent{CampaignID: "c", Kind: "updated", At: time.Now()})
	}

	if got := len(feed.Recent(10)); got != 3 {
		t.Errorf("feed holds %d events, want 3", got)
	}
}
