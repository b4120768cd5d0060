package events

import (
	"testing"
	"time"
)

func recv(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestSubscribeReceivesMatchingTopic(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(TopicBills)
	defer cancel()

	bus.Publish(Event{Topic: TopicBills, Action: "created", EntityID: "BILL-1"})

	evt := recv(t, ch)
	if evt.EntityID != "BILL-1" || evt.Action != "created" {
		t.Fatalf("unexpected event: %+v", evt)
	}
	if evt.At.IsZero() {
		t.Fatal("expected timestamp to be stamped")
	}
}

func TestSubscribeFiltersOtherTopics(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(TopicItems)
	defer cancel()

	bus.Publish(Event{Topic: TopicBills, Action: "created", EntityID: "BILL-1"})
	bus.Publish(Event{Topic: TopicItems, Action: "updated", EntityID: "s1"})

	evt := recv(t, ch)
	if evt.Topic != TopicItems {
		t.Fatalf("expected items event, got %s", evt.Topic)
	}
}

func TestEmptyTopicListMeansAll(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(Event{Topic: TopicDealers, Action: "deleted", EntityID: "d1"})
	if evt := recv(t, ch); evt.Topic != TopicDealers {
		t.Fatalf("expected dealers event, got %s", evt.Topic)
	}
}

func TestCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(TopicBills)
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}

	// publishing after cancel must not panic
	bus.Publish(Event{Topic: TopicBills, Action: "created", EntityID: "BILL-2"})
}

func TestSlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe(TopicBills)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			bus.Publish(Event{Topic: TopicBills, Action: "created", EntityID: "BILL-x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}
