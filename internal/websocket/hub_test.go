package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/event-manager/backend/internal/storage/models"
)

func TestHub_BroadcastReachesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)

	hub.Broadcast([]byte("hello"))

	select {
	case msg := <-client.Send():
		if string(msg) != "hello" {
			t.Errorf("got %q, want %q", msg, "hello")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}

	hub.Unregister(client)
	if _, ok := <-client.Send(); ok {
		t.Error("send channel should be closed after unregister")
	}
}

func TestBroadcaster_EventCreatedMessage(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub)
	hub.Register(client)

	b := NewEventBroadcaster(hub)
	b.EventCreated(models.Event{ID: "evt-1", Title: "Launch"})

	select {
	case raw := <-client.Send():
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("invalid message JSON: %v", err)
		}
		if msg.Type != TypeEventCreated {
			t.Errorf("type = %q, want %q", msg.Type, TypeEventCreated)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}
}

func TestBroadcaster_NilReceiverIsSafe(t *testing.T) {
	var b *EventBroadcaster

	// None of these may panic when broadcasting is disabled.
	b.EventCreated(models.Event{})
	b.EventDeleted("id")
	b.CommentAdded(models.Event{})
	b.ReminderAdded(models.Reminder{})
	b.ReminderFired(models.Reminder{}, models.Event{})
}
