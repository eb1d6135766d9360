package services

import "testing"

func TestHubFanOutAndHistory(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	alert := hub.SendAlert("Flood Warning", "Brisbane", "River rising fast")
	if alert.ID == 0 || alert.Timestamp.IsZero() {
		t.Errorf("alert not stamped: %+v", alert)
	}
	notification := hub.SendNotification("All Agencies", "Briefing", "0900 at HQ")
	message := hub.SendMessage("Police", "Red Cross", "Shelter", "Need 40 beds")

	if alert.ID == notification.ID || notification.ID == message.MessageID {
		t.Error("event ids not distinct")
	}

	for i := 0; i < 3; i++ {
		select {
		case event := <-sub:
			if event.Alert == nil && event.Notification == nil && event.Message == nil {
				t.Error("empty hub event delivered")
			}
		default:
			t.Fatalf("expected 3 buffered events, got %d", i)
		}
	}

	if got := len(hub.SentAlerts()); got != 1 {
		t.Errorf("alert history = %d", got)
	}
	if got := len(hub.SentNotifications()); got != 1 {
		t.Errorf("notification history = %d", got)
	}
	if got := len(hub.SentMessages()); got != 1 {
		t.Errorf("message history = %d", got)
	}
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	// Overflow the subscriber buffer; sends must stay non-blocking.
	for i := 0; i < 40; i++ {
		hub.SendAlert("Aftershock", "Wellington", "repeat")
	}
	if got := len(hub.SentAlerts()); got != 40 {
		t.Errorf("alert history = %d, want 40", got)
	}
}
