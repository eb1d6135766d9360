package services

import (
	"sync"
	"time"
)

// Operations-hub event types. These are transient coordination traffic
// between responders; they are never persisted.

type Alert struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

type Notification struct {
	ID            int       `json:"id"`
	RecipientType string    `json:"recipientType"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
}

type Message struct {
	MessageID int       `json:"messageId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// HubEvent is the fan-out envelope.
type HubEvent struct {
	Alert        *Alert        `json:"alert,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
	Message      *Message      `json:"message,omitempty"`
}

// Hub distributes alerts, notifications and messages to in-process
// subscribers and keeps the sent history per kind. Sends are non-blocking.
type Hub struct {
	mu            sync.Mutex
	subscribers   map[chan HubEvent]bool
	alerts        []Alert
	notifications []Notification
	messages      []Message
	nextID        int
}

func NewHub() *Hub {
	return &Hub{
		subscribers: map[chan HubEvent]bool{},
		nextID:      1,
	}
}

func (h *Hub) Subscribe() chan HubEvent {
	sub := make(chan HubEvent, 16)
	h.mu.Lock()
	h.subscribers[sub] = true
	h.mu.Unlock()
	return sub
}

func (h *Hub) Unsubscribe(sub chan HubEvent) {
	h.mu.Lock()
	delete(h.subscribers, sub)
	h.mu.Unlock()
}

// SendAlert broadcasts an emergency alert and returns it with its id and
// timestamp filled in.
func (h *Hub) SendAlert(alertType, location, details string) Alert {
	h.mu.Lock()
	alert := Alert{
		ID:        h.nextID,
		Type:      alertType,
		Location:  location,
		Details:   details,
		Timestamp: nowUTC(),
	}
	h.nextID++
	h.alerts = append(h.alerts, alert)
	h.fanOut(HubEvent{Alert: &alert})
	h.mu.Unlock()
	return alert
}

func (h *Hub) SendNotification(recipientType, title, content string) Notification {
	h.mu.Lock()
	notification := Notification{
		ID:            h.nextID,
		RecipientType: recipientType,
		Title:         title,
		Content:       content,
		Timestamp:     nowUTC(),
	}
	h.nextID++
	h.notifications = append(h.notifications, notification)
	h.fanOut(HubEvent{Notification: &notification})
	h.mu.Unlock()
	return notification
}

func (h *Hub) SendMessage(from, to, subject, content string) Message {
	h.mu.Lock()
	message := Message{
		MessageID: h.nextID,
		From:      from,
		To:        to,
		Subject:   subject,
		Content:   content,
		Timestamp: nowUTC(),
	}
	h.nextID++
	h.messages = append(h.messages, message)
	h.fanOut(HubEvent{Message: &message})
	h.mu.Unlock()
	return message
}

// fanOut delivers to every subscriber without blocking. Caller holds the lock.
func (h *Hub) fanOut(event HubEvent) {
	for sub := range h.subscribers {
		select {
		case sub <- event:
		default:
		}
	}
}

func (h *Hub) SentAlerts() []Alert {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Alert{}, h.alerts...)
}

func (h *Hub) SentNotifications() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Notification{}, h.notifications...)
}

func (h *Hub) SentMessages() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Message{}, h.messages...)
}
