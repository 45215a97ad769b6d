package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ApplicationReceivedEvent struct {
	Type      string `json:"type"`
	JobTitle  string `json:"jobTitle"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the application flow: one event per new
// application, delivered only to the posting company's sockets.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyApplicationReceived(companyID uuid.UUID, jobTitle, userID string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := ApplicationReceivedEvent{
		Type:      "application_received",
		JobTitle:  jobTitle,
		UserID:    userID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(companyID, b)
}
