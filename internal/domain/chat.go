package domain

import "time"

const (
	ChatSenderUser = "user"
	ChatSenderBot  = "ai"
)

// ChatMessage is one entry of the customer-service transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
