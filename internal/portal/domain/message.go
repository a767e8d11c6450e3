package domain

import "time"

type SenderType string

const (
	SenderAdmin  SenderType = "admin"
	SenderClient SenderType = "client"
)

type Message struct {
	ID        string
	ClientID  string
	SenderID  string
	Body      string
	Read      bool
	CreatedAt time.Time
}
