package domain

import "time"

// Identity is a login: the row an access token's subject refers to.
type Identity struct {
	ID           string
	Email        string // stored lower-cased
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
}
