package domain

import (
	"strings"
	"time"
)

// InviteCodeAlphabet excludes 0, O, 1 and I.
const InviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// DefaultInviteTTL applies when an admin does not pass expires_in_days.
const DefaultInviteTTL = 7 * 24 * time.Hour

type InviteCode struct {
	ID                   string
	Code                 string // XXXX-XXXX
	Email                string // optional restriction, lower-cased
	ExpiresAt            time.Time
	Used                 bool
	UsedAt               *time.Time
	UsedBy               string
	RecommendedPlan      string
	EngagementLetterPath string
	CreatedBy            string
	CreatedAt            time.Time
}

// Why an invite code fails validation.
type InviteRejection string

const (
	InviteNotFound      InviteRejection = "not_found"
	InviteUsed          InviteRejection = "used"
	InviteExpired       InviteRejection = "expired"
	InviteEmailMismatch InviteRejection = "email_mismatch"
)

// Check returns the reason the invite cannot be redeemed by email at now, or
// "" when it can. An empty email skips the restriction check.
func (i InviteCode) Check(email string, now time.Time) InviteRejection {
	switch {
	case i.Used:
		return InviteUsed
	case i.ExpiresAt.Before(now):
		return InviteExpired
	case i.Email != "" && email != "" && !strings.EqualFold(i.Email, strings.TrimSpace(email)):
		return InviteEmailMismatch
	}
	return ""
}

// NormalizeInviteCode upper-cases and trims user input.
func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
