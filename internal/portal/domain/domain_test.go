package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInviteCheck(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	base := InviteCode{Code: "ABCD-EFGH", ExpiresAt: now.Add(time.Hour)}

	restricted := base
	restricted.Email = "ada@example.com"
	used := base
	used.Used = true
	expired := base
	expired.ExpiresAt = now.Add(-time.Second)
	usedAndExpired := expired
	usedAndExpired.Used = true

	tests := []struct {
		name  string
		inv   InviteCode
		email string
		want  InviteRejection
	}{
		{"open", base, "anyone@example.com", ""},
		{"restricted match", restricted, "Ada@Example.com ", ""},
		{"restricted without email", restricted, "", ""},
		{"restricted mismatch", restricted, "bob@example.com", InviteEmailMismatch},
		{"used", used, "", InviteUsed},
		{"expired", expired, "", InviteExpired},
		{"used wins over expired", usedAndExpired, "", InviteUsed},
		{"expires exactly now", InviteCode{ExpiresAt: now}, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.inv.Check(tc.email, now))
		})
	}
}

func TestNormalizeInviteCode(t *testing.T) {
	require.Equal(t, "ABCD-EFGH", NormalizeInviteCode("  abcd-efgh\n"))
}

func TestRetentionDeadline(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2033, 3, 14, 9, 30, 0, 0, time.UTC), RetentionDeadline(at))
}

func TestChecklists(t *testing.T) {
	required := func(items []ChecklistItem) map[DocumentType]bool {
		m := map[DocumentType]bool{}
		for _, it := range items {
			m[it.Type] = it.Required
		}
		return m
	}

	admin := required(AdminChecklist)
	require.Len(t, admin, 8)
	require.False(t, admin[DocTaxIDEIN])
	require.False(t, admin[DocTaxIDSSN])
	require.True(t, admin[DocEngagementLetter])

	signup := required(SignupChecklist)
	require.Len(t, signup, 8)
	require.True(t, signup[DocTaxIDEIN])
	require.True(t, signup[DocTaxIDSSN])
	require.False(t, signup[DocArticlesOfIncorporation])
}

func TestOnboardingStatusValid(t *testing.T) {
	require.True(t, OnboardingInProgress.Valid())
	require.False(t, OnboardingStatus("done").Valid())
	require.True(t, RoleAdmin.Valid())
	require.False(t, Role("owner").Valid())
}
