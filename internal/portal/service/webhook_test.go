package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

const calendarPush = `{
  "summary": "Tax planning call",
  "attendees": [
    {"email": "firm@example.com", "organizer": true},
    {"email": "ada@example.com", "displayName": "Ada Lovelace"}
  ],
  "start": {"dateTime": "2026-03-20T15:00:00-04:00", "timeZone": "America/New_York"},
  "end": {"dateTime": "2026-03-20T15:30:00-04:00", "timeZone": "America/New_York"},
  "hangoutLink": "https://meet.example.com/abc"
}`

const inviteeCreated = `{
  "event": "invitee.created",
  "payload": {
    "name": "Grace Hopper",
    "email": "grace@example.com",
    "timezone": "America/Chicago",
    "scheduled_event": {
      "name": "Onboarding",
      "start_time": "2026-03-21T14:00:00Z",
      "end_time": "2026-03-21T14:30:00Z",
      "location": {"join_url": "https://zoom.example.com/j/1"}
    }
  }
}`

const bookingCreated = `{
  "triggerEvent": "BOOKING_CREATED",
  "payload": {
    "title": "Quarterly review",
    "startTime": "2026-03-22T10:00:00Z",
    "endTime": "2026-03-22T11:00:00Z",
    "attendees": [{"name": "Alan Turing", "email": "alan@example.com", "timeZone": "Europe/London"}],
    "metadata": {"videoCallUrl": "https://video.example.com/q"}
  }
}`

func TestParseMeeting(t *testing.T) {
	tests := []struct {
		name string
		body string
		want domain.Meeting
	}{
		{"calendar push", calendarPush, domain.Meeting{
			Title: "Tax planning call", AttendeeName: "Ada Lovelace", AttendeeEmail: "ada@example.com",
			Start:    time.Date(2026, 3, 20, 19, 0, 0, 0, time.UTC),
			End:      time.Date(2026, 3, 20, 19, 30, 0, 0, time.UTC),
			Timezone: "America/New_York", MeetingURL: "https://meet.example.com/abc", Source: SourceCalendar,
		}},
		{"invitee created", inviteeCreated, domain.Meeting{
			Title: "Onboarding", AttendeeName: "Grace Hopper", AttendeeEmail: "grace@example.com",
			Start:    time.Date(2026, 3, 21, 14, 0, 0, 0, time.UTC),
			End:      time.Date(2026, 3, 21, 14, 30, 0, 0, time.UTC),
			Timezone: "America/Chicago", MeetingURL: "https://zoom.example.com/j/1", Source: SourceInvitee,
		}},
		{"booking created", bookingCreated, domain.Meeting{
			Title: "Quarterly review", AttendeeName: "Alan Turing", AttendeeEmail: "alan@example.com",
			Start:    time.Date(2026, 3, 22, 10, 0, 0, 0, time.UTC),
			End:      time.Date(2026, 3, 22, 11, 0, 0, 0, time.UTC),
			Timezone: "Europe/London", MeetingURL: "https://video.example.com/q", Source: SourceBooking,
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, ok, err := ParseMeeting([]byte(tc.body))
			require.NoError(t, err)
			require.True(t, ok)
			require.True(t, tc.want.Start.Equal(m.Start), "start %s", m.Start)
			require.True(t, tc.want.End.Equal(m.End), "end %s", m.End)
			m.Start, m.End = tc.want.Start, tc.want.End
			require.Equal(t, tc.want, m)
		})
	}
}

func TestParseMeetingUnknownShape(t *testing.T) {
	_, ok, err := ParseMeeting([]byte(`{"event":"invitee.canceled","payload":{}}`))
	require.NoError(t, err)
	require.False(t, ok)

	var inv *InvalidError
	_, _, err = ParseMeeting([]byte(`not json`))
	require.ErrorAs(t, err, &inv)
}

func TestWebhookSignature(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	svc := &WebhookService{Secret: "whsec", Now: func() time.Time { return now }}
	body := []byte(bookingCreated)

	require.NoError(t, svc.Verify(SignWebhook("whsec", now, body), body))
	require.NoError(t, svc.Verify(SignWebhook("whsec", now.Add(-4*time.Minute), body), body))

	require.ErrorIs(t, svc.Verify("", body), ErrBadSignature)
	require.ErrorIs(t, svc.Verify(SignWebhook("other", now, body), body), ErrBadSignature)
	require.ErrorIs(t, svc.Verify(SignWebhook("whsec", now, body), []byte(`{}`)), ErrBadSignature)
	require.ErrorIs(t, svc.Verify(SignWebhook("whsec", now.Add(-6*time.Minute), body), body), ErrBadSignature)
	require.ErrorIs(t, svc.Verify("t=abc,v1=00", body), ErrBadSignature)

	open := &WebhookService{}
	require.NoError(t, open.Verify("", body))
}

func TestWebhookHandleQueuesConfirmation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	svc := &WebhookService{Notify: e.notify}

	res, err := svc.Handle(ctx, "", []byte(inviteeCreated))
	require.NoError(t, err)
	require.False(t, res.Ignored)
	require.Len(t, res.NotificationIDs, 2)

	outbox := pendingOutbox(t, e.store, e.clock.Now())
	require.Equal(t, 2, countKind(outbox, domain.NotifyMeetingScheduled))

	res, err = svc.Handle(ctx, "", []byte(`{"hello":"world"}`))
	require.NoError(t, err)
	require.True(t, res.Ignored)
}

func TestWebhookHandleAcknowledgesMalformedPayloads(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	svc := &WebhookService{Notify: e.notify}

	bodies := []string{
		`not json`,
		`{"event":"invitee.created","payload":"not an object"}`,
		`{"triggerEvent":"BOOKING_CREATED","payload":[1,2,3]}`,
	}
	for _, body := range bodies {
		res, err := svc.Handle(ctx, "", []byte(body))
		require.NoError(t, err, body)
		require.True(t, res.Ignored, body)
		require.Empty(t, res.NotificationIDs, body)
	}
	require.Empty(t, pendingOutbox(t, e.store, e.clock.Now()))
}
