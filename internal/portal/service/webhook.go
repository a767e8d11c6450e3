package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
	"github.com/aussiebroadwan/clientportal/pkg/cryptox"
	"github.com/aussiebroadwan/clientportal/pkg/slogx"
)

var ErrBadSignature = errors.New("invalid webhook signature")

// DefaultSignatureTolerance bounds the age of a signed webhook.
const DefaultSignatureTolerance = 5 * time.Minute

// Meeting sources.
const (
	SourceCalendar = "calendar"
	SourceInvitee  = "invitee"
	SourceBooking  = "booking"
)

type WebhookResult struct {
	Ignored         bool
	Meeting         domain.Meeting
	NotificationIDs []string
}

// WebhookService accepts scheduling webhooks and confirms the meeting by
// email. With Secret set, requests must carry a valid signature.
type WebhookService struct {
	Notify    *NotificationService
	Secret    string
	Tolerance time.Duration
	Now       func() time.Time
}

func (s *WebhookService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *WebhookService) Handle(ctx context.Context, signature string, body []byte) (WebhookResult, error) {
	log := slogx.FromContext(ctx)

	if err := s.Verify(signature, body); err != nil {
		log.Warn("webhook signature rejected", slog.Any("error", err))
		return WebhookResult{}, err
	}

	m, ok, err := ParseMeeting(body)
	if err != nil {
		log.Warn("webhook payload malformed, ignoring", slog.Any("error", err))
		return WebhookResult{Ignored: true}, nil
	}
	if !ok {
		log.Info("webhook payload not recognised, ignoring")
		return WebhookResult{Ignored: true}, nil
	}
	if m.AttendeeEmail == "" {
		log.Info("webhook meeting has no attendee email, ignoring", slog.String("source", m.Source))
		return WebhookResult{Ignored: true, Meeting: m}, nil
	}

	ids, err := s.Notify.Meeting(ctx, m)
	if err != nil {
		return WebhookResult{}, err
	}
	log.Info("meeting scheduled", slog.String("source", m.Source), slog.Time("start", m.Start))
	return WebhookResult{Meeting: m, NotificationIDs: ids}, nil
}

// Verify checks a "t=<unix>,v1=<hex>" header against an HMAC-SHA256 of
// "<t>.<body>". It accepts anything when no secret is configured.
func (s *WebhookService) Verify(header string, body []byte) error {
	if s.Secret == "" {
		return nil
	}

	var ts, sig string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts = v
		case "v1":
			sig = v
		}
	}
	if ts == "" || sig == "" {
		return ErrBadSignature
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return ErrBadSignature
	}
	tolerance := s.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultSignatureTolerance
	}
	age := s.now().Sub(time.Unix(unix, 0))
	if age > tolerance || age < -tolerance {
		return ErrBadSignature
	}

	payload := make([]byte, 0, len(ts)+1+len(body))
	payload = append(payload, ts...)
	payload = append(payload, '.')
	payload = append(payload, body...)
	if !cryptox.VerifyHMAC(s.Secret, payload, sig) {
		return ErrBadSignature
	}
	return nil
}

// SignWebhook builds the header Verify accepts. Used by senders and tests.
func SignWebhook(secret string, at time.Time, body []byte) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	payload := append([]byte(ts+"."), body...)
	return "t=" + ts + ",v1=" + cryptox.SignHMAC(secret, payload)
}

type webhookBody struct {
	// Calendar push.
	Summary     string             `json:"summary"`
	Attendees   []calendarAttendee `json:"attendees"`
	Start       *calendarTime      `json:"start"`
	End         *calendarTime      `json:"end"`
	HangoutLink string             `json:"hangoutLink"`
	Location    string             `json:"location"`

	// Event envelopes.
	Event        string          `json:"event"`
	TriggerEvent string          `json:"triggerEvent"`
	Payload      json.RawMessage `json:"payload"`
}

type calendarAttendee struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Organizer   bool   `json:"organizer"`
	Self        bool   `json:"self"`
}

type calendarTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type inviteePayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Timezone       string `json:"timezone"`
	ScheduledEvent struct {
		Name      string `json:"name"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
		Location  struct {
			JoinURL string `json:"join_url"`
		} `json:"location"`
	} `json:"scheduled_event"`
}

type bookingPayload struct {
	Title     string `json:"title"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Attendees []struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		TimeZone string `json:"timeZone"`
	} `json:"attendees"`
	Metadata struct {
		VideoCallURL string `json:"videoCallUrl"`
	} `json:"metadata"`
}

// ParseMeeting normalizes the supported webhook shapes. ok is false for a
// well-formed payload of an unknown shape; err is set when the body or a
// recognised envelope's payload does not decode.
func ParseMeeting(body []byte) (domain.Meeting, bool, error) {
	var b webhookBody
	if err := json.Unmarshal(body, &b); err != nil {
		return domain.Meeting{}, false, invalid("invalid JSON payload")
	}

	switch {
	case len(b.Attendees) > 0 && b.Start != nil:
		return fromCalendar(b), true, nil

	case b.Event == "invitee.created":
		var p inviteePayload
		if err := json.Unmarshal(b.Payload, &p); err != nil {
			return domain.Meeting{}, false, invalid("invalid invitee payload")
		}
		return domain.Meeting{
			Title:         p.ScheduledEvent.Name,
			AttendeeName:  p.Name,
			AttendeeEmail: p.Email,
			Start:         parseTime(p.ScheduledEvent.StartTime),
			End:           parseTime(p.ScheduledEvent.EndTime),
			Timezone:      p.Timezone,
			MeetingURL:    p.ScheduledEvent.Location.JoinURL,
			Source:        SourceInvitee,
		}, true, nil

	case b.TriggerEvent == "BOOKING_CREATED":
		var p bookingPayload
		if err := json.Unmarshal(b.Payload, &p); err != nil {
			return domain.Meeting{}, false, invalid("invalid booking payload")
		}
		m := domain.Meeting{
			Title:      p.Title,
			Start:      parseTime(p.StartTime),
			End:        parseTime(p.EndTime),
			MeetingURL: p.Metadata.VideoCallURL,
			Source:     SourceBooking,
		}
		if len(p.Attendees) > 0 {
			m.AttendeeName = p.Attendees[0].Name
			m.AttendeeEmail = p.Attendees[0].Email
			m.Timezone = p.Attendees[0].TimeZone
		}
		return m, true, nil
	}
	return domain.Meeting{}, false, nil
}

func fromCalendar(b webhookBody) domain.Meeting {
	attendee := b.Attendees[0]
	for _, a := range b.Attendees {
		if !a.Organizer && !a.Self {
			attendee = a
			break
		}
	}

	m := domain.Meeting{
		Title:         b.Summary,
		AttendeeName:  attendee.DisplayName,
		AttendeeEmail: attendee.Email,
		Start:         parseTime(b.Start.DateTime),
		Timezone:      b.Start.TimeZone,
		MeetingURL:    b.HangoutLink,
		Source:        SourceCalendar,
	}
	if b.End != nil {
		m.End = parseTime(b.End.DateTime)
	}
	if m.MeetingURL == "" && strings.HasPrefix(b.Location, "http") {
		m.MeetingURL = b.Location
	}
	return m
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
