package domain

import "time"

// Meeting is the provider-neutral form of a calendar booking.
type Meeting struct {
	Title         string
	AttendeeName  string
	AttendeeEmail string
	Start         time.Time
	End           time.Time
	Timezone      string
	MeetingURL    string
	Source        string // calendar, invitee, booking
}
