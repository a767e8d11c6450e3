package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"text/template"

	"github.com/aussiebroadwan/clientportal/internal/portal/domain"
)

type tmpl struct {
	subject *template.Template
	body    *template.Template
}

func mustTmpl(kind domain.NotificationKind, subject, body string) tmpl {
	name := string(kind)
	return tmpl{
		subject: template.Must(template.New(name + ".subject").Option("missingkey=zero").Parse(subject)),
		body:    template.Must(template.New(name + ".body").Option("missingkey=zero").Parse(body)),
	}
}

var templates = map[domain.NotificationKind]tmpl{
	domain.NotifyInvite: mustTmpl(domain.NotifyInvite,
		`You're invited to the client portal`,
		`You have been invited to join our client portal.

Your invite code is {{.code}}. It expires on {{.expires_at}}.
{{if .recommended_plan}}We recommend the {{.recommended_plan}} plan for your business.
{{end}}
Create your account at {{.signup_url}}
`),
	domain.NotifyWelcome: mustTmpl(domain.NotifyWelcome,
		`Welcome to the client portal`,
		`Hi {{.name}},

Your client portal account is ready. Sign in with {{.email}}.
{{if .temporary_password}}Your temporary password is {{.temporary_password}}. Please change it after signing in.
{{end}}
{{.login_url}}
`),
	domain.NotifyDocumentApproved: mustTmpl(domain.NotifyDocumentApproved,
		`Document approved: {{.document_type}}`,
		`Hi {{.name}},

Your {{.document_type}} document has been approved. No further action is needed.

{{.dashboard_url}}
`),
	domain.NotifyDocumentRejected: mustTmpl(domain.NotifyDocumentRejected,
		`Action needed: {{.document_type}}`,
		`Hi {{.name}},

Your {{.document_type}} document could not be accepted.
{{if .reason}}Reason: {{.reason}}
{{end}}
Please upload a new copy at {{.dashboard_url}}
`),
	domain.NotifyMessageToClient: mustTmpl(domain.NotifyMessageToClient,
		`New message from your accountant`,
		`Hi {{.name}},

You have a new message in the client portal.
{{if .preview}}
"{{.preview}}"
{{end}}
Read and reply at {{.dashboard_url}}
`),
	domain.NotifyMessageToAdmin: mustTmpl(domain.NotifyMessageToAdmin,
		`New message from {{.client_name}}`,
		`{{.client_name}} sent a new message.
{{if .preview}}
"{{.preview}}"
{{end}}
{{.dashboard_url}}
`),
	domain.NotifyReportUploaded: mustTmpl(domain.NotifyReportUploaded,
		`New report available: {{.report_name}}`,
		`Hi {{.name}},

A new report, {{.report_name}}{{if .period}} for {{.period}}{{end}}, is available in your portal.

{{.dashboard_url}}
`),
	domain.NotifyOnboardingComplete: mustTmpl(domain.NotifyOnboardingComplete,
		`Onboarding complete: {{.client_name}}`,
		`{{.client_name}} ({{.client_email}}) has completed onboarding.

{{.dashboard_url}}
`),
	domain.NotifyClientSignedUp: mustTmpl(domain.NotifyClientSignedUp,
		`New client signup: {{.client_name}}`,
		`{{.client_name}} ({{.client_email}}) created an account with invite {{.code}}.
{{if .plan_id}}Recommended plan: {{.plan_id}}
{{end}}
{{.dashboard_url}}
`),
	domain.NotifyMeetingScheduled: mustTmpl(domain.NotifyMeetingScheduled,
		`Meeting scheduled{{if .start}} for {{.start}}{{end}}`,
		`Hi {{.attendee_name}},

Your meeting is confirmed{{if .start}} for {{.start}}{{if .timezone}} ({{.timezone}}){{end}}{{end}}.
{{if .meeting_url}}
Join at {{.meeting_url}}
{{end}}`),
}

var htmlLayout = htmltemplate.Must(htmltemplate.New("layout").Parse(
	`<!DOCTYPE html><html><body style="font-family:sans-serif">{{range .}}<p>{{.}}</p>{{end}}</body></html>`))

// Render builds the email for n. Missing data keys render empty.
func Render(n domain.Notification) (Message, error) {
	t, ok := templates[n.Kind]
	if !ok {
		return Message{}, fmt.Errorf("mail: no template for %q", n.Kind)
	}

	var subject, body bytes.Buffer
	if err := t.subject.Execute(&subject, n.Data); err != nil {
		return Message{}, fmt.Errorf("mail: render %s subject: %w", n.Kind, err)
	}
	if err := t.body.Execute(&body, n.Data); err != nil {
		return Message{}, fmt.Errorf("mail: render %s body: %w", n.Kind, err)
	}

	var html bytes.Buffer
	if err := htmlLayout.Execute(&html, paragraphs(body.String())); err != nil {
		return Message{}, fmt.Errorf("mail: render %s html: %w", n.Kind, err)
	}

	return Message{
		To:      n.Recipient,
		Subject: strings.TrimSpace(subject.String()),
		Text:    body.String(),
		HTML:    html.String(),
	}, nil
}

func paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
