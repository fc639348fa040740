package composer

import (
	"fmt"
	"strings"
	"time"

	"github.com/aura-platform/contact-api/app/entity"
)

// DestinationEmail is where every consultation lands. The address is part of
// the service contract, not configuration.
const DestinationEmail = "dev404.codmaster@gmail.com"

// FromName is the display name on outgoing mail.
const FromName = "AURA Platform"

// SubjectPrefix starts every consultation subject line.
const SubjectPrefix = "[AURA] Consulta - "

// Message is a fully rendered email, ready for a transport.
type Message struct {
	Subject   string
	TextBody  string
	HTMLBody  string
	From      string
	FromName  string
	ReplyTo   string
	Recipient string
}

// Composer renders submissions into transport-ready messages. It is pure:
// the submission timestamp is injected, never read internally.
type Composer struct {
	from string
}

// New builds a composer sending from the given address.
func New(from string) *Composer {
	return &Composer{from: from}
}

// Compose renders the subject, plain-text body, and HTML body for one
// submission. Identical inputs yield byte-identical output.
func (c *Composer) Compose(sub entity.Submission, cat entity.Category, urg entity.Urgency, now time.Time) (Message, error) {
	data := templateData{
		Name:          sub.Name,
		Email:         sub.Email,
		Company:       sub.Company,
		Phone:         sub.PhoneOrPlaceholder(),
		Date:          FormatSpanishDate(now),
		CategoryLabel: cat.Label(),
		UrgencyLabel:  urg.Label(),
		UrgencyClass:  urg.BadgeClass(),
		Message:       sub.Message,
	}

	var text strings.Builder
	if err := textTemplate.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("render text body: %w", err)
	}

	var html strings.Builder
	if err := htmlTemplate.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render html body: %w", err)
	}

	return Message{
		Subject:   SubjectPrefix + urg.Label(),
		TextBody:  text.String(),
		HTMLBody:  html.String(),
		From:      c.from,
		FromName:  FromName,
		ReplyTo:   sub.Email,
		Recipient: DestinationEmail,
	}, nil
}

type templateData struct {
	Name          string
	Email         string
	Company       string
	Phone         string
	Date          string
	CategoryLabel string
	UrgencyLabel  string
	UrgencyClass  string
	Message       string
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatSpanishDate renders a timestamp the way the contact form displays it:
// "2 de enero de 2026, 15:04".
func FormatSpanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d, %02d:%02d",
		t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
