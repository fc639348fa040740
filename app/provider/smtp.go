package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/aura-platform/contact-api/app/composer"
)

// SMTPProvider sends mail through an authenticated SMTP relay. The dialer is
// built once at startup and reused for every send.
type SMTPProvider struct {
	dialer *gomail.Dialer
	domain string
}

// NewSMTPProvider builds a provider for the given relay and credentials. The
// username doubles as the sender address, so its domain seeds Message-IDs.
func NewSMTPProvider(host string, port int, username, password string) *SMTPProvider {
	return &SMTPProvider{
		dialer: &gomail.Dialer{Host: host, Port: port, Username: username, Password: password},
		domain: senderDomain(username),
	}
}

// Send delivers the message in a single attempt and returns the generated
// Message-ID. SMTP assigns no identifier of its own, so one is stamped onto
// the outgoing headers.
func (p *SMTPProvider) Send(_ context.Context, msg composer.Message) (string, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), p.domain)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From, msg.FromName)
	m.SetHeader("To", msg.Recipient)
	m.SetHeader("Reply-To", msg.ReplyTo)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", msg.TextBody)
	m.AddAlternative("text/html", msg.HTMLBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return messageID, nil
}

// Verify dials the relay and authenticates without sending anything.
func (p *SMTPProvider) Verify(_ context.Context) error {
	conn, err := p.dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	return conn.Close()
}

func senderDomain(address string) string {
	if at := strings.LastIndex(address, "@"); at >= 0 && at < len(address)-1 {
		return address[at+1:]
	}
	return "aura-platform.local"
}
