package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aura-platform/contact-api/app/composer"
	"github.com/aura-platform/contact-api/app/entity"
	"github.com/aura-platform/contact-api/app/provider"
)

// DeliveryError wraps a transport failure. Delivery is attempted exactly
// once; callers wanting another attempt must resubmit.
type DeliveryError struct {
	cause error
}

func (e *DeliveryError) Error() string { return e.cause.Error() }

func (e *DeliveryError) Unwrap() error { return e.cause }

// Receipt acknowledges a delivered consultation with the resolved labels and
// the transport message ID.
type Receipt struct {
	Name      string
	Email     string
	Company   string
	Category  string
	Urgency   string
	MessageID string
}

// ContactService runs the label resolution → composition → delivery pipeline
// for validated submissions.
type ContactService struct {
	composer *composer.Composer
	provider provider.EmailProvider
	log      *logrus.Logger
	now      func() time.Time
}

// NewContactService builds the service with its dependencies.
func NewContactService(c *composer.Composer, p provider.EmailProvider, log *logrus.Logger) *ContactService {
	return &ContactService{composer: c, provider: p, log: log, now: time.Now}
}

// Deliver resolves labels, composes the email, and hands it to the transport
// in a single synchronous attempt. A transport failure comes back as a
// *DeliveryError.
func (s *ContactService) Deliver(ctx context.Context, sub entity.Submission) (Receipt, error) {
	cat := entity.ParseCategory(sub.Category)
	urg := entity.ParseUrgency(sub.Urgency)

	msg, err := s.composer.Compose(sub, cat, urg, s.now())
	if err != nil {
		return Receipt{}, fmt.Errorf("compose message: %w", err)
	}

	messageID, err := s.provider.Send(ctx, msg)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"recipient": msg.Recipient,
			"sender":    sub.Email,
			"category":  cat.Label(),
			"urgency":   urg.Label(),
		}).WithError(err).Error("Email delivery failed")
		return Receipt{}, &DeliveryError{cause: err}
	}

	s.log.WithFields(logrus.Fields{
		"recipient":  msg.Recipient,
		"sender":     sub.Name,
		"email":      sub.Email,
		"company":    sub.Company,
		"category":   cat.Label(),
		"urgency":    urg.Label(),
		"message_id": messageID,
	}).Info("Email sent")

	return Receipt{
		Name:      sub.Name,
		Email:     sub.Email,
		Company:   sub.Company,
		Category:  cat.Label(),
		Urgency:   urg.Label(),
		MessageID: messageID,
	}, nil
}
