package provider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/aura-platform/contact-api/app/composer"
)

type SESProvider struct {
	client *sesv2.Client
}

// NewSESProvider builds a provider that sends email via AWS SES.
func NewSESProvider(cfg aws.Config) *SESProvider {
	return &SESProvider{client: sesv2.NewFromConfig(cfg)}
}

// Send delivers the message via the SES API and returns the SES-issued
// message ID.
func (p *SESProvider) Send(ctx context.Context, msg composer.Message) (string, error) {
	if msg.Recipient == "" {
		return "", fmt.Errorf("recipient is required")
	}

	out, err := p.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", msg.FromName, msg.From)),
		Destination: &types.Destination{
			ToAddresses: []string{msg.Recipient},
		},
		ReplyToAddresses: []string{msg.ReplyTo},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(msg.TextBody)},
					Html: &types.Content{Data: aws.String(msg.HTMLBody)},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ses send email: %w", err)
	}

	return aws.ToString(out.MessageId), nil
}
