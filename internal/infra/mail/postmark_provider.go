package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"
)

type PostmarkProvider struct {
	client *postmark.Client
}

func NewPostmarkProvider(serverToken, accountToken string) *PostmarkProvider {
	return &PostmarkProvider{
		client: postmark.NewClient(serverToken, accountToken),
	}
}

func (p *PostmarkProvider) Send(ctx context.Context, from string, email Email) (string, error) {
	resp, err := p.client.SendEmail(ctx, postmark.Email{
		From:       from,
		To:         strings.Join(email.To, ","),
		Cc:         strings.Join(email.Cc, ","),
		Bcc:        strings.Join(email.Bcc, ","),
		ReplyTo:    email.ReplyTo,
		Subject:    email.Subject,
		HTMLBody:   email.HTML,
		Tag:        email.Template,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return "", fmt.Errorf("postmark send: %w", err)
	}
	if resp.ErrorCode > 0 {
		return "", fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message)
	}
	return resp.MessageID, nil
}
