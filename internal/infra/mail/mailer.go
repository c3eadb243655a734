package mail

import "context"

// Email categories. The category is set explicitly at the call site that
// selects the template, so classification never has to be inferred back out
// of a template name.
const (
	CategoryConfirmation = "confirmation"
	CategoryNotification = "notification"
)

// Email is one rendered message ready for dispatch.
type Email struct {
	Template  string
	EmailType string // general, speaking, consulting, media, newsletter, waitlist, resource
	Category  string // confirmation, notification
	To        []string
	Cc        []string
	Bcc       []string
	ReplyTo   string
	Subject   string
	HTML      string
	Metadata  map[string]string
}

// Provider is the transactional email backend. Implementations must return
// the provider's message id on success.
type Provider interface {
	Send(ctx context.Context, from string, email Email) (string, error)
}

// SendResult identifies a dispatched email: the provider message id and the
// id of the email_logs row recording the attempt.
type SendResult struct {
	ProviderID string
	LogID      string
}
