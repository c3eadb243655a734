package mail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

var renderNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func testTemplates() *Templates {
	return NewTemplates("example.com", "owner@example.com")
}

func mediaContact(deadline string) *entity.Contact {
	return &entity.Contact{
		ID:            "c-1",
		Type:          entity.ContactTypeMedia,
		FirstName:     "Dana",
		LastName:      "Reeves",
		Email:         "dana@outlet.example",
		Outlet:        "Forbes",
		Role:          "Reporter",
		Topic:         "Creator economy",
		InterviewType: "video",
		Deadline:      deadline,
	}
}

func TestMediaConfirmationUrgent(t *testing.T) {
	deadline := renderNow.Add(2 * time.Hour).Format(time.RFC3339)
	email, err := testTemplates().ContactConfirmation(mediaContact(deadline), renderNow)
	require.NoError(t, err)

	assert.Equal(t, "media_confirmation", email.Template)
	assert.Equal(t, CategoryConfirmation, email.Category)
	assert.Equal(t, []string{"dana@outlet.example"}, email.To)
	assert.Contains(t, email.Subject, "urgent")
	assert.Contains(t, email.HTML, "URGENT")
	assert.Contains(t, email.HTML, "within 2 hours")
}

func TestMediaConfirmationStandard(t *testing.T) {
	deadline := renderNow.Add(5 * 24 * time.Hour).Format(time.RFC3339)
	email, err := testTemplates().ContactConfirmation(mediaContact(deadline), renderNow)
	require.NoError(t, err)

	assert.NotContains(t, email.Subject, "urgent")
	assert.NotContains(t, email.HTML, "URGENT")
	assert.Contains(t, email.HTML, "within 4 hours")
}

func TestConfirmationAndNotificationShareResponseTarget(t *testing.T) {
	contact := &entity.Contact{
		ID:          "c-2",
		Type:        entity.ContactTypeConsulting,
		FirstName:   "Sam",
		Email:       "sam@client.example",
		BudgetRange: "$500k+",
		Timeline:    "Immediate",
		Message:     "Need help scaling the team.",
	}

	tpl := testTemplates()
	confirmation, err := tpl.ContactConfirmation(contact, renderNow)
	require.NoError(t, err)
	notification, err := tpl.ContactNotification(contact, renderNow)
	require.NoError(t, err)

	// critical priority: top budget + immediate timeline
	assert.Contains(t, notification.Subject, "critical")
	assert.Contains(t, confirmation.HTML, "within 4 hours")
	assert.Contains(t, notification.HTML, "within 4 hours")
	assert.Equal(t, []string{"owner@example.com"}, notification.To)
	assert.Equal(t, "sam@client.example", notification.ReplyTo)
}

func TestMediaNotificationUrgentSubject(t *testing.T) {
	deadline := renderNow.Add(2 * time.Hour).Format(time.RFC3339)
	email, err := testTemplates().ContactNotification(mediaContact(deadline), renderNow)
	require.NoError(t, err)

	assert.Contains(t, email.Subject, "[URGENT]")
	assert.Contains(t, email.HTML, "tier 1")
	assert.Equal(t, CategoryNotification, email.Category)
}

func TestGeneralConfirmation(t *testing.T) {
	contact := &entity.Contact{
		ID:        "c-3",
		Type:      entity.ContactTypeGeneral,
		FirstName: "Alex",
		Email:     "alex@example.com",
		Message:   "Hello!",
	}

	email, err := testTemplates().ContactConfirmation(contact, renderNow)
	require.NoError(t, err)

	assert.Equal(t, "contact_confirmation", email.Template)
	assert.Contains(t, email.HTML, "Alex")
	assert.Contains(t, email.HTML, "within 24 hours")
}

func TestResourceDelivery(t *testing.T) {
	resource := &entity.Resource{
		ID:      "r-1",
		Slug:    "pricing-guide",
		Title:   "The Pricing Guide",
		FileURL: "https://cdn.example.com/pricing-guide.pdf",
	}
	download := &entity.ResourceDownload{
		ID:        "d-1",
		Email:     "lead@example.com",
		FirstName: "Jo",
	}

	email, err := testTemplates().ResourceDelivery(resource, download, renderNow)
	require.NoError(t, err)

	assert.Equal(t, "resource_delivery", email.Template)
	assert.Contains(t, email.Subject, "The Pricing Guide")
	assert.Contains(t, email.HTML, "https://cdn.example.com/pricing-guide.pdf")
}

func TestNewsletterWelcome(t *testing.T) {
	subscriber := &entity.Subscriber{
		ID:        "s-1",
		Email:     "reader@example.com",
		FirstName: "Riley",
	}

	email, err := testTemplates().NewsletterWelcome(subscriber, renderNow)
	require.NoError(t, err)

	assert.Equal(t, "newsletter", email.EmailType)
	assert.Contains(t, email.HTML, "Riley")
	assert.Equal(t, []string{"reader@example.com"}, email.To)
}

func TestSignupNotificationSubjects(t *testing.T) {
	tpl := testTemplates()

	news, err := tpl.SignupNotification("newsletter", "a@b.c", "A", "", "", renderNow)
	require.NoError(t, err)
	assert.Contains(t, news.Subject, "newsletter subscriber")

	wait, err := tpl.SignupNotification("waitlist", "a@b.c", "A", "Cohort 3", "", renderNow)
	require.NoError(t, err)
	assert.Contains(t, wait.Subject, "waitlist signup")

	res, err := tpl.SignupNotification("resource", "a@b.c", "A", "The Pricing Guide", "", renderNow)
	require.NoError(t, err)
	assert.Contains(t, res.Subject, "The Pricing Guide")
}

// Same payload, same markup: rendering has no hidden inputs besides the
// timestamp the caller passes in.
func TestRenderingIsDeterministic(t *testing.T) {
	contact := mediaContact(renderNow.Add(time.Hour).Format(time.RFC3339))

	first, err := testTemplates().ContactConfirmation(contact, renderNow)
	require.NoError(t, err)
	second, err := testTemplates().ContactConfirmation(contact, renderNow)
	require.NoError(t, err)

	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, first.Subject, second.Subject)
}
