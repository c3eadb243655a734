package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

func render(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name+".html", data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return body.String(), nil
}

// Templates builds ready-to-send emails for every submission type. All
// rendering is pure with respect to its inputs; the only ambient input is
// the timestamp passed in by the caller.
type Templates struct {
	SiteName   string
	OwnerEmail string
}

func NewTemplates(siteName, ownerEmail string) *Templates {
	return &Templates{SiteName: siteName, OwnerEmail: ownerEmail}
}

type leadData struct {
	Contact        *entity.Contact
	Priority       string
	Urgent         bool
	OutletTier     string
	ResponseTarget string
	SiteName       string
	SentAt         string
}

func (t *Templates) leadData(c *entity.Contact, now time.Time) leadData {
	data := leadData{
		Contact:  c,
		Priority: PriorityStandard,
		SiteName: t.SiteName,
		SentAt:   now.Format("Jan 2, 2006 3:04 PM MST"),
	}

	switch c.Type {
	case entity.ContactTypeMedia:
		data.Urgent = MediaUrgent(c.Deadline, now)
		data.OutletTier = OutletTierFor(c.Outlet)
		data.ResponseTarget = MediaResponseTarget(data.Urgent)
		if data.Urgent {
			data.Priority = PriorityHigh
		}
	case entity.ContactTypeConsulting:
		data.Priority = ConsultingPriority(c.BudgetRange, c.Timeline)
		data.ResponseTarget = ConsultingResponseTarget(data.Priority)
	case entity.ContactTypeSpeaking:
		data.Priority = SpeakingPriority(c.EventBudget)
		data.ResponseTarget = SpeakingResponseTarget(data.Priority)
	default:
		data.ResponseTarget = GeneralResponseTarget()
	}

	return data
}

// ContactConfirmation renders the acknowledgement sent to the submitter of a
// contact-form inquiry. Template and subject depend on the inquiry type.
func (t *Templates) ContactConfirmation(c *entity.Contact, now time.Time) (Email, error) {
	data := t.leadData(c, now)

	var name, subject string
	switch c.Type {
	case entity.ContactTypeMedia:
		name = "media_confirmation"
		subject = "Re: your media inquiry"
		if data.Urgent {
			subject = "Re: your media inquiry (urgent)"
		}
	case entity.ContactTypeConsulting:
		name = "consulting_confirmation"
		subject = "Your consulting inquiry has been received"
	case entity.ContactTypeSpeaking:
		name = "speaking_confirmation"
		subject = "Your speaking request has been received"
	default:
		name = "contact_confirmation"
		subject = "Thanks for reaching out!"
	}

	html, err := render(name, data)
	if err != nil {
		return Email{}, err
	}

	return Email{
		Template:  name,
		EmailType: c.Type,
		Category:  CategoryConfirmation,
		To:        []string{c.Email},
		Subject:   subject,
		HTML:      html,
		Metadata:  map[string]string{"contact_id": c.ID},
	}, nil
}

// ContactNotification renders the owner alert for a contact-form inquiry.
// It shares the priority computation with the confirmation, so the response
// targets in the two emails always match.
func (t *Templates) ContactNotification(c *entity.Contact, now time.Time) (Email, error) {
	data := t.leadData(c, now)

	fullName := c.FirstName
	if c.LastName != "" {
		fullName += " " + c.LastName
	}

	var subject string
	switch c.Type {
	case entity.ContactTypeMedia:
		subject = fmt.Sprintf("New media inquiry from %s (%s)", fullName, c.Outlet)
		if data.Urgent {
			subject = fmt.Sprintf("[URGENT] Media inquiry from %s (%s)", fullName, c.Outlet)
		}
	case entity.ContactTypeConsulting:
		subject = fmt.Sprintf("New consulting inquiry from %s (%s priority)", fullName, data.Priority)
	case entity.ContactTypeSpeaking:
		subject = fmt.Sprintf("New speaking request from %s", fullName)
	default:
		subject = fmt.Sprintf("New message from %s", fullName)
	}

	html, err := render("lead_notification", data)
	if err != nil {
		return Email{}, err
	}

	return Email{
		Template:  "lead_notification",
		EmailType: c.Type,
		Category:  CategoryNotification,
		To:        []string{t.OwnerEmail},
		ReplyTo:   c.Email,
		Subject:   subject,
		HTML:      html,
		Metadata:  map[string]string{"contact_id": c.ID},
	}, nil
}

type welcomeData struct {
	FirstName string
	Product   string
	SiteName  string
	SentAt    string
}

// NewsletterWelcome renders the double-duty welcome and confirmation email
// for a new subscriber.
func (t *Templates) NewsletterWelcome(s *entity.Subscriber, now time.Time) (Email, error) {
	html, err := render("newsletter_welcome", welcomeData{
		FirstName: s.FirstName,
		SiteName:  t.SiteName,
		SentAt:    now.Format("Jan 2, 2006 3:04 PM MST"),
	})
	if err != nil {
		return Email{}, err
	}

	return Email{
		Template:  "newsletter_welcome",
		EmailType: "newsletter",
		Category:  CategoryConfirmation,
		To:        []string{s.Email},
		Subject:   "Welcome to the newsletter",
		HTML:      html,
		Metadata:  map[string]string{"subscriber_id": s.ID},
	}, nil
}

// WaitlistConfirmation acknowledges a waitlist signup.
func (t *Templates) WaitlistConfirmation(w *entity.WaitlistEntry, now time.Time) (Email, error) {
	html, err := render("waitlist_confirmation", welcomeData{
		FirstName: w.FirstName,
		Product:   w.Product,
		SiteName:  t.SiteName,
		SentAt:    now.Format("Jan 2, 2006 3:04 PM MST"),
	})
	if err != nil {
		return Email{}, err
	}

	return Email{
		Template:  "waitlist_confirmation",
		EmailType: "waitlist",
		Category:  CategoryConfirmation,
		To:        []string{w.Email},
		Subject:   "You're on the waitlist",
		HTML:      html,
		Metadata:  map[string]string{"waitlist_id": w.ID},
	}, nil
}

type resourceData struct {
	FirstName string
	Title     string
	FileURL   string
	SiteName  string
	SentAt    string
}

// ResourceDelivery sends the download link for a requested resource.
func (t *Templates) ResourceDelivery(r *entity.Resource, d *entity.ResourceDownload, now time.Time) (Email, error) {
	html, err := render("resource_delivery", resourceData{
		FirstName: d.FirstName,
		Title:     r.Title,
		FileURL:   r.FileURL,
		SiteName:  t.SiteName,
		SentAt:    now.Format("Jan 2, 2006 3:04 PM MST"),
	})
	if err != nil {
		return Email{}, err
	}

	return Email{
		Template:  "resource_delivery",
		EmailType: "resource",
		Category:  CategoryConfirmation,
		To:        []string{d.Email},
		Subject:   "Your download: " + r.Title,
		HTML:      html,
		Metadata:  map[string]string{"resource_id": r.ID, "download_id": d.ID},
	}, nil
}

type signupData struct {
	Kind      string
	Email     string
	FirstName string
	Detail    string
	Source    string
	SentAt    string
}

// SignupNotification alerts the owner about newsletter, waitlist and
// resource-download signups. Kind selects the wording, detail carries the
// product or resource name.
func (t *Templates) SignupNotification(kind, email, firstName, detail, source string, now time.Time) (Email, error) {
	html, err := render("signup_notification", signupData{
		Kind:      kind,
		Email:     email,
		FirstName: firstName,
		Detail:    detail,
		Source:    source,
		SentAt:    now.Format("Jan 2, 2006 3:04 PM MST"),
	})
	if err != nil {
		return Email{}, err
	}

	var subject string
	switch kind {
	case "newsletter":
		subject = "New newsletter subscriber: " + email
	case "waitlist":
		subject = "New waitlist signup: " + email
	default:
		subject = "Resource downloaded: " + detail
	}

	return Email{
		Template:  "signup_notification",
		EmailType: kind,
		Category:  CategoryNotification,
		To:        []string{t.OwnerEmail},
		Subject:   subject,
		HTML:      html,
	}, nil
}
