package usecase

import (
	"encoding/json"

	"github.com/rowanvale/brandsite-api/internal/entity"
)

// AttributionInput carries the marketing context lifted from the client.
// UTM arrives as one JSON-encoded blob from the originating URL and is
// destructured into the five named columns; absent keys become NULL.
type AttributionInput struct {
	Referrer  string `json:"referrer"`
	UserAgent string `json:"user_agent"`
	UTM       string `json:"utm"`
}

func (a AttributionInput) toEntity() entity.Attribution {
	attr := entity.Attribution{
		Referrer:  a.Referrer,
		UserAgent: a.UserAgent,
	}

	if a.UTM != "" {
		var utm struct {
			Source   string `json:"utm_source"`
			Medium   string `json:"utm_medium"`
			Campaign string `json:"utm_campaign"`
			Term     string `json:"utm_term"`
			Content  string `json:"utm_content"`
		}
		if err := json.Unmarshal([]byte(a.UTM), &utm); err == nil {
			attr.UTMSource = utm.Source
			attr.UTMMedium = utm.Medium
			attr.UTMCampaign = utm.Campaign
			attr.UTMTerm = utm.Term
			attr.UTMContent = utm.Content
		}
	}

	return attr
}

type ContactInput struct {
	Type      string `json:"type"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Message   string `json:"message"`

	// Media
	Outlet        string `json:"outlet"`
	Role          string `json:"role"`
	Topic         string `json:"topic"`
	InterviewType string `json:"interview_type"`
	Deadline      string `json:"deadline"`

	// Consulting
	BudgetRange string `json:"budget_range"`
	Timeline    string `json:"timeline"`

	// Speaking
	EventName   string `json:"event_name"`
	EventDate   string `json:"event_date"`
	EventBudget string `json:"event_budget"`

	AttributionInput
}

type NewsletterInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	AttributionInput
}

type WaitlistInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Product   string `json:"product"`
	AttributionInput
}

type DownloadResourceInput struct {
	ResourceSlug string `json:"resource_slug"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	AttributionInput
}

type SubmitOutput struct {
	Success bool `json:"success"`
}

type DownloadResourceOutput struct {
	Success bool   `json:"success"`
	FileURL string `json:"file_url"`
}
