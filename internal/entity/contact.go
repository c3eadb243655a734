package entity

import "time"

// Contact types accepted by the inquiry form.
const (
	ContactTypeGeneral    = "general"
	ContactTypeSpeaking   = "speaking"
	ContactTypeConsulting = "consulting"
	ContactTypeMedia      = "media"
)

type Contact struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // general, speaking, consulting, media
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Message   string `json:"message,omitempty"`

	// Media inquiries
	Outlet        string `json:"outlet,omitempty"`
	Role          string `json:"role,omitempty"`
	Topic         string `json:"topic,omitempty"`
	InterviewType string `json:"interview_type,omitempty"`
	Deadline      string `json:"deadline,omitempty"`

	// Consulting inquiries
	BudgetRange string `json:"budget_range,omitempty"`
	Timeline    string `json:"timeline,omitempty"`

	// Speaking inquiries
	EventName   string `json:"event_name,omitempty"`
	EventDate   string `json:"event_date,omitempty"`
	EventBudget string `json:"event_budget,omitempty"`

	Attribution

	Status      string     `json:"status"` // new, contacted, closed
	Notes       string     `json:"notes,omitempty"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
