package entity

import "time"

type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	Status    string    `json:"status"` // active, unsubscribed
	Consented bool      `json:"consented"`
	Attribution
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
