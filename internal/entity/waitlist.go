package entity

import "time"

type WaitlistEntry struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Product   string `json:"product,omitempty"`
	Status    string `json:"status"` // pending, invited
	Attribution
	CreatedAt time.Time `json:"created_at"`
}
