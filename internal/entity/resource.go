package entity

import "time"

// Resource is a downloadable asset (guide, template, checklist) offered in
// exchange for a lead's contact details. Owned by the content admin; this
// service only reads it and bumps the download counter.
type Resource struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	FileURL       string    `json:"file_url"`
	DownloadCount int       `json:"download_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type ResourceDownload struct {
	ID         string `json:"id"`
	ResourceID string `json:"resource_id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	Attribution
	CreatedAt time.Time `json:"created_at"`
}
