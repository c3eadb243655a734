package entity

// Attribution carries the marketing context captured with every form
// submission: where the visitor came from and the UTM campaign parameters
// from the originating URL. Empty fields are stored as NULL.
type Attribution struct {
	Referrer    string `json:"referrer,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
	UTMSource   string `json:"utm_source,omitempty"`
	UTMMedium   string `json:"utm_medium,omitempty"`
	UTMCampaign string `json:"utm_campaign,omitempty"`
	UTMTerm     string `json:"utm_term,omitempty"`
	UTMContent  string `json:"utm_content,omitempty"`
}
