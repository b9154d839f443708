package models

import "time"

// PaywallDB represents a minted paywall record in the database
type PaywallDB struct {
	PublicID   string    `json:"public_id" db:"public_id"`     // Media host identifier of the image
	URL        string    `json:"url" db:"url"`                 // Original full-size image URL
	PaywallURL string    `json:"paywall" db:"paywall_url"`     // Minted pay-to-unlock link
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Mint timestamp
}
