package models

// PaywallEvent is published to Kafka after a paywall is minted and persisted.
type PaywallEvent struct {
	EventID    string `json:"event_id"`    // Unique event identifier
	Timestamp  int64  `json:"timestamp"`   // Unix time of the mint
	PublicID   string `json:"public_id"`   // Image the paywall protects
	PaywallURL string `json:"paywall_url"` // Minted pay-to-unlock link
	CreatedBy  string `json:"created_by"`  // Username of the admin who created it
}
