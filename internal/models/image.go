package models

// Image is one gallery entry: intrinsic metadata from the media host joined
// with the local paywall record, in the host's listing order.
type Image struct {
	ID          int    `json:"id"`                    // Sequential display index
	PublicID    string `json:"public_id"`             // Media host identifier
	Width       int    `json:"width"`                 // Intrinsic width in pixels
	Height      int    `json:"height"`                // Intrinsic height in pixels
	Format      string `json:"format"`                // File format, e.g. "jpg"
	DisplayName string `json:"display_name"`          // Human-readable name
	URL         string `json:"url"`                   // Public CDN URL for the scaled render
	BlurDataURL string `json:"blurDataUrl,omitempty"` // Base64 data URL of the blur preview
	Paywall     bool   `json:"paywall"`               // Whether a paywall exists for this image
	PaywallURL  string `json:"paywall_url,omitempty"` // Pay-to-unlock link when paywalled
}
