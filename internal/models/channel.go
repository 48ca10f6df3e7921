package models

// Channel is one guide channel after matching against the known channel set.
// Name carries the feed's own label, DisplayName the canonical one.
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
}
