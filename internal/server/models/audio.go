package models

import "time"

// AudioURL is a localized audio sample. Language values are stored
// lowercase and are unique. URL is either an absolute http(s) address or an
// s3://bucket/key location that the audio service presigns on read.
type AudioURL struct {
	ID          string    `json:"id"`
	Language    string    `json:"language"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
