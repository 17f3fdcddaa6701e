package models

import (
	"encoding/json"
	"time"
)

// Section names used by the site content storage. Each section holds one
// JSON document that the public site and the dashboard read verbatim.
const (
	SectionHeader   = "header"
	SectionBanner   = "banner"
	SectionHeroText = "hero-text"
	SectionFooter   = "footer"
)

// Section is a single named content document.
type Section struct {
	Name      string
	Payload   json.RawMessage
	UpdatedAt time.Time
}

// Initiative is one initiative card.
type Initiative struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	CreatedAt   time.Time
}
