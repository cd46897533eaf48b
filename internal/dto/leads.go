package dto

import "github.com/google/uuid"

// ListFilter contains query parameters for the stored leads listing.
type ListFilter struct {
	Q             string
	Niche         string
	Location      string
	WebsiteStatus string
	ScanID        *uuid.UUID
	Page          int
	PerPage       int
}
