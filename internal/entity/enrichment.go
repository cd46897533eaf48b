package entity

// EnrichmentStatus reports the outcome of an owner lookup.
type EnrichmentStatus string

const (
	EnrichmentFound    EnrichmentStatus = "Found"
	EnrichmentNotFound EnrichmentStatus = "Not Found"
	EnrichmentError    EnrichmentStatus = "Error"
)

// Enrichment holds the owner details found for a business, if any.
type Enrichment struct {
	OwnerName    *string          `json:"owner_name"`
	OwnerContact *string          `json:"owner_contact"`
	Status       EnrichmentStatus `json:"enrichment_status"`
}
