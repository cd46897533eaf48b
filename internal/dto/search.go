package dto

// SearchRequest is the payload accepted by the lead search endpoint.
type SearchRequest struct {
	Niche    string `json:"niche"`
	Location string `json:"location"`
	APIKey   string `json:"api_key"`
	DeepScan bool   `json:"deep_scan"`
}

// LeadResponse is a discovered business as returned to dashboard clients.
type LeadResponse struct {
	PlaceID      string  `json:"place_id"`
	Name         string  `json:"name"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	PhoneE164    string  `json:"phone_e164,omitempty"`
	Website      *string `json:"website"`
	HasWebsite   bool    `json:"has_website"`
	OwnerName    *string `json:"owner_name"`
	OwnerContact *string `json:"owner_contact"`
	Source       string  `json:"source"`
}

// SearchResponse summarises a search run.
type SearchResponse struct {
	ScanID       string         `json:"scan_id"`
	Queries      []string       `json:"queries"`
	Results      []LeadResponse `json:"results"`
	TotalFound   int            `json:"total_found"`
	TotalScanned int            `json:"total_scanned"`
}
