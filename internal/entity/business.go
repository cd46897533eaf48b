package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceGoogleMaps tags businesses discovered through the places API.
const SourceGoogleMaps = "Google Maps"

// Business represents a place discovered by a scan.
type Business struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	PlaceID    string     `json:"place_id"`
	Name       string     `json:"name"`
	Address    string     `json:"address,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	PhoneE164  string     `json:"phone_e164,omitempty"`
	Website    string     `json:"website,omitempty"`
	HasWebsite bool       `json:"has_website"`
	Niche      string     `json:"niche,omitempty"`
	Location   string     `json:"location,omitempty"`
	ScanID     *uuid.UUID `json:"scan_id,omitempty"`
	Source     string     `json:"source"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Origin describes the scan a business was discovered by.
type Origin struct {
	ScanID   *uuid.UUID
	Niche    string
	Location string
}

// NewBusiness builds a business record, deriving HasWebsite from the website field.
func NewBusiness(placeID, name, address, phone, website string, origin Origin) Business {
	return Business{
		PlaceID:    placeID,
		Name:       name,
		Address:    address,
		Phone:      phone,
		Website:    website,
		HasWebsite: website != "",
		Niche:      origin.Niche,
		Location:   origin.Location,
		ScanID:     origin.ScanID,
		Source:     SourceGoogleMaps,
	}
}
