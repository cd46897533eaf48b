package dto

// EnrichRequest identifies the business to look up an owner for.
type EnrichRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
