package dto

// GenerateSiteRequest is the payload used by the landing page endpoint.
type GenerateSiteRequest struct {
	BusinessName string `json:"business_name"`
	Niche        string `json:"niche"`
	Location     string `json:"location"`
	AIAPIKey     string `json:"ai_api_key"`
	Provider     string `json:"provider"`
}

// GenerateSiteResponse points at the stored page.
type GenerateSiteResponse struct {
	PreviewURL string `json:"preview_url"`
	FileName   string `json:"file_name"`
	Source     string `json:"source"`
}
