package response_models

type AccountResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Token       string `json:"token,omitempty"`
}

type BrandingResponse struct {
	SiteTitle   string `json:"site_title"`
	SiteTagline string `json:"site_tagline"`
	LogoURL     string `json:"logo_url"`
	TextModel   string `json:"text_model"`
	ImageModel  string `json:"image_model"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
