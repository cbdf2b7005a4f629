package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type UpdateBrandingRequest struct {
	SiteTitle   string `json:"site_title,omitempty"`
	SiteTagline string `json:"site_tagline,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	TextModel   string `json:"text_model,omitempty"`
	ImageModel  string `json:"image_model,omitempty"`
}
