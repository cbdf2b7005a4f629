package db_models

// Branding is a singleton row holding admin-editable site settings. The
// newest row wins; older rows are kept for history.
type Branding struct {
	BaseModel
	SiteTitle   string
	SiteTagline string
	LogoURL     string
	TextModel   string
	ImageModel  string
}
